package booking

import (
	"time"

	"arcade-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Booking is one confirmed reservation of a game slot. The identifier doubles
// as the entry-verification token, so it is a v4 UUID rather than anything
// guessable in sequence.
type Booking struct {
	id         uuid.UUID
	userID     string
	gameID     uuid.UUID
	gameTitle  string
	slot       Slot
	price      int
	couponCode *string
	status     Status
	createdAt  time.Time
}

func NewBooking(id uuid.UUID, userID string, gameID uuid.UUID, gameTitle string, slot Slot, price int, couponCode *string, createdAt time.Time) (*Booking, error) {
	if slot.Hours() <= 0 || price < 0 {
		return nil, errs.ErrInvalidBooking
	}
	if userID == "" {
		return nil, errs.ErrInvalidBooking
	}

	return &Booking{
		id:         id,
		userID:     userID,
		gameID:     gameID,
		gameTitle:  gameTitle,
		slot:       slot,
		price:      price,
		couponCode: couponCode,
		status:     StatusConfirmed,
		createdAt:  createdAt,
	}, nil
}

func Reconstruct(id uuid.UUID, userID string, gameID uuid.UUID, gameTitle string, slot Slot, price int, couponCode *string, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		gameID:     gameID,
		gameTitle:  gameTitle,
		slot:       slot,
		price:      price,
		couponCode: couponCode,
		status:     status,
		createdAt:  createdAt,
	}
}

// MarkExpiredAt transitions confirmed -> expired when the slot is over.
// It reports whether the transition happened; resweeping an already expired
// booking is a no-op.
func (b *Booking) MarkExpiredAt(now time.Time) bool {
	if b.status != StatusConfirmed {
		return false
	}
	if !b.slot.ExpiredAt(now) {
		return false
	}
	b.status = StatusExpired
	return true
}

// Cancel transitions confirmed -> cancelled. Any other starting state is an
// InvalidTransition, surfaced rather than swallowed because it indicates an
// upstream logic bug or a race.
func (b *Booking) Cancel() error {
	if b.status != StatusConfirmed {
		return errs.ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) Active() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) UserID() string      { return b.userID }
func (b *Booking) GameID() uuid.UUID   { return b.gameID }
func (b *Booking) GameTitle() string   { return b.gameTitle }
func (b *Booking) Slot() Slot          { return b.slot }
func (b *Booking) Price() int          { return b.price }
func (b *Booking) CouponCode() *string { return b.couponCode }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
