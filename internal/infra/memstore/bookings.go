package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"arcade-booking/internal/domain/booking"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/google/uuid"
)

// BookingStore is the in-memory booking collection. A single mutex guards the
// map; every operation is a consistent snapshot and the expiry sweep compares
// all bookings against the one now it was invoked with.
type BookingStore struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*booking.Booking
}

var _ usecase.BookingStore = (*BookingStore)(nil)

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[uuid.UUID]*booking.Booking),
	}
}

func (s *BookingStore) Create(_ context.Context, p usecase.CreateBookingParams, now time.Time) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// v4 collisions are practically impossible; regenerating under the lock
	// keeps the uniqueness contract explicit anyway.
	id := uuid.New()
	for s.bookings[id] != nil {
		id = uuid.New()
	}

	b, err := booking.NewBooking(id, p.UserID, p.GameID, p.GameTitle, p.Slot, p.Price, p.CouponCode, now)
	if err != nil {
		return nil, err
	}

	s.bookings[id] = b
	return snapshot(b), nil
}

func (s *BookingStore) Get(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	return snapshot(b), nil
}

func (s *BookingStore) ListForUser(_ context.Context, userID string) ([]*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.UserID() == userID {
			out = append(out, snapshot(b))
		}
	}
	sortByCreation(out)
	return out, nil
}

func (s *BookingStore) ListAll(_ context.Context) ([]*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, snapshot(b))
	}
	sortByCreation(out)
	return out, nil
}

func (s *BookingStore) SweepExpirations(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for _, b := range s.bookings {
		if b.MarkExpiredAt(now) {
			expired++
		}
	}
	return expired, nil
}

func (s *BookingStore) Cancel(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	if err := b.Cancel(); err != nil {
		return nil, err
	}
	return snapshot(b), nil
}

// snapshot copies the entity so callers outside the lock never share mutable
// state with the store.
func snapshot(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(
		b.ID(), b.UserID(), b.GameID(), b.GameTitle(),
		b.Slot(), b.Price(), b.CouponCode(), b.Status(), b.CreatedAt(),
	)
}

func sortByCreation(bs []*booking.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].CreatedAt().Equal(bs[j].CreatedAt()) {
			return bs[i].ID().String() < bs[j].ID().String()
		}
		return bs[i].CreatedAt().Before(bs[j].CreatedAt())
	})
}
