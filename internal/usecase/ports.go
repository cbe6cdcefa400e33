package usecase

import (
	"context"
	"time"

	"arcade-booking/internal/domain/booking"
	"arcade-booking/internal/domain/coupon"
	"arcade-booking/internal/domain/game"

	"github.com/google/uuid"
)

// CreateBookingParams carries everything the booking store needs to mint a
// confirmed booking. The store assigns the identifier.
type CreateBookingParams struct {
	UserID     string
	GameID     uuid.UUID
	GameTitle  string
	Slot       booking.Slot
	Price      int
	CouponCode *string
}

// CouponParams is the administrative shape for creating a coupon.
type CouponParams struct {
	Title       string
	Description string
	Code        string
	Percentage  int
	MaxClaims   int
}

// BookingStore owns booking records and their lifecycle. Implementations must
// give each operation snapshot consistency: a reader never observes a
// half-applied write.
type BookingStore interface {
	Create(ctx context.Context, p CreateBookingParams, now time.Time) (*booking.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]*booking.Booking, error)
	ListAll(ctx context.Context) ([]*booking.Booking, error)
	// SweepExpirations transitions every confirmed booking whose slot ended
	// before now to expired, comparing against the single now value for the
	// whole pass. Returns the number of bookings transitioned.
	SweepExpirations(ctx context.Context, now time.Time) (int, error)
	Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// CouponLedger owns redemption counters. TryClaim must make the exhaustion
// check and the increment one atomic step: with one claim remaining, two
// concurrent claims yield exactly one success.
type CouponLedger interface {
	TryClaim(ctx context.Context, code string) (percentage int, err error)
	Release(ctx context.Context, code string) error
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	ListAll(ctx context.Context) ([]*coupon.Coupon, error)
	Create(ctx context.Context, p CouponParams) (*coupon.Coupon, error)
	Configure(ctx context.Context, code string, percentage, maxClaims int) error
	SetActive(ctx context.Context, code string, active bool) error
}

// GameCatalog holds the bookable stations.
type GameCatalog interface {
	Get(ctx context.Context, id uuid.UUID) (game.Game, error)
	ListVisible(ctx context.Context) ([]game.Game, error)
	ListAll(ctx context.Context) ([]game.Game, error)
	SetAvailable(ctx context.Context, id uuid.UUID, available bool) error
	SetRate(ctx context.Context, id uuid.UUID, pricePerHour int) error
}
