package errs

import "errors"

// Sentinel errors shared across the engine. Stores and the scheduling engine
// return these unchanged so callers can map each failure to a distinct
// user-facing message.
var (
	// Venue state
	ErrShopClosed         = errors.New("shop is currently closed")
	ErrAutoScheduleActive = errors.New("manual override rejected while automatic schedule is active")

	// Coupons
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrCouponInactive  = errors.New("coupon is inactive")
	ErrCouponExhausted = errors.New("coupon has reached its maximum claims")
	ErrDuplicateCoupon = errors.New("coupon code already exists")
	ErrInvalidCoupon   = errors.New("invalid coupon configuration")

	// Bookings
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidBooking    = errors.New("invalid booking parameters")
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// Games
	ErrGameNotFound    = errors.New("game not found")
	ErrGameUnavailable = errors.New("game is not available for booking")

	// Infrastructure
	ErrStoreFailure = errors.New("store operation failed")
)
