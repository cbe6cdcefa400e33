package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"arcade-booking/internal/domain/booking"
	"arcade-booking/internal/domain/schedule"
	"arcade-booking/internal/pkg/clock"
	"arcade-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Engine is the scheduling orchestrator: it resolves venue open state,
// drives expiry sweeps and exposes the booking operations consumed by the
// API layer. It is the sole owner of the shop schedule configuration and the
// only writer of its cached isOpen projection.
type Engine struct {
	bookings BookingStore
	coupons  CouponLedger
	games    GameCatalog
	clock    clock.Clock
	logger   *slog.Logger

	mu   sync.Mutex
	shop schedule.Shop
}

type ConfirmBookingParams struct {
	UserID     string
	GameID     uuid.UUID
	Day        time.Time
	Start      schedule.TimeOfDay
	Hours      float64
	CouponCode string
}

func NewEngine(
	bookings BookingStore,
	coupons CouponLedger,
	games GameCatalog,
	clk clock.Clock,
	shop schedule.Shop,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		bookings: bookings,
		coupons:  coupons,
		games:    games,
		clock:    clk,
		shop:     shop,
		logger:   logger,
	}
}

// Quote prices a prospective booking without claiming the coupon; a quote may
// be abandoned, so claiming only happens at confirmation. Coupon eligibility
// failures are exactly the ledger's, read-only.
func (e *Engine) Quote(ctx context.Context, gameID uuid.UUID, hours float64, couponCode string) (booking.Quote, error) {
	if hours <= 0 {
		return booking.Quote{}, errs.ErrInvalidBooking
	}

	g, err := e.games.Get(ctx, gameID)
	if err != nil {
		return booking.Quote{}, err
	}

	percent := 0
	if couponCode != "" {
		c, err := e.coupons.FindByCode(ctx, couponCode)
		if err != nil {
			return booking.Quote{}, err
		}
		if err := c.CheckRedeemable(); err != nil {
			return booking.Quote{}, err
		}
		percent = c.Percentage()
	}

	return booking.ComputeQuote(g.PricePerHour, hours, percent), nil
}

// ConfirmBooking re-validates the venue and the game, claims the coupon if
// one is supplied, and creates the booking. A claim taken for a booking that
// then fails to persist is rolled back so the ledger never counts a
// redemption without a matching booking.
func (e *Engine) ConfirmBooking(ctx context.Context, p ConfirmBookingParams) (*booking.Booking, error) {
	now := e.clock.Now()
	if !e.IsOpenNow() {
		return nil, errs.ErrShopClosed
	}

	g, err := e.games.Get(ctx, p.GameID)
	if err != nil {
		return nil, err
	}
	if !g.Bookable() {
		return nil, errs.ErrGameUnavailable
	}

	slot, err := booking.NewSlot(p.Day, p.Start, p.Hours)
	if err != nil {
		return nil, err
	}

	percent := 0
	var couponCode *string
	if p.CouponCode != "" {
		percent, err = e.coupons.TryClaim(ctx, p.CouponCode)
		if err != nil {
			return nil, err
		}
		code := p.CouponCode
		couponCode = &code
	}

	quote := booking.ComputeQuote(g.PricePerHour, p.Hours, percent)

	b, err := e.bookings.Create(ctx, CreateBookingParams{
		UserID:     p.UserID,
		GameID:     g.ID,
		GameTitle:  g.Title,
		Slot:       slot,
		Price:      quote.Total,
		CouponCode: couponCode,
	}, now)
	if err != nil {
		if couponCode != nil {
			if releaseErr := e.coupons.Release(ctx, *couponCode); releaseErr != nil {
				e.logger.Error("failed to release coupon claim after booking failure",
					"code", *couponCode, "error", releaseErr)
			}
		}
		return nil, err
	}

	e.logger.Info("booking confirmed",
		"booking_id", b.ID(), "game", g.Title, "user_id", p.UserID, "price", b.Price())
	return b, nil
}

// CancelBooking is the administrative confirmed -> cancelled transition.
// A coupon claimed by the booking is released, since the slot was never used.
func (e *Engine) CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := e.bookings.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	if code := b.CouponCode(); code != nil {
		if err := e.coupons.Release(ctx, *code); err != nil {
			e.logger.Error("failed to release coupon on cancellation",
				"booking_id", id, "code", *code, "error", err)
		}
	}

	e.logger.Info("booking cancelled", "booking_id", id)
	return b, nil
}

// GetBooking sweeps before reading so a caller never sees a stale confirmed
// status past the true cutoff.
func (e *Engine) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if _, err := e.bookings.SweepExpirations(ctx, e.clock.Now()); err != nil {
		return nil, err
	}
	return e.bookings.Get(ctx, id)
}

func (e *Engine) ListUserBookings(ctx context.Context, userID string) ([]*booking.Booking, error) {
	if _, err := e.bookings.SweepExpirations(ctx, e.clock.Now()); err != nil {
		return nil, err
	}
	return e.bookings.ListForUser(ctx, userID)
}

func (e *Engine) ListAllBookings(ctx context.Context) ([]*booking.Booking, error) {
	if _, err := e.bookings.SweepExpirations(ctx, e.clock.Now()); err != nil {
		return nil, err
	}
	return e.bookings.ListAll(ctx)
}

// IsOpenNow resolves the current open state. With automatic mode on it also
// reconciles the cached flag, so readers of the stored schedule stay
// consistent within one evaluation cycle.
func (e *Engine) IsOpenNow() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.shop.AutoMode {
		return e.shop.IsOpen
	}

	open := e.shop.Window.Contains(e.clock.Now())
	if e.shop.IsOpen != open {
		e.logger.Info("shop open state changed", "open", open)
		e.shop.IsOpen = open
	}
	return open
}

// Schedule returns the current configuration snapshot.
func (e *Engine) Schedule() schedule.Shop {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shop
}

// UpdateSchedule replaces the window and the automatic-mode flag.
func (e *Engine) UpdateSchedule(window schedule.Window, autoMode bool) schedule.Shop {
	e.mu.Lock()
	e.shop.Window = window
	e.shop.AutoMode = autoMode
	if autoMode {
		e.shop.IsOpen = window.Contains(e.clock.Now())
	}
	updated := e.shop
	e.mu.Unlock()

	e.logger.Info("shop schedule updated",
		"open", window.Open.String(), "close", window.Close.String(), "auto", autoMode)
	return updated
}

// SetManualOverride flips the open flag while automatic mode is off. With
// automatic mode on the derived state is authoritative and the override is
// rejected explicitly rather than silently ignored.
func (e *Engine) SetManualOverride(open bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.shop.AutoMode {
		return errs.ErrAutoScheduleActive
	}
	e.shop.IsOpen = open
	return nil
}

// SweepOnce runs one maintenance pass: expire overdue bookings against the
// single now captured at the start, then recompute the open state. Intended
// to run on a fixed interval.
func (e *Engine) SweepOnce(ctx context.Context, now time.Time) error {
	expired, err := e.bookings.SweepExpirations(ctx, now)
	if err != nil {
		return errs.Wrap(err, "expiry sweep failed")
	}
	if expired > 0 {
		e.logger.Info("expired bookings", "count", expired)
	}

	e.IsOpenNow()
	return nil
}
