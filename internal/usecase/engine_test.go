package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"arcade-booking/internal/domain/booking"
	"arcade-booking/internal/domain/game"
	"arcade-booking/internal/domain/schedule"
	"arcade-booking/internal/infra/memstore"
	"arcade-booking/internal/pkg/clock"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineFixture struct {
	engine  *usecase.Engine
	clock   *clock.FakeClock
	games   *memstore.GameCatalog
	coupons *memstore.CouponLedger
	store   *memstore.BookingStore
	gameID  uuid.UUID
}

// Noon on an ordinary open day.
var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *engineFixture {
	t.Helper()

	clk := clock.NewFakeClock(testNow)
	games := memstore.NewGameCatalog()
	coupons := memstore.NewCouponLedger()
	store := memstore.NewBookingStore()

	gameID := uuid.New()
	games.Add(game.Game{ID: gameID, Title: "Cyber Warfare X", Category: "PC", PricePerHour: 100, Available: true})

	shop := schedule.Shop{
		Window:   schedule.NewWindow(mustTOD(t, "09:00"), mustTOD(t, "23:00")),
		AutoMode: true,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &engineFixture{
		engine:  usecase.NewEngine(store, coupons, games, clk, shop, logger),
		clock:   clk,
		games:   games,
		coupons: coupons,
		store:   store,
		gameID:  gameID,
	}
}

func mustTOD(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func (f *engineFixture) addCoupon(t *testing.T, code string, percentage, maxClaims int) {
	t.Helper()
	_, err := f.coupons.Create(context.Background(), usecase.CouponParams{
		Title: code, Code: code, Percentage: percentage, MaxClaims: maxClaims,
	})
	require.NoError(t, err)
	require.NoError(t, f.coupons.SetActive(context.Background(), code, true))
}

func (f *engineFixture) confirmParams(start schedule.TimeOfDay, hours float64, couponCode string) usecase.ConfirmBookingParams {
	return usecase.ConfirmBookingParams{
		UserID:     "user-1",
		GameID:     f.gameID,
		Day:        testNow,
		Start:      start,
		Hours:      hours,
		CouponCode: couponCode,
	}
}

func TestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("no coupon", func(t *testing.T) {
		f := newFixture(t)
		q, err := f.engine.Quote(ctx, f.gameID, 1.5, "")
		require.NoError(t, err)
		assert.Equal(t, booking.Quote{Subtotal: 150, Discount: 0, Total: 150}, q)
	})

	t.Run("with coupon", func(t *testing.T) {
		f := newFixture(t)
		f.addCoupon(t, "SAVE20", 20, 5)

		q, err := f.engine.Quote(ctx, f.gameID, 2, "SAVE20")
		require.NoError(t, err)
		assert.Equal(t, booking.Quote{Subtotal: 200, Discount: 40, Total: 160}, q)
	})

	t.Run("quote never claims", func(t *testing.T) {
		f := newFixture(t)
		f.addCoupon(t, "SAVE20", 20, 5)

		for i := 0; i < 10; i++ {
			_, err := f.engine.Quote(ctx, f.gameID, 1, "SAVE20")
			require.NoError(t, err)
		}

		c, err := f.coupons.FindByCode(ctx, "SAVE20")
		require.NoError(t, err)
		assert.Zero(t, c.CurrentClaims())
	})

	t.Run("coupon failures propagate unchanged", func(t *testing.T) {
		f := newFixture(t)
		f.addCoupon(t, "GONE", 20, 1)
		_, err := f.coupons.TryClaim(ctx, "GONE")
		require.NoError(t, err)

		_, err = f.engine.Quote(ctx, f.gameID, 1, "GONE")
		assert.ErrorIs(t, err, errs.ErrCouponExhausted)

		_, err = f.engine.Quote(ctx, f.gameID, 1, "UNKNOWN")
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})

	t.Run("invalid duration", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.engine.Quote(ctx, f.gameID, 0, "")
		assert.ErrorIs(t, err, errs.ErrInvalidBooking)
	})

	t.Run("unknown game", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.engine.Quote(ctx, uuid.New(), 1, "")
		assert.ErrorIs(t, err, errs.ErrGameNotFound)
	})
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("charge equals quoted total", func(t *testing.T) {
		f := newFixture(t)
		f.addCoupon(t, "SAVE20", 20, 5)

		q, err := f.engine.Quote(ctx, f.gameID, 2, "SAVE20")
		require.NoError(t, err)

		p := f.confirmParams(mustTOD(t, "18:00"), 2, "SAVE20")
		b, err := f.engine.ConfirmBooking(ctx, p)
		require.NoError(t, err)

		assert.Equal(t, q.Total, b.Price())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		require.NotNil(t, b.CouponCode())
		assert.Equal(t, "SAVE20", *b.CouponCode())
	})

	t.Run("no coupon", func(t *testing.T) {
		f := newFixture(t)

		p := f.confirmParams(mustTOD(t, "18:00"), 1.5, "")
		b, err := f.engine.ConfirmBooking(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, 150, b.Price())
		assert.Nil(t, b.CouponCode())
	})

	t.Run("claim recorded on success", func(t *testing.T) {
		f := newFixture(t)
		f.addCoupon(t, "SAVE20", 20, 5)

		p := f.confirmParams(mustTOD(t, "18:00"), 1, "SAVE20")
		_, err := f.engine.ConfirmBooking(ctx, p)
		require.NoError(t, err)

		c, err := f.coupons.FindByCode(ctx, "SAVE20")
		require.NoError(t, err)
		assert.Equal(t, 1, c.CurrentClaims())
	})

	t.Run("shop closed", func(t *testing.T) {
		f := newFixture(t)
		f.clock.Set(time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC))

		p := f.confirmParams(mustTOD(t, "18:00"), 1, "")
		_, err := f.engine.ConfirmBooking(ctx, p)
		assert.ErrorIs(t, err, errs.ErrShopClosed)
	})

	t.Run("exhausted coupon still allows booking without it", func(t *testing.T) {
		f := newFixture(t)
		f.games.Add(game.Game{ID: f.gameID, Title: "Cyber Warfare X", PricePerHour: 200, Available: true})
		f.addCoupon(t, "SAVE20", 20, 5)
		for i := 0; i < 5; i++ {
			_, err := f.coupons.TryClaim(ctx, "SAVE20")
			require.NoError(t, err)
		}

		p := f.confirmParams(mustTOD(t, "18:00"), 2, "SAVE20")
		_, err := f.engine.ConfirmBooking(ctx, p)
		assert.ErrorIs(t, err, errs.ErrCouponExhausted)

		p.CouponCode = ""
		b, err := f.engine.ConfirmBooking(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, 400, b.Price())
	})

	t.Run("unavailable game", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.games.SetAvailable(ctx, f.gameID, false))

		p := f.confirmParams(mustTOD(t, "18:00"), 1, "")
		_, err := f.engine.ConfirmBooking(ctx, p)
		assert.ErrorIs(t, err, errs.ErrGameUnavailable)
	})

	t.Run("invalid duration does not claim", func(t *testing.T) {
		f := newFixture(t)
		f.addCoupon(t, "SAVE20", 20, 5)

		p := f.confirmParams(mustTOD(t, "18:00"), -1, "SAVE20")
		_, err := f.engine.ConfirmBooking(ctx, p)
		assert.ErrorIs(t, err, errs.ErrInvalidBooking)

		c, err := f.coupons.FindByCode(ctx, "SAVE20")
		require.NoError(t, err)
		assert.Zero(t, c.CurrentClaims())
	})
}

// failingBookingStore refuses creation, to exercise the claim rollback.
type failingBookingStore struct {
	usecase.BookingStore
}

func (s *failingBookingStore) Create(context.Context, usecase.CreateBookingParams, time.Time) (*booking.Booking, error) {
	return nil, errs.ErrStoreFailure
}

func TestConfirmBookingRollsBackClaim(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addCoupon(t, "SAVE20", 20, 5)

	shop := schedule.Shop{
		Window:   schedule.NewWindow(mustTOD(t, "09:00"), mustTOD(t, "23:00")),
		AutoMode: true,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := usecase.NewEngine(
		&failingBookingStore{BookingStore: f.store},
		f.coupons, f.games, f.clock, shop, logger,
	)

	p := usecase.ConfirmBookingParams{
		UserID: "user-1", GameID: f.gameID, Day: testNow,
		Start: mustTOD(t, "18:00"), Hours: 1, CouponCode: "SAVE20",
	}
	_, err := engine.ConfirmBooking(ctx, p)
	assert.ErrorIs(t, err, errs.ErrStoreFailure)

	c, err := f.coupons.FindByCode(ctx, "SAVE20")
	require.NoError(t, err)
	assert.Zero(t, c.CurrentClaims(), "failed booking must release its claim")
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addCoupon(t, "SAVE20", 20, 5)

	p := f.confirmParams(mustTOD(t, "18:00"), 1, "SAVE20")
	b, err := f.engine.ConfirmBooking(ctx, p)
	require.NoError(t, err)

	cancelled, err := f.engine.CancelBooking(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, cancelled.Status())

	c, err := f.coupons.FindByCode(ctx, "SAVE20")
	require.NoError(t, err)
	assert.Zero(t, c.CurrentClaims(), "cancellation releases the claimed slot")

	_, err = f.engine.CancelBooking(ctx, b.ID())
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	_, err = f.engine.CancelBooking(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrBookingNotFound)
}

func TestIsOpenNow(t *testing.T) {
	t.Run("auto mode derives and reconciles the cached flag", func(t *testing.T) {
		f := newFixture(t)

		assert.True(t, f.engine.IsOpenNow())
		assert.True(t, f.engine.Schedule().IsOpen)

		f.clock.Set(time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC))
		assert.False(t, f.engine.IsOpenNow())
		assert.False(t, f.engine.Schedule().IsOpen, "cached flag reconciled on evaluation")
	})

	t.Run("manual mode returns the flag directly", func(t *testing.T) {
		f := newFixture(t)
		f.engine.UpdateSchedule(schedule.NewWindow(mustTOD(t, "09:00"), mustTOD(t, "23:00")), false)

		require.NoError(t, f.engine.SetManualOverride(true))
		f.clock.Set(time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC))
		assert.True(t, f.engine.IsOpenNow(), "manual open wins outside the window")

		require.NoError(t, f.engine.SetManualOverride(false))
		f.clock.Set(testNow)
		assert.False(t, f.engine.IsOpenNow(), "manual closed wins inside the window")
	})

	t.Run("override rejected while auto mode is on", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.engine.SetManualOverride(true), errs.ErrAutoScheduleActive)
	})
}

func TestSweepOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p := f.confirmParams(mustTOD(t, "13:00"), 1, "")
	b, err := f.engine.ConfirmBooking(ctx, p)
	require.NoError(t, err)

	// Still running at 13:30.
	require.NoError(t, f.engine.SweepOnce(ctx, time.Date(2024, 1, 1, 13, 30, 0, 0, time.UTC)))
	got, err := f.engine.GetBooking(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, got.Status())

	// Over at 14:01.
	f.clock.Set(time.Date(2024, 1, 1, 14, 1, 0, 0, time.UTC))
	require.NoError(t, f.engine.SweepOnce(ctx, f.clock.Now()))
	got, err = f.engine.GetBooking(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusExpired, got.Status())
}

func TestReadsSweepFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p := f.confirmParams(mustTOD(t, "13:00"), 1, "")
	b, err := f.engine.ConfirmBooking(ctx, p)
	require.NoError(t, err)

	// No sweep has run, but the read must not expose a stale confirmed state.
	f.clock.Set(time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC))
	got, err := f.engine.GetBooking(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusExpired, got.Status())

	list, err := f.engine.ListUserBookings(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, booking.StatusExpired, list[0].Status())
}
