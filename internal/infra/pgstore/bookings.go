package pgstore

import (
	"context"
	"errors"
	"time"

	"arcade-booking/internal/domain/booking"
	"arcade-booking/internal/domain/schedule"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingStore persists bookings in PostgreSQL. Status transitions are
// conditional UPDATEs so each one is a single atomic statement, the
// transaction boundary the engine relies on.
type BookingStore struct {
	pool *pgxpool.Pool
}

var _ usecase.BookingStore = (*BookingStore)(nil)

func NewBookingStore(pool *pgxpool.Pool) *BookingStore {
	return &BookingStore{pool: pool}
}

const bookingColumns = `id, user_id, game_id, game_title, day, start_minutes, hours, price, coupon_code, status, created_at`

func (s *BookingStore) Create(ctx context.Context, p usecase.CreateBookingParams, now time.Time) (*booking.Booking, error) {
	b, err := booking.NewBooking(uuid.New(), p.UserID, p.GameID, p.GameTitle, p.Slot, p.Price, p.CouponCode, now)
	if err != nil {
		return nil, err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO bookings (id, user_id, game_id, game_title, day, start_minutes, hours, price, coupon_code, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID(), b.UserID(), b.GameID(), b.GameTitle(),
		b.Slot().Day(), b.Slot().Start().Minutes(), b.Slot().Hours(),
		b.Price(), b.CouponCode(), b.Status().String(), b.CreatedAt(),
	)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to insert booking"), errs.ErrStoreFailure)
	}
	return b, nil
}

func (s *BookingStore) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to load booking"), errs.ErrStoreFailure)
	}
	return b, nil
}

func (s *BookingStore) ListForUser(ctx context.Context, userID string) ([]*booking.Booking, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list bookings"), errs.ErrStoreFailure)
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (s *BookingStore) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at, id`)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list bookings"), errs.ErrStoreFailure)
	}
	defer rows.Close()
	return collectBookings(rows)
}

// SweepExpirations expires every confirmed booking whose computed end instant
// lies before now. The cutoff is evaluated in SQL from the stored slot
// fields, matching the in-memory store's derived-expiry rule.
func (s *BookingStore) SweepExpirations(ctx context.Context, now time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE bookings
		SET status = 'expired'
		WHERE status = 'confirmed'
		  AND $1 > day + make_interval(mins => start_minutes) + make_interval(secs => hours * 3600)`,
		now,
	)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "expiry sweep failed"), errs.ErrStoreFailure)
	}
	return int(tag.RowsAffected()), nil
}

func (s *BookingStore) Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE bookings SET status = 'cancelled'
		WHERE id = $1 AND status = 'confirmed'
		RETURNING `+bookingColumns,
		id,
	)
	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.Mark(errs.Wrap(err, "failed to cancel booking"), errs.ErrStoreFailure)
	}

	// Nothing updated: distinguish a missing booking from a terminal one.
	var status string
	if err := s.pool.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to inspect booking"), errs.ErrStoreFailure)
	}
	return nil, errs.ErrInvalidTransition
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id           uuid.UUID
		userID       string
		gameID       uuid.UUID
		gameTitle    string
		day          time.Time
		startMinutes int
		hours        float64
		price        int
		couponCode   *string
		status       string
		createdAt    time.Time
	)
	if err := row.Scan(&id, &userID, &gameID, &gameTitle, &day, &startMinutes, &hours, &price, &couponCode, &status, &createdAt); err != nil {
		return nil, err
	}

	start, err := schedule.NewTimeOfDay(startMinutes/60, startMinutes%60)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewSlot(day, start, hours)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(id, userID, gameID, gameTitle, slot, price, couponCode, booking.Status(status), createdAt), nil
}

func collectBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to scan booking row"), errs.ErrStoreFailure)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to iterate booking rows"), errs.ErrStoreFailure)
	}
	return out, nil
}
