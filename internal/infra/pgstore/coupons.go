package pgstore

import (
	"context"
	"errors"

	"arcade-booking/internal/domain/coupon"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// CouponLedger keeps redemption counters in PostgreSQL. The claim path is a
// single conditional UPDATE, so the exhaustion check and the increment are
// one atomic statement and concurrent claims can never overshoot the cap.
type CouponLedger struct {
	pool *pgxpool.Pool
}

var _ usecase.CouponLedger = (*CouponLedger)(nil)

func NewCouponLedger(pool *pgxpool.Pool) *CouponLedger {
	return &CouponLedger{pool: pool}
}

const couponColumns = `id, title, description, code, percentage, active, max_claims, current_claims`

func (l *CouponLedger) TryClaim(ctx context.Context, code string) (int, error) {
	var percentage int
	err := l.pool.QueryRow(ctx, `
		UPDATE coupons
		SET current_claims = current_claims + 1
		WHERE code = $1 AND active AND current_claims < max_claims
		RETURNING percentage`,
		coupon.NormalizeCode(code),
	).Scan(&percentage)
	if err == nil {
		return percentage, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, errs.Mark(errs.Wrap(err, "coupon claim failed"), errs.ErrStoreFailure)
	}

	// Claim refused: read the row to report the precise reason.
	c, findErr := l.FindByCode(ctx, code)
	if findErr != nil {
		return 0, findErr
	}
	return 0, c.CheckRedeemable()
}

func (l *CouponLedger) Release(ctx context.Context, code string) error {
	tag, err := l.pool.Exec(ctx, `
		UPDATE coupons
		SET current_claims = greatest(current_claims - 1, 0)
		WHERE code = $1`,
		coupon.NormalizeCode(code),
	)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "coupon release failed"), errs.ErrStoreFailure)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrCouponNotFound
	}
	return nil
}

func (l *CouponLedger) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	row := l.pool.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1`, coupon.NormalizeCode(code))
	c, err := scanCoupon(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to load coupon"), errs.ErrStoreFailure)
	}
	return c, nil
}

func (l *CouponLedger) ListAll(ctx context.Context) ([]*coupon.Coupon, error) {
	rows, err := l.pool.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY code`)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list coupons"), errs.ErrStoreFailure)
	}
	defer rows.Close()

	var out []*coupon.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to scan coupon row"), errs.ErrStoreFailure)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to iterate coupon rows"), errs.ErrStoreFailure)
	}
	return out, nil
}

func (l *CouponLedger) Create(ctx context.Context, p usecase.CouponParams) (*coupon.Coupon, error) {
	c, err := coupon.NewCoupon(uuid.New(), p.Title, p.Description, p.Code, p.Percentage, p.MaxClaims)
	if err != nil {
		return nil, err
	}

	_, err = l.pool.Exec(ctx, `
		INSERT INTO coupons (id, title, description, code, percentage, active, max_claims, current_claims)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0)`,
		c.ID(), c.Title(), c.Description(), c.Code(), c.Percentage(), c.Active(), c.MaxClaims(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, errs.ErrDuplicateCoupon
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to insert coupon"), errs.ErrStoreFailure)
	}
	return c, nil
}

func (l *CouponLedger) Configure(ctx context.Context, code string, percentage, maxClaims int) error {
	if percentage < 0 || percentage > 100 || maxClaims <= 0 {
		return errs.ErrInvalidCoupon
	}

	tag, err := l.pool.Exec(ctx, `
		UPDATE coupons SET percentage = $2, max_claims = $3 WHERE code = $1`,
		coupon.NormalizeCode(code), percentage, maxClaims,
	)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to configure coupon"), errs.ErrStoreFailure)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrCouponNotFound
	}
	return nil
}

func (l *CouponLedger) SetActive(ctx context.Context, code string, active bool) error {
	tag, err := l.pool.Exec(ctx, `UPDATE coupons SET active = $2 WHERE code = $1`,
		coupon.NormalizeCode(code), active)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to toggle coupon"), errs.ErrStoreFailure)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrCouponNotFound
	}
	return nil
}

func scanCoupon(row rowScanner) (*coupon.Coupon, error) {
	var (
		id                       uuid.UUID
		title, description, code string
		percentage               int
		active                   bool
		maxClaims, currentClaims int
	)
	if err := row.Scan(&id, &title, &description, &code, &percentage, &active, &maxClaims, &currentClaims); err != nil {
		return nil, err
	}
	return coupon.Reconstruct(id, title, description, code, percentage, active, maxClaims, currentClaims), nil
}
