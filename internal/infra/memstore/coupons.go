package memstore

import (
	"context"
	"sort"
	"sync"

	"arcade-booking/internal/domain/coupon"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/google/uuid"
)

type couponRecord struct {
	id            uuid.UUID
	title         string
	description   string
	code          string
	percentage    int
	active        bool
	maxClaims     int
	currentClaims int
}

// CouponLedger holds redemption counters keyed by normalized code. The mutex
// makes the eligibility check and the increment in TryClaim one atomic step,
// which is the ledger's central correctness property.
type CouponLedger struct {
	mu      sync.Mutex
	coupons map[string]*couponRecord
}

var _ usecase.CouponLedger = (*CouponLedger)(nil)

func NewCouponLedger() *CouponLedger {
	return &CouponLedger{
		coupons: make(map[string]*couponRecord),
	}
}

func (l *CouponLedger) TryClaim(_ context.Context, code string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.coupons[coupon.NormalizeCode(code)]
	if !ok {
		return 0, errs.ErrCouponNotFound
	}
	if !rec.active {
		return 0, errs.ErrCouponInactive
	}
	if rec.currentClaims >= rec.maxClaims {
		return 0, errs.ErrCouponExhausted
	}

	rec.currentClaims++
	return rec.percentage, nil
}

func (l *CouponLedger) Release(_ context.Context, code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.coupons[coupon.NormalizeCode(code)]
	if !ok {
		return errs.ErrCouponNotFound
	}
	if rec.currentClaims > 0 {
		rec.currentClaims--
	}
	return nil
}

func (l *CouponLedger) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.coupons[coupon.NormalizeCode(code)]
	if !ok {
		return nil, errs.ErrCouponNotFound
	}
	return rec.entity(), nil
}

func (l *CouponLedger) ListAll(_ context.Context) ([]*coupon.Coupon, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*coupon.Coupon, 0, len(l.coupons))
	for _, rec := range l.coupons {
		out = append(out, rec.entity())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out, nil
}

func (l *CouponLedger) Create(_ context.Context, p usecase.CouponParams) (*coupon.Coupon, error) {
	c, err := coupon.NewCoupon(uuid.New(), p.Title, p.Description, p.Code, p.Percentage, p.MaxClaims)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.coupons[c.Code()]; exists {
		return nil, errs.ErrDuplicateCoupon
	}
	l.coupons[c.Code()] = &couponRecord{
		id:          c.ID(),
		title:       c.Title(),
		description: c.Description(),
		code:        c.Code(),
		percentage:  c.Percentage(),
		active:      c.Active(),
		maxClaims:   c.MaxClaims(),
	}
	return c, nil
}

func (l *CouponLedger) Configure(_ context.Context, code string, percentage, maxClaims int) error {
	if percentage < 0 || percentage > 100 || maxClaims <= 0 {
		return errs.ErrInvalidCoupon
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.coupons[coupon.NormalizeCode(code)]
	if !ok {
		return errs.ErrCouponNotFound
	}
	rec.percentage = percentage
	rec.maxClaims = maxClaims
	return nil
}

func (l *CouponLedger) SetActive(_ context.Context, code string, active bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.coupons[coupon.NormalizeCode(code)]
	if !ok {
		return errs.ErrCouponNotFound
	}
	rec.active = active
	return nil
}

func (r *couponRecord) entity() *coupon.Coupon {
	return coupon.Reconstruct(r.id, r.title, r.description, r.code, r.percentage, r.active, r.maxClaims, r.currentClaims)
}
