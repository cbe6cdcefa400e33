package coupon

import (
	"strings"

	"arcade-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Coupon is a capped-redemption discount offer. Claim counters are owned by
// the coupon ledger; instances here are snapshots for validation and display.
type Coupon struct {
	id            uuid.UUID
	title         string
	description   string
	code          string
	percentage    int
	active        bool
	maxClaims     int
	currentClaims int
}

// NormalizeCode is the case-insensitive matching key for coupon codes.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewCoupon(id uuid.UUID, title, description, code string, percentage, maxClaims int) (*Coupon, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, errs.ErrInvalidCoupon
	}
	if percentage < 0 || percentage > 100 {
		return nil, errs.ErrInvalidCoupon
	}
	if maxClaims <= 0 {
		return nil, errs.ErrInvalidCoupon
	}

	return &Coupon{
		id:          id,
		title:       title,
		description: description,
		code:        code,
		percentage:  percentage,
		active:      false,
		maxClaims:   maxClaims,
	}, nil
}

func Reconstruct(id uuid.UUID, title, description, code string, percentage int, active bool, maxClaims, currentClaims int) *Coupon {
	return &Coupon{
		id:            id,
		title:         title,
		description:   description,
		code:          NormalizeCode(code),
		percentage:    percentage,
		active:        active,
		maxClaims:     maxClaims,
		currentClaims: currentClaims,
	}
}

// CheckRedeemable distinguishes the inactive and exhausted cases so callers
// can surface an accurate message.
func (c *Coupon) CheckRedeemable() error {
	if !c.active {
		return errs.ErrCouponInactive
	}
	if c.currentClaims >= c.maxClaims {
		return errs.ErrCouponExhausted
	}
	return nil
}

func (c *Coupon) RemainingClaims() int {
	remaining := c.maxClaims - c.currentClaims
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *Coupon) ID() uuid.UUID       { return c.id }
func (c *Coupon) Title() string       { return c.title }
func (c *Coupon) Description() string { return c.description }
func (c *Coupon) Code() string        { return c.code }
func (c *Coupon) Percentage() int     { return c.percentage }
func (c *Coupon) Active() bool        { return c.active }
func (c *Coupon) MaxClaims() int      { return c.maxClaims }
func (c *Coupon) CurrentClaims() int  { return c.currentClaims }
