package coupon_test

import (
	"testing"

	"arcade-booking/internal/domain/coupon"
	"arcade-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoupon(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		percentage int
		maxClaims  int
		wantErr    bool
	}{
		{name: "valid", code: "SAVE20", percentage: 20, maxClaims: 5},
		{name: "full discount", code: "GOLD100", percentage: 100, maxClaims: 1},
		{name: "zero percent", code: "NOOP", percentage: 0, maxClaims: 1},
		{name: "empty code", code: "  ", percentage: 10, maxClaims: 5, wantErr: true},
		{name: "negative percentage", code: "NEG", percentage: -1, maxClaims: 5, wantErr: true},
		{name: "percentage above 100", code: "BIG", percentage: 101, maxClaims: 5, wantErr: true},
		{name: "zero max claims", code: "NONE", percentage: 10, maxClaims: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := coupon.NewCoupon(uuid.New(), "Title", "Desc", tt.code, tt.percentage, tt.maxClaims)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidCoupon)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.percentage, c.Percentage())
			assert.False(t, c.Active(), "new coupons start inactive")
			assert.Zero(t, c.CurrentClaims())
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SAVE20", coupon.NormalizeCode("  save20 "))
	assert.Equal(t, "SAVE20", coupon.NormalizeCode("Save20"))
}

func TestCheckRedeemable(t *testing.T) {
	tests := []struct {
		name    string
		active  bool
		claims  int
		max     int
		wantErr error
	}{
		{name: "active with claims left", active: true, claims: 4, max: 5},
		{name: "inactive", active: false, claims: 0, max: 5, wantErr: errs.ErrCouponInactive},
		{name: "exhausted", active: true, claims: 5, max: 5, wantErr: errs.ErrCouponExhausted},
		{name: "inactive and exhausted reports inactive", active: false, claims: 5, max: 5, wantErr: errs.ErrCouponInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := coupon.Reconstruct(uuid.New(), "Title", "Desc", "CODE", 10, tt.active, tt.max, tt.claims)
			err := c.CheckRedeemable()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRemainingClaims(t *testing.T) {
	c := coupon.Reconstruct(uuid.New(), "Title", "Desc", "CODE", 10, true, 5, 3)
	assert.Equal(t, 2, c.RemainingClaims())

	over := coupon.Reconstruct(uuid.New(), "Title", "Desc", "CODE", 10, true, 5, 7)
	assert.Zero(t, over.RemainingClaims(), "remaining claims floors at zero")
}
