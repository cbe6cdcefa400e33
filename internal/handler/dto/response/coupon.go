package response

import (
	"arcade-booking/internal/domain/coupon"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Code            string    `json:"code"`
	Percentage      int       `json:"percentage"`
	Active          bool      `json:"active"`
	MaxClaims       int       `json:"maxClaims"`
	CurrentClaims   int       `json:"currentClaims"`
	RemainingClaims int       `json:"remainingClaims"`
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:              c.ID(),
		Title:           c.Title(),
		Description:     c.Description(),
		Code:            c.Code(),
		Percentage:      c.Percentage(),
		Active:          c.Active(),
		MaxClaims:       c.MaxClaims(),
		CurrentClaims:   c.CurrentClaims(),
		RemainingClaims: c.RemainingClaims(),
	}
}

func FromCoupons(cs []*coupon.Coupon) []*CouponResponse {
	out := make([]*CouponResponse, len(cs))
	for i, c := range cs {
		out[i] = FromCoupon(c)
	}
	return out
}
