package request

import (
	"arcade-booking/internal/usecase"
)

type CreateCouponRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code" binding:"required"`
	Percentage  int    `json:"percentage" binding:"min=0,max=100"`
	MaxClaims   int    `json:"max_claims" binding:"required,gt=0"`
}

func (r CreateCouponRequest) ToParams() usecase.CouponParams {
	return usecase.CouponParams{
		Title:       r.Title,
		Description: r.Description,
		Code:        r.Code,
		Percentage:  r.Percentage,
		MaxClaims:   r.MaxClaims,
	}
}

// UpdateCouponRequest carries a partial update; absent fields keep their
// current values.
type UpdateCouponRequest struct {
	Percentage *int  `json:"percentage,omitempty" binding:"omitempty,min=0,max=100"`
	MaxClaims  *int  `json:"max_claims,omitempty" binding:"omitempty,gt=0"`
	Active     *bool `json:"active,omitempty"`
}

func (r UpdateCouponRequest) Empty() bool {
	return r.Percentage == nil && r.MaxClaims == nil && r.Active == nil
}
