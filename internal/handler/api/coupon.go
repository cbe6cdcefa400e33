package api

import (
	"errors"
	"net/http"

	reqdto "arcade-booking/internal/handler/dto/request"
	resdto "arcade-booking/internal/handler/dto/response"
	"arcade-booking/internal/handler/httperr"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	ledger usecase.CouponLedger
}

func NewCouponHandler(ledger usecase.CouponLedger) *CouponHandler {
	return &CouponHandler{ledger: ledger}
}

func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.ledger.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list coupons", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupons(coupons))
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.ledger.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateCoupon):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon code already exists", nil)
		case errors.Is(err, errs.ErrInvalidCoupon):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon parameters", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create coupon failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCoupon(created))
}

// Update applies a partial change: counters and the active flag are
// independent, so either may arrive alone.
func (h *CouponHandler) Update(c *gin.Context) {
	code := c.Param("code")

	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.Empty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidCoupon, "No fields to update", nil)
		return
	}

	ctx := c.Request.Context()

	if req.Percentage != nil || req.MaxClaims != nil {
		current, err := h.ledger.FindByCode(ctx, code)
		if err != nil {
			abortCouponError(c, err)
			return
		}

		percentage := current.Percentage()
		if req.Percentage != nil {
			percentage = *req.Percentage
		}
		maxClaims := current.MaxClaims()
		if req.MaxClaims != nil {
			maxClaims = *req.MaxClaims
		}

		if err := h.ledger.Configure(ctx, code, percentage, maxClaims); err != nil {
			abortCouponError(c, err)
			return
		}
	}

	if req.Active != nil {
		if err := h.ledger.SetActive(ctx, code, *req.Active); err != nil {
			abortCouponError(c, err)
			return
		}
	}

	updated, err := h.ledger.FindByCode(ctx, code)
	if err != nil {
		abortCouponError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(updated))
}

func abortCouponError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errors.Is(err, errs.ErrInvalidCoupon):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon parameters", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Coupon update failed", nil)
	}
}
