package api

import (
	"errors"
	"fmt"
	"net/http"

	"arcade-booking/internal/domain/booking"
	reqdto "arcade-booking/internal/handler/dto/request"
	resdto "arcade-booking/internal/handler/dto/response"
	"arcade-booking/internal/handler/middleware"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	engine *usecase.Engine
}

func NewBookingHandler(engine *usecase.Engine) *BookingHandler {
	return &BookingHandler{engine: engine}
}

func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quote, err := h.engine.Quote(c.Request.Context(), req.GameID, req.Hours, req.NormalizedCouponCode())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, errs.ErrCouponInactive):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coupon is not active",
			})
		case errors.Is(err, errs.ErrCouponExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon is fully claimed",
			})
		case errors.Is(err, errs.ErrInvalidBooking):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking duration",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start time, expected HH:MM",
		})
		return
	}

	b, err := h.engine.ConfirmBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrShopClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Venue is currently closed",
			})
		case errors.Is(err, errs.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
		case errors.Is(err, errs.ErrGameUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Game is not available for booking",
			})
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, errs.ErrCouponInactive):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coupon is not active",
			})
		case errors.Is(err, errs.ErrCouponExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon is fully claimed",
			})
		case errors.Is(err, errs.ErrInvalidBooking):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if role, _ := middleware.GetUserRole(c); role == middleware.RoleAdmin && c.Query("all") == "true" {
		bs, err := h.engine.ListAllBookings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromBookings(bs))
		return
	}

	bs, err := h.engine.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(bs))
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, ok := h.fetchAuthorized(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

func (h *BookingHandler) Receipt(c *gin.Context) {
	b, ok := h.fetchAuthorized(c)
	if !ok {
		return
	}
	ticketURL := fmt.Sprintf("/api/verify?bid=%s", b.ID())
	c.JSON(http.StatusOK, resdto.FromBookingReceipt(b, ticketURL))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	b, err := h.engine.CancelBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not cancellable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// fetchAuthorized loads the booking and enforces that only the owner or an
// admin may read it. Writes the error response itself when it returns !ok.
func (h *BookingHandler) fetchAuthorized(c *gin.Context) (*booking.Booking, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return nil, false
	}

	b, err := h.engine.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return nil, false
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	if b.UserID() != userID && role != middleware.RoleAdmin {
		// Do not leak existence of other users' bookings.
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return nil, false
	}

	return b, true
}
