package request

import (
	"strings"
	"time"

	"arcade-booking/internal/domain/schedule"
	"arcade-booking/internal/usecase"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	GameID     uuid.UUID `json:"game_id" binding:"required"`
	Hours      float64   `json:"hours" binding:"required,gt=0"`
	CouponCode string    `json:"coupon_code,omitempty"`
}

func (r QuoteRequest) NormalizedCouponCode() string {
	return strings.TrimSpace(r.CouponCode)
}

type CreateBookingRequest struct {
	GameID     uuid.UUID `json:"game_id" binding:"required"`
	Day        time.Time `json:"day" binding:"required"`
	Start      string    `json:"start" binding:"required"`
	Hours      float64   `json:"hours" binding:"required,gt=0"`
	CouponCode string    `json:"coupon_code,omitempty"`
}

// ToParams resolves the wire shape into engine parameters. Start is the
// venue-local HH:MM slot start.
func (r CreateBookingRequest) ToParams(userID string) (usecase.ConfirmBookingParams, error) {
	start, err := schedule.ParseTimeOfDay(r.Start)
	if err != nil {
		return usecase.ConfirmBookingParams{}, err
	}

	return usecase.ConfirmBookingParams{
		UserID:     userID,
		GameID:     r.GameID,
		Day:        r.Day,
		Start:      start,
		Hours:      r.Hours,
		CouponCode: strings.TrimSpace(r.CouponCode),
	}, nil
}
