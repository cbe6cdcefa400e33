package response

import (
	"arcade-booking/internal/usecase"
)

type VerifyResponse struct {
	Found   bool             `json:"found"`
	Valid   bool             `json:"valid"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

func FromVerifyResult(r usecase.VerifyResult) VerifyResponse {
	resp := VerifyResponse{Found: r.Found, Valid: r.Valid}
	if r.Booking != nil {
		resp.Booking = FromBooking(r.Booking)
	}
	return resp
}
