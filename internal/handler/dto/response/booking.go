package response

import (
	"time"

	"arcade-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	GameID     uuid.UUID `json:"gameId"`
	GameTitle  string    `json:"gameTitle"`
	UserID     string    `json:"userId"`
	Day        string    `json:"day"`
	Start      string    `json:"start"`
	Hours      float64   `json:"hours"`
	EndsAt     time.Time `json:"endsAt"`
	Price      int       `json:"price"`
	CouponCode *string   `json:"couponCode,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type QuoteResponse struct {
	Subtotal int `json:"subtotal"`
	Discount int `json:"discount"`
	Total    int `json:"total"`
}

// ReceiptResponse is the printable projection handed to the customer after
// confirmation. TicketURL is what the entry QR code encodes.
type ReceiptResponse struct {
	BookingID  uuid.UUID `json:"bookingId"`
	GameTitle  string    `json:"gameTitle"`
	Day        string    `json:"day"`
	Start      string    `json:"start"`
	Hours      float64   `json:"hours"`
	Price      int       `json:"price"`
	CouponCode *string   `json:"couponCode,omitempty"`
	Status     string    `json:"status"`
	TicketURL  string    `json:"ticketUrl"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID(),
		GameID:     b.GameID(),
		GameTitle:  b.GameTitle(),
		UserID:     b.UserID(),
		Day:        b.Slot().Day().Format("2006-01-02"),
		Start:      b.Slot().Start().String(),
		Hours:      b.Slot().Hours(),
		EndsAt:     b.Slot().EndsAt(),
		Price:      b.Price(),
		CouponCode: b.CouponCode(),
		Status:     string(b.Status()),
		CreatedAt:  b.CreatedAt(),
	}
}

func FromBookings(bs []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromBooking(b)
	}
	return out
}

func FromQuote(q booking.Quote) QuoteResponse {
	return QuoteResponse{Subtotal: q.Subtotal, Discount: q.Discount, Total: q.Total}
}

func FromBookingReceipt(b *booking.Booking, ticketURL string) *ReceiptResponse {
	return &ReceiptResponse{
		BookingID:  b.ID(),
		GameTitle:  b.GameTitle(),
		Day:        b.Slot().Day().Format("2006-01-02"),
		Start:      b.Slot().Start().String(),
		Hours:      b.Slot().Hours(),
		Price:      b.Price(),
		CouponCode: b.CouponCode(),
		Status:     string(b.Status()),
		TicketURL:  ticketURL,
	}
}
