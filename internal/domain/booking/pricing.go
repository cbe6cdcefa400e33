package booking

import "math"

// Quote is the price preview for a prospective booking, in whole currency
// units. Total is what a confirmation with identical arguments charges, so
// preview and charge can never drift.
type Quote struct {
	Subtotal int `json:"subtotal"`
	Discount int `json:"discount"`
	Total    int `json:"total"`
}

// ComputeQuote prices a slot: subtotal = rate * hours, discount =
// round(subtotal * percentage / 100), total = subtotal - discount.
// All rounding is half-up to the nearest whole unit.
func ComputeQuote(ratePerHour int, hours float64, discountPercent int) Quote {
	subtotal := roundHalfUp(float64(ratePerHour) * hours)
	discount := roundHalfUp(float64(subtotal) * float64(discountPercent) / 100.0)
	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
