package booking

import (
	"time"

	"arcade-booking/internal/domain/schedule"
	"arcade-booking/internal/pkg/errs"
)

// Slot is the reserved span: a calendar date, a start time of day and a
// duration in hours. Fractional hours are supported (0.5h increments in the
// UI, but any positive value is valid here). The expiry instant is always
// derived from these fields, never stored independently.
type Slot struct {
	day   time.Time
	start schedule.TimeOfDay
	hours float64
}

func NewSlot(day time.Time, start schedule.TimeOfDay, hours float64) (Slot, error) {
	if hours <= 0 {
		return Slot{}, errs.ErrInvalidBooking
	}
	return Slot{
		day:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
		start: start,
		hours: hours,
	}, nil
}

func (s Slot) Day() time.Time            { return s.day }
func (s Slot) Start() schedule.TimeOfDay { return s.start }
func (s Slot) Hours() float64            { return s.hours }

func (s Slot) StartsAt() time.Time {
	return s.start.At(s.day)
}

func (s Slot) EndsAt() time.Time {
	return s.StartsAt().Add(s.DurationSpan())
}

func (s Slot) DurationSpan() time.Duration {
	return time.Duration(s.hours * float64(time.Hour))
}

// ExpiredAt reports whether the slot is fully over at now. The boundary is
// strict: a booking ending exactly at now has not expired yet.
func (s Slot) ExpiredAt(now time.Time) bool {
	return now.After(s.EndsAt())
}
