package schedule

import "time"

// Window is the configured daily open window of the venue.
type Window struct {
	Open  TimeOfDay
	Close TimeOfDay
}

func NewWindow(open, close TimeOfDay) Window {
	return Window{Open: open, Close: close}
}

// Contains reports whether now falls inside the window.
//
// A close after open is a same-day window: open <= now < close. A close at or
// before open wraps past midnight (e.g. 22:00-02:00): now >= open OR
// now < close. Equal open and close is deliberately a zero-width window, so
// the venue is always closed rather than always open.
func (w Window) Contains(now time.Time) bool {
	if w.Open.Minutes() == w.Close.Minutes() {
		return false
	}

	m := MinutesOf(now)
	if w.Close.Minutes() > w.Open.Minutes() {
		return m >= w.Open.Minutes() && m < w.Close.Minutes()
	}
	return m >= w.Open.Minutes() || m < w.Close.Minutes()
}

// Shop is the venue availability configuration. IsOpen is authoritative only
// while AutoMode is off; with AutoMode on it is a cached projection of
// Window.Contains that the scheduling engine reconciles on every evaluation.
type Shop struct {
	IsOpen   bool
	Window   Window
	AutoMode bool
}

// EffectiveOpen resolves the open state for now without mutating the cache.
func (s Shop) EffectiveOpen(now time.Time) bool {
	if !s.AutoMode {
		return s.IsOpen
	}
	return s.Window.Contains(now)
}
