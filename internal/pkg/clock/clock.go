package clock

import "time"

// Clock abstracts the time source so schedule evaluation and expiry sweeps
// can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a manually advanced clock for tests.
type FakeClock struct {
	current time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

func (c *FakeClock) Now() time.Time {
	return c.current
}

func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
