package clock

import "time"

// Clock abstracts time so creation timestamps are settable in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a test clock pinned to a settable instant.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a FixedClock starting at the given time.
func NewFixedClock(start time.Time) *FixedClock {
	return &FixedClock{current: start}
}

// Now returns the pinned time.
func (c *FixedClock) Now() time.Time {
	return c.current
}

// Advance moves the pinned time forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
