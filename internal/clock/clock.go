package clock

import "time"

// Clock provides the current time; tests substitute a fixed one.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// New creates a new RealClock.
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock frozen at a settable instant.
type Fixed struct {
	T time.Time
}

// NewFixed returns a Fixed clock set to t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{T: t}
}

// Now returns the frozen time.
func (c *Fixed) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
