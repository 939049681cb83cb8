package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC.
// Snapshot timestamps are always recorded in UTC so that the date-portion
// comparisons in the query pipeline are timezone-independent.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}
