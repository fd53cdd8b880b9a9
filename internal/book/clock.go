package book

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The shell asks it for "today" before computing upcoming birthdays.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the calendar date of c.Now().
func Today(c Clock) time.Time {
	return dateOf(c.Now())
}
