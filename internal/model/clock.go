package model

import "time"

// Clock supplies the current time. It is read at the moment of every
// creation or "today" query, never cached.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// Today returns the calendar day of c.Now() in the clock's location.
func Today(c Clock) Date {
	return DateOf(c.Now())
}
