package service

import "time"

// Clock returns the current time in the journal's timezone.
type Clock func() time.Time

// ClockIn returns a Clock reading the wall clock in loc.
func ClockIn(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}
