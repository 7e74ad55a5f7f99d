package calendar

import (
	"fmt"
	"time"
)

// SoftTimeReference describes how long ago weekStart was, relative to the week
// containing now. The phrase is deliberately coarse and never contains a date.
func SoftTimeReference(weekStart, now time.Time) string {
	weeks := WeeksBetween(WeekStart(weekStart), WeekStart(now))

	switch {
	case weeks <= 0:
		return "This week"
	case weeks == 1:
		return "About a week ago"
	case weeks < 4:
		return fmt.Sprintf("About %d weeks ago", weeks)
	case weeks < 8:
		return "A few weeks ago"
	case weeks < 13:
		return "A couple months ago"
	case weeks < 26:
		return "A few months ago"
	case weeks < 52:
		return "About a year ago"
	default:
		return "A while ago"
	}
}
