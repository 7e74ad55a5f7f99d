// Package calendar derives Monday-aligned week keys and the coarse phrases
// used to refer to past weeks.
package calendar

import (
	"fmt"
	"time"
)

// KeyFormat is the layout of a week key.
const KeyFormat = "2006-01-02"

const hoursPerDay = 24

// WeekStart returns midnight of the Monday of t's week, in t's location.
// Sunday belongs to the week that started six days earlier.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}

// WeekKey returns the week key of the week containing t.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format(KeyFormat)
}

// ParseWeekKey parses a YYYY-MM-DD key as midnight in loc.
func ParseWeekKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(KeyFormat, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week key %q: %w", key, err)
	}
	return t, nil
}

// DaysBetween returns the number of calendar days from `from` to `to`.
// Only the calendar dates are compared, so DST shifts and time of day do not matter.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / hoursPerDay)
}

// WeeksBetween returns the whole weeks from `from` to `to`, floored.
func WeeksBetween(from, to time.Time) int {
	days := DaysBetween(from, to)
	weeks := days / 7
	if days%7 != 0 && days < 0 {
		weeks--
	}
	return weeks
}
