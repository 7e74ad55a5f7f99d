package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSoftTimeReference(t *testing.T) {
	t.Parallel()

	// A Thursday, so "now" is mid-week.
	now := time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)
	monday := WeekStart(now)
	weeksAgo := func(n int) time.Time { return monday.AddDate(0, 0, -7*n) }

	tests := []struct {
		name      string
		weekStart time.Time
		want      string
	}{
		{name: "current week", weekStart: monday, want: "This week"},
		{name: "future week", weekStart: weeksAgo(-2), want: "This week"},
		{name: "one week", weekStart: weeksAgo(1), want: "About a week ago"},
		{name: "two weeks", weekStart: weeksAgo(2), want: "About 2 weeks ago"},
		{name: "three weeks", weekStart: weeksAgo(3), want: "About 3 weeks ago"},
		{name: "four weeks", weekStart: weeksAgo(4), want: "A few weeks ago"},
		{name: "seven weeks", weekStart: weeksAgo(7), want: "A few weeks ago"},
		{name: "eight weeks", weekStart: weeksAgo(8), want: "A couple months ago"},
		{name: "twelve weeks", weekStart: weeksAgo(12), want: "A couple months ago"},
		{name: "thirteen weeks", weekStart: weeksAgo(13), want: "A few months ago"},
		{name: "twenty five weeks", weekStart: weeksAgo(25), want: "A few months ago"},
		{name: "twenty six weeks", weekStart: weeksAgo(26), want: "About a year ago"},
		{name: "thirty weeks", weekStart: weeksAgo(30), want: "About a year ago"},
		{name: "fifty one weeks", weekStart: weeksAgo(51), want: "About a year ago"},
		{name: "fifty two weeks", weekStart: weeksAgo(52), want: "A while ago"},
		{name: "sixty weeks", weekStart: weeksAgo(60), want: "A while ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SoftTimeReference(tt.weekStart, now))
		})
	}
}

func TestSoftTimeReference_StableWithinWeek(t *testing.T) {
	t.Parallel()

	weekStart := time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 7; d++ {
		assert.Equal(t, "About a week ago", SoftTimeReference(weekStart, monday.AddDate(0, 0, d).Add(23*time.Hour)))
	}
}
