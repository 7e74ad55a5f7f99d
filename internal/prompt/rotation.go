// Package prompt selects the weekly reflection prompt.
package prompt

import (
	"time"

	"github.com/NapAndCommit/still-figuring-it-out/internal/calendar"
)

// weeklyPrompts are open-ended and avoid urgency or self-improvement framing.
// The order is part of the rotation and must not change.
var weeklyPrompts = [...]string{
	"What feels most unclear right now?",
	"What decision am I avoiding, and why?",
	"What did I do out of fear this week?",
	"What gave me a small sense of direction?",
	"What am I pretending not to think about?",
	"What uncertainty am I carrying?",
	"What feels like it's waiting?",
	"What did I notice about myself this week?",
	"What question keeps coming back?",
	"What feels unresolved?",
}

// Epoch is the Monday the rotation counts weeks from.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Rotation maps week start dates to prompts.
type Rotation struct {
	prompts []string
	epoch   time.Time
}

// NewRotation creates a Rotation over the built-in prompt list.
func NewRotation() *Rotation {
	return &Rotation{
		prompts: weeklyPrompts[:],
		epoch:   Epoch,
	}
}

// Prompts returns a copy of the prompt list in rotation order.
func (r *Rotation) Prompts() []string {
	out := make([]string, len(r.prompts))
	copy(out, r.prompts)
	return out
}

// IndexForWeek returns the prompt index for the week starting at weekStart.
// Weeks before the epoch count by their absolute distance, so dates mirrored
// around the epoch share an index.
func (r *Rotation) IndexForWeek(weekStart time.Time) int {
	days := calendar.DaysBetween(r.epoch, weekStart)
	if days < 0 {
		days = -days
	}
	return (days / 7) % len(r.prompts)
}

// ForWeek returns the prompt for the week starting at weekStart.
func (r *Rotation) ForWeek(weekStart time.Time) string {
	return r.prompts[r.IndexForWeek(weekStart)]
}
