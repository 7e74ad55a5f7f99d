package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LifeAreaStore defines persistence operations for life areas.
type LifeAreaStore interface {
	ListByUser(ctx context.Context, userID string) ([]LifeArea, error)
	InsertMissing(ctx context.Context, userID string, areas []LifeArea) (int, error)
	Update(ctx context.Context, userID string, area LifeArea) error
}

// LifeArea is a domain of a user's life tracked with free text and a clarity rating.
type LifeArea struct {
	ID           uuid.UUID
	UserID       string
	Name         string
	CurrentState string
	Confidence   Confidence
	TopQuestion  string
	Helper       string
	UpdatedAt    time.Time
}

// Confidence is the 5-level clarity scale of a life area.
type Confidence string

const (
	ConfidenceVeryUnclear Confidence = "very-unclear"
	ConfidenceUnclear     Confidence = "unclear"
	ConfidenceForming     Confidence = "forming"
	ConfidenceClearIsh    Confidence = "clear-ish"
	ConfidenceMostlyClear Confidence = "mostly-clear"
)

// confidenceScale is ordered from least to most clear.
var confidenceScale = []struct {
	level Confidence
	label string
}{
	{ConfidenceVeryUnclear, "Very unclear"},
	{ConfidenceUnclear, "Unclear"},
	{ConfidenceForming, "Forming"},
	{ConfidenceClearIsh, "Clear-ish"},
	{ConfidenceMostlyClear, "Mostly clear"},
}

// ParseConfidence returns the level named by s, or ConfidenceUnclear if s is not a known level.
func ParseConfidence(s string) Confidence {
	for _, c := range confidenceScale {
		if string(c.level) == s {
			return c.level
		}
	}
	return ConfidenceUnclear
}

// ConfidenceFromOrdinal maps the stored 1..5 ordinal to a level.
// Nil or out-of-range values map to ConfidenceUnclear.
func ConfidenceFromOrdinal(n *int16) Confidence {
	if n == nil || *n < 1 || int(*n) > len(confidenceScale) {
		return ConfidenceUnclear
	}
	return confidenceScale[*n-1].level
}

// Ordinal returns the 1..5 position of the level. Unknown levels are treated as unclear.
func (c Confidence) Ordinal() int16 {
	for i, s := range confidenceScale {
		if s.level == c {
			return int16(i + 1)
		}
	}
	return 2
}

// Label returns the display label of the level.
func (c Confidence) Label() string {
	return confidenceScale[c.Ordinal()-1].label
}

// IsLow reports whether the level is one of the two lowest.
func (c Confidence) IsLow() bool {
	return c == ConfidenceVeryUnclear || c == ConfidenceUnclear
}

// DefaultLifeAreas returns the set every user starts with.
func DefaultLifeAreas() []LifeArea {
	return []LifeArea{
		{
			Name:         "Career",
			CurrentState: "Work might feel a bit undefined right now. This is a place to notice that without needing a plan.",
			Confidence:   ConfidenceUnclear,
			TopQuestion:  "What kind of work might actually feel like you?",
			Helper:       "You don't need to define this yet.",
		},
		{
			Name:         "Money",
			CurrentState: "This could feel shaky, stable, or somewhere in between. All of that belongs here.",
			Confidence:   ConfidenceForming,
			TopQuestion:  "What feels most confusing about money right now?",
			Helper:       "It's okay if this changes.",
		},
		{
			Name:         "Relationships",
			CurrentState: "Connections might feel close, distant, or in transition. There's room for all of that.",
			Confidence:   ConfidenceVeryUnclear,
			TopQuestion:  "Where do you feel most unsure in your connections?",
			Helper:       "Unclear is still a valid state.",
		},
		{
			Name:         "Identity",
			CurrentState: "Who you are might feel in motion. This is a quiet place to notice what's shifting.",
			Confidence:   ConfidenceUnclear,
			TopQuestion:  "What parts of you feel like they're still forming?",
			Helper:       "It's okay if this feels unclear.",
		},
		{
			Name:         "Health",
			CurrentState: "Energy, rest, and movement can be inconsistent. You don't have to fix anything here.",
			Confidence:   ConfidenceUnclear,
			TopQuestion:  "What are you most curious about in your health right now?",
			Helper:       "Uncertainty is part of the process.",
		},
	}
}
