package model

import "github.com/google/uuid"

// ThemeType tells which detector produced a theme.
type ThemeType string

const (
	ThemeTypeRepeatedPrompt ThemeType = "repeated-prompt"
	ThemeTypeRepeatedPhrase ThemeType = "repeated-phrase"
)

// ReflectionTheme is a short neutral summary of something recurring in reflections.
// It is derived on every request and never stored.
type ReflectionTheme struct {
	Text string
	Type ThemeType
}

// PersistentUncertainty names a life area currently at low confidence.
type PersistentUncertainty struct {
	LifeAreaID   uuid.UUID
	LifeAreaName string
}

// PatternAwareness is the combined output shown to the user.
type PatternAwareness struct {
	ReflectionThemes        []ReflectionTheme
	PersistentUncertainties []PersistentUncertainty
}
