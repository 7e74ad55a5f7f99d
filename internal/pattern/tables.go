package pattern

// FallbackPromptTheme labels a repeated prompt missing from the summary table.
const FallbackPromptTheme = "A recurring theme"

// PhrasePattern maps a lowercase substring to the theme it signals.
type PhrasePattern struct {
	Pattern string
	Theme   string
}

// Tables holds the lookup data the detector works from.
type Tables struct {
	PromptThemes   map[string]string
	PhrasePatterns []PhrasePattern
}

// DefaultTables returns the built-in prompt summaries and phrase patterns.
// A fresh copy is returned on every call.
func DefaultTables() Tables {
	return Tables{
		PromptThemes: map[string]string{
			"What feels most unclear right now?":        "Uncertainty around what's unclear",
			"What decision am I avoiding, and why?":     "Avoiding a difficult conversation",
			"What did I do out of fear this week?":      "Acting from fear",
			"What gave me a small sense of direction?":  "Small moments of direction",
			"What am I pretending not to think about?":  "Something being avoided",
			"What uncertainty am I carrying?":           "Carrying uncertainty",
			"What feels like it's waiting?":             "Something waiting",
			"What did I notice about myself this week?": "Self-observation",
			"What question keeps coming back?":          "A recurring question",
			"What feels unresolved?":                    "Something unresolved",
		},
		// Matching is plain substring search, so "financ" also hits "financial"
		// and "work" also hits "homework".
		PhrasePatterns: []PhrasePattern{
			{Pattern: "career", Theme: "Uncertainty around career direction"},
			{Pattern: "job", Theme: "Uncertainty around career direction"},
			{Pattern: "work", Theme: "Uncertainty around career direction"},
			{Pattern: "money", Theme: "Financial uncertainty"},
			{Pattern: "financ", Theme: "Financial uncertainty"},
			{Pattern: "relationship", Theme: "Relationship uncertainty"},
			{Pattern: "partner", Theme: "Relationship uncertainty"},
			{Pattern: "friend", Theme: "Relationship uncertainty"},
			{Pattern: "conversation", Theme: "Avoiding a difficult conversation"},
			{Pattern: "talk", Theme: "Avoiding a difficult conversation"},
			{Pattern: "decision", Theme: "A decision being avoided"},
			{Pattern: "choose", Theme: "A decision being avoided"},
			{Pattern: "uncertain", Theme: "Uncertainty"},
			{Pattern: "uncertainty", Theme: "Uncertainty"},
			{Pattern: "unclear", Theme: "Things feeling unclear"},
			{Pattern: "not sure", Theme: "Not being sure"},
			{Pattern: "don't know", Theme: "Not knowing"},
			{Pattern: "confused", Theme: "Confusion"},
			{Pattern: "avoiding", Theme: "Avoiding something"},
			{Pattern: "afraid", Theme: "Fear"},
			{Pattern: "fear", Theme: "Fear"},
			{Pattern: "worried", Theme: "Worry"},
			{Pattern: "anxious", Theme: "Anxiety"},
			{Pattern: "stuck", Theme: "Feeling stuck"},
			{Pattern: "waiting", Theme: "Something waiting"},
			{Pattern: "unresolved", Theme: "Unresolved matters"},
		},
	}
}
