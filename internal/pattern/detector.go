// Package pattern surfaces recurring prompts, phrases and low-confidence
// life areas from a user's own history.
package pattern

import (
	"strings"

	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

// minPhraseReflections is the number of distinct reflections a phrase theme needs.
const minPhraseReflections = 2

// Detector runs the pattern checks over fixed lookup tables.
// It holds no mutable state and is safe for concurrent use.
type Detector struct {
	promptThemes   map[string]string
	phrasePatterns []PhrasePattern
}

// NewDetector creates a Detector from tables. The tables are copied.
func NewDetector(tables Tables) *Detector {
	themes := make(map[string]string, len(tables.PromptThemes))
	for k, v := range tables.PromptThemes {
		themes[k] = v
	}

	phrases := make([]PhrasePattern, len(tables.PhrasePatterns))
	for i, p := range tables.PhrasePatterns {
		phrases[i] = PhrasePattern{Pattern: strings.ToLower(p.Pattern), Theme: p.Theme}
	}

	return &Detector{
		promptThemes:   themes,
		phrasePatterns: phrases,
	}
}

// RepeatedPrompts returns one theme per prompt answered more than once.
func (d *Detector) RepeatedPrompts(reflections []model.WeeklyReflection) []model.ReflectionTheme {
	counts := newCounter()
	for _, r := range reflections {
		if r.HasResponse() {
			counts.add(r.Prompt)
		}
	}

	var themes []model.ReflectionTheme
	for _, prompt := range counts.order {
		if counts.n[prompt] > 1 {
			themes = append(themes, model.ReflectionTheme{
				Text: d.promptTheme(prompt),
				Type: model.ThemeTypeRepeatedPrompt,
			})
		}
	}
	return themes
}

// RepeatedPhrases returns one theme per phrase theme found in at least two
// distinct answered reflections. A reflection counts once per theme no matter
// how many of the theme's patterns it contains.
func (d *Detector) RepeatedPhrases(reflections []model.WeeklyReflection) []model.ReflectionTheme {
	answered := make([]string, 0, len(reflections))
	for _, r := range reflections {
		if r.HasResponse() {
			answered = append(answered, strings.ToLower(*r.Response))
		}
	}
	if len(answered) < minPhraseReflections {
		return nil
	}

	counts := newCounter()
	for _, text := range answered {
		seen := make(map[string]struct{})
		for _, p := range d.phrasePatterns {
			if _, ok := seen[p.Theme]; ok {
				continue
			}
			if strings.Contains(text, p.Pattern) {
				seen[p.Theme] = struct{}{}
				counts.add(p.Theme)
			}
		}
	}

	var themes []model.ReflectionTheme
	for _, theme := range counts.order {
		if counts.n[theme] >= minPhraseReflections {
			themes = append(themes, model.ReflectionTheme{
				Text: theme,
				Type: model.ThemeTypeRepeatedPhrase,
			})
		}
	}
	return themes
}

// PersistentUncertainty returns the areas currently at one of the two lowest
// confidence levels. It looks at the given snapshot only, not at history.
func (d *Detector) PersistentUncertainty(areas []model.LifeArea) []model.PersistentUncertainty {
	var out []model.PersistentUncertainty
	for _, a := range areas {
		if a.Confidence.IsLow() {
			out = append(out, model.PersistentUncertainty{
				LifeAreaID:   a.ID,
				LifeAreaName: a.Name,
			})
		}
	}
	return out
}

// Themes runs both reflection detectors and merges their output.
func (d *Detector) Themes(reflections []model.WeeklyReflection) []model.ReflectionTheme {
	merged := append(d.RepeatedPrompts(reflections), d.RepeatedPhrases(reflections)...)
	return Dedupe(merged)
}

// Analyze computes the full pattern summary.
func (d *Detector) Analyze(reflections []model.WeeklyReflection, areas []model.LifeArea) model.PatternAwareness {
	return model.PatternAwareness{
		ReflectionThemes:        d.Themes(reflections),
		PersistentUncertainties: d.PersistentUncertainty(areas),
	}
}

// Dedupe keeps one theme per text. A text keeps the position where it first
// appeared and takes the value of its last occurrence.
func Dedupe(themes []model.ReflectionTheme) []model.ReflectionTheme {
	index := make(map[string]int, len(themes))
	var out []model.ReflectionTheme
	for _, t := range themes {
		if i, ok := index[t.Text]; ok {
			out[i] = t
			continue
		}
		index[t.Text] = len(out)
		out = append(out, t)
	}
	return out
}

func (d *Detector) promptTheme(prompt string) string {
	if theme, ok := d.promptThemes[prompt]; ok {
		return theme
	}
	return FallbackPromptTheme
}

// counter tallies keys and remembers the order they were first seen in.
type counter struct {
	n     map[string]int
	order []string
}

func newCounter() *counter {
	return &counter{n: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.n[key]; !ok {
		c.order = append(c.order, key)
	}
	c.n[key]++
}
