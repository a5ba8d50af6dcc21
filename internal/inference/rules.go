// Package inference derives missing vacancy attributes from raw text. Every
// function is pure and deterministic.
package inference

import (
	"strings"
	"unicode"
)

// Rule maps a keyword family to a result. A keyword ending in "*" matches any
// word starting with the stem; other keywords match whole words or phrases.
type Rule[V any] struct {
	Keywords []string
	Value    V
}

// Classifier evaluates its rules in order; the first match wins.
type Classifier[V any] struct {
	Rules    []Rule[V]
	Fallback V
}

// Classify returns the value of the first rule with a keyword present in text.
func (c Classifier[V]) Classify(text string) V {
	v, _ := c.Match(text)
	return v
}

// Match is Classify that also reports whether a rule fired.
func (c Classifier[V]) Match(text string) (V, bool) {
	norm := normalize(text)
	for _, r := range c.Rules {
		for _, kw := range r.Keywords {
			if matchKeyword(norm, kw) {
				return r.Value, true
			}
		}
	}
	return c.Fallback, false
}

func matchKeyword(norm, kw string) bool {
	if stem, ok := strings.CutSuffix(kw, "*"); ok {
		return strings.Contains(norm, " "+normalizeWords(stem))
	}
	return strings.Contains(norm, " "+normalizeWords(kw)+" ")
}

// normalize lowercases, folds accents and reduces punctuation to single
// spaces, padding both ends so keywords can be matched on word boundaries.
func normalize(s string) string {
	return " " + normalizeWords(s) + " "
}

func normalizeWords(s string) string {
	s = strings.ToLower(fold(s))
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space && b.Len() > 0 {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}
