package query

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ParseLocale parses a BCP 47 tag such as "en" or "pt-BR".
func ParseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		return language.English, nil
	}
	return language.Parse(locale)
}

// Collation returns a locale-aware, case-insensitive string comparison.
// A Collator is not safe for concurrent use, so callers build one per query.
func Collation(tag language.Tag) func(a, b string) int {
	c := collate.New(tag, collate.IgnoreCase)
	return c.CompareString
}
