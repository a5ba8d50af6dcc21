package inference

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold strips diacritics ("Señor Médico" -> "Senor Medico").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify turns free text into a lowercase, dash separated URL segment.
func Slugify(s string) string {
	return strings.ReplaceAll(normalizeWords(s), " ", "-")
}
