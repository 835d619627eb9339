// Package textnorm folds country names into the canonical comparison key
// used for lookups, suggestions and duplicate detection.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases text and strips diacritics, so "México" and
// "mexico" compare equal. It is total and idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// A transformer chain carries state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		// Only reachable on invalid UTF-8; fall back to plain case folding.
		return strings.ToLower(text)
	}
	return folded
}

// Equal reports whether a and b share the same normalized form.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Contains reports whether the normalized form of s contains the normalized
// form of substr.
func Contains(s, substr string) bool {
	return strings.Contains(Normalize(s), Normalize(substr))
}
