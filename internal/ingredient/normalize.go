// Package ingredient canonicalizes raw ingredient text so that corpus
// documents and user queries live in the same vocabulary.
package ingredient

import (
	"regexp"
	"strings"
)

var (
	nonLetter  = regexp.MustCompile(`[^a-z\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Normalize lowercases the input, strips every character outside the
// lowercase-letter and whitespace set, collapses whitespace runs to a single
// space and trims the ends. It is pure and idempotent; an empty or
// symbol-only input yields the empty string.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = nonLetter.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeAll maps Normalize over a slice, preserving order and length.
func NormalizeAll(raw []string) []string {
	out := make([]string, len(raw))
	for i, r := range raw {
		out[i] = Normalize(r)
	}
	return out
}

// Document joins the normalized forms of the given ingredients into a single
// whitespace-separated string, the per-recipe document fed to the vectorizer.
func Document(ingredients []string) string {
	return strings.Join(NormalizeAll(ingredients), " ")
}
