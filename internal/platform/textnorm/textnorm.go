// Package textnorm folds text for accent- and case-insensitive matching and
// orders labels the way a pt-BR reader expects.
package textnorm

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combining diacritical marks block, U+0300..U+036F
var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
})

// Normalize lower-cases, decomposes, strips combining marks and trims, so
// "  São Paulo " and "sao paulo" compare equal. Trimming runs last so a mark
// next to whitespace cannot leave untrimmed space behind.
func Normalize(s string) string {
	s = strings.ToLower(s)
	out, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(combiningMarks)), s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}

// Equal reports whether a and b match after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Contains reports whether the normalized haystack contains the normalized needle.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// SortFunc orders items by key using pt-BR collation. Equal keys keep their order.
func SortFunc[T any](items []T, key func(T) string) {
	c := collate.New(language.BrazilianPortuguese)
	slices.SortStableFunc(items, func(a, b T) int {
		return c.CompareString(key(a), key(b))
	})
}
