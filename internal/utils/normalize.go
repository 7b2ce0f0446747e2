package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord folds a dictionary word or a phrase to the searchable alphabet.
// The input is decomposed (NFD) so accents become separate marks, every
// non-ASCII codepoint is dropped and the remainder is lowercased.
// "Élève" becomes "eleve".
func NormalizeWord(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if r >= utf8.RuneSelf {
			continue
		}
		b.WriteByte(byte(unicode.ToLower(r)))
	}
	return b.String()
}

// NormalizePhrase normalizes s like NormalizeWord and removes all whitespace.
func NormalizePhrase(s string) string {
	return strings.Map(func(r rune) rune {
		if IsSpace(r) {
			return -1
		}
		return r
	}, NormalizeWord(s))
}

// CreateRankList creates a slice of ranks based on position.
// The rank starts at 1 for the first item and increments for subsequent items.
// Useful for ranking items that are already sorted.
func CreateRankList(count int) []uint32 {
	if count <= 0 {
		return []uint32{}
	}
	ranks := make([]uint32, count)
	for i := 0; i < count; i++ {
		ranks[i] = uint32(i + 1)
	}
	return ranks
}
