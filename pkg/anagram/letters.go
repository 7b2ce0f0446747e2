package anagram

import (
	"strings"

	"github.com/bastiangx/anagramme/internal/utils"
)

// Letters is a multiset of bytes stored as a frequency table.
type Letters struct {
	counts [256]int
	size   int
}

// NewLetters builds the multiset of the bytes of s, as is
func NewLetters(s string) Letters {
	var l Letters
	for i := 0; i < len(s); i++ {
		l.counts[s[i]]++
	}
	l.size = len(s)
	return l
}

// Prepare reduces a raw phrase and an optional hint to the letters to search.
// Both are normalized like dictionary words and stripped of whitespace.
// Each hint letter then removes one matching phrase letter if any is left;
// hint letters without a match are ignored.
func Prepare(phrase, hint string) Letters {
	letters := NewLetters(utils.NormalizePhrase(phrase))
	h := utils.NormalizePhrase(hint)
	for i := 0; i < len(h); i++ {
		letters.remove(h[i])
	}
	return letters
}

func (l *Letters) remove(b byte) bool {
	if l.counts[b] == 0 {
		return false
	}
	l.counts[b]--
	l.size--
	return true
}

// Len returns the number of letters, repeats included
func (l Letters) Len() int {
	return l.size
}

// Count returns how many times b occurs
func (l Letters) Count(b byte) int {
	return l.counts[b]
}

// Distinct returns each letter once, in byte order
func (l Letters) Distinct() []byte {
	var out []byte
	for b, n := range l.counts {
		if n > 0 {
			out = append(out, byte(b))
		}
	}
	return out
}

// Equal reports whether both multisets hold the same letters
func (l Letters) Equal(other Letters) bool {
	return l.size == other.size && l.counts == other.counts
}

// String returns the letters sorted, "aachht"
func (l Letters) String() string {
	var b strings.Builder
	b.Grow(l.size)
	for c, n := range l.counts {
		for ; n > 0; n-- {
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}
