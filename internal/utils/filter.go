package utils

import (
	"unicode"
)

// IsSeparator checks if a rune separates words in a phrase or a hint
func IsSeparator(r rune) bool {
	return IsSpace(r) || r == '_' || r == '-' || r == '.' || r == '/'
}

// IsSpace reports whitespace, shortcut for the ASCII cases
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return r > 0x7f && unicode.IsSpace(r)
}

// ContainsLetters checks if a string contains at least one letter
func ContainsLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// IsValidPhrase checks if input should be searched at all.
// Rejects strings without letters and strings with control characters.
func IsValidPhrase(s string) bool {
	if len(s) == 0 {
		return false
	}
	if !ContainsLetters(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) && !IsSpace(r) {
			return false
		}
	}
	return true
}

// CountLetters returns the number of non-separator runes in s
func CountLetters(s string) int {
	n := 0
	for _, r := range s {
		if !IsSeparator(r) {
			n++
		}
	}
	return n
}
