package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int64) string {
	return humanize.Comma(n)
}

// FormatBytes formats a byte count for logs, "1.2 MB"
func FormatBytes(n int64) string {
	if n < 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(n))
}

// SplitHint splits an interactive input line of the form "phrase / hint".
// The hint part is optional.
func SplitHint(line string) (phrase, hint string) {
	phrase, hint, _ = strings.Cut(line, "/")
	return strings.TrimSpace(phrase), strings.TrimSpace(hint)
}
