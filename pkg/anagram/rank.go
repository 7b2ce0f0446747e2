package anagram

import (
	"bufio"
	"cmp"
	"io"
	"slices"
	"strings"

	"github.com/bastiangx/anagramme/internal/utils"
)

// Render joins the words of a sentence with single spaces
func Render(s Sentence) string {
	return strings.Join(s, " ")
}

// Rank renders sentences and orders them by word count, most words first.
// Exact repeats are dropped. Lines with the same word count are sorted
// alphabetically so output is reproducible.
func Rank(sentences []Sentence) []string {
	filter := utils.NewLineFilter(len(sentences))
	lines := make([]string, 0, len(sentences))
	for _, s := range sentences {
		line := Render(s)
		if filter.ShouldInclude(line) {
			lines = append(lines, line)
		}
	}
	slices.SortStableFunc(lines, func(a, b string) int {
		if c := cmp.Compare(WordCount(b), WordCount(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return lines
}

// WordCount returns the number of words of a rendered line
func WordCount(line string) int {
	if line == "" {
		return 0
	}
	return strings.Count(line, " ") + 1
}

// Present prefixes every line with the hint when there is one.
func Present(lines []string, hint string) []string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = hint + " " + line
	}
	return out
}

// WriteLines writes one line per sentence
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
