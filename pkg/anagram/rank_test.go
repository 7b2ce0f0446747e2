package anagram

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRank(t *testing.T) {
	sentences := []Sentence{
		{"z"},
		{"chat", "niche"},
		{"a", "b", "c"},
		{"ab", "cd"},
		{"chat", "niche"},
	}
	want := []string{"a b c", "ab cd", "chat niche", "z"}

	got := Rank(sentences)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(got); i++ {
		if WordCount(got[i-1]) < WordCount(got[i]) {
			t.Errorf("line %d has fewer words than line %d", i-1, i)
		}
	}
}

func TestWordCount(t *testing.T) {
	for line, want := range map[string]int{"": 0, "chat": 1, "chat niche": 2, "a b c d": 4} {
		if got := WordCount(line); got != want {
			t.Errorf("WordCount(%q) = %d, want %d", line, got, want)
		}
	}
}

func TestPresent(t *testing.T) {
	lines := []string{"niche", "chien"}

	if diff := cmp.Diff(lines, Present(lines, "")); diff != "" {
		t.Errorf("no hint should keep lines (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"chat niche", "chat chien"}, Present(lines, " chat ")); diff != "" {
		t.Errorf("hint prefix mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"chat niche", "chat chien"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "chat niche\nchat chien\n"; got != want {
		t.Errorf("WriteLines wrote %q, want %q", got, want)
	}

	buf.Reset()
	if err := WriteLines(&buf, nil); err != nil || buf.Len() != 0 {
		t.Errorf("no lines should write nothing, got %q (%v)", buf.String(), err)
	}
}
