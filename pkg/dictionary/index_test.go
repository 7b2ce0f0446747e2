package dictionary

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndex(t *testing.T) {
	idx := NewIndex()
	for _, w := range []string{"chat", "chien", "niche", "chat"} {
		idx.Insert(w)
	}
	if idx.Insert("") {
		t.Error("empty word should not be inserted")
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}

	testCases := []struct {
		query    string
		contains bool
		prefix   bool
	}{
		{"chat", true, true},
		{"cha", false, true},
		{"ch", false, true},
		{"c", false, true},
		{"chats", false, false},
		{"niche", true, true},
		{"nic", false, true},
		{"x", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			if got := idx.Contains([]byte(tc.query)); got != tc.contains {
				t.Errorf("Contains(%q) = %v, want %v", tc.query, got, tc.contains)
			}
			if got := idx.HasPrefix([]byte(tc.query)); got != tc.prefix {
				t.Errorf("HasPrefix(%q) = %v, want %v", tc.query, got, tc.prefix)
			}
		})
	}
}

func TestIndexEmpty(t *testing.T) {
	idx := NewIndex()
	if idx.HasPrefix(nil) || idx.HasPrefix([]byte("a")) || idx.Contains([]byte("a")) {
		t.Error("empty index should match nothing")
	}
}

func TestIndexWords(t *testing.T) {
	idx := NewIndex()
	for _, w := range []string{"chat", "chien", "niche", "chaton"} {
		idx.Insert(w)
	}

	got := idx.Words("cha")
	slices.Sort(got)
	if diff := cmp.Diff([]string{"chat", "chaton"}, got); diff != "" {
		t.Errorf("Words mismatch (-want +got):\n%s", diff)
	}
	if got := idx.Words("zz"); len(got) != 0 {
		t.Errorf("Words(zz) = %q, want none", got)
	}
}
