package anagram

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResultSetDedup(t *testing.T) {
	r := NewResultSet()

	if !r.Add([]string{"niche", "chat"}) {
		t.Error("first sentence should be new")
	}
	if r.Add([]string{"chat", "niche"}) {
		t.Error("same words in another order should be a duplicate")
	}
	if !r.Add([]string{"chat", "chien"}) {
		t.Error("different words should be new")
	}
	if !r.Add([]string{"a", "a", "b"}) || r.Add([]string{"a", "b", "a"}) {
		t.Error("repeated words are part of the multiset")
	}
	if !r.Add([]string{"a", "b"}) {
		t.Error("fewer repeats is a different sentence")
	}

	want := []Sentence{{"chat", "niche"}, {"chat", "chien"}, {"a", "a", "b"}, {"a", "b"}}
	if diff := cmp.Diff(want, r.Sentences()); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
}

func TestResultSetCollision(t *testing.T) {
	r := NewResultSet()
	r.hash = func([]string) uint64 { return 42 }

	if !r.Add([]string{"chat"}) || !r.Add([]string{"niche"}) {
		t.Fatal("colliding digests must not merge different sentences")
	}
	if r.Add([]string{"niche"}) {
		t.Error("exact duplicate should still be rejected")
	}
	if r.Collisions() != 1 {
		t.Errorf("Collisions() = %d, want 1", r.Collisions())
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestResultSetOnAdd(t *testing.T) {
	r := NewResultSet()
	var seen [][]string
	r.OnAdd(func(words []string) { seen = append(seen, words) })

	sink := r.Sink()
	sink([]string{"niche", "chat"})
	sink([]string{"chat", "niche"})

	// placement order is kept for OnAdd, the set stores the sorted form
	if diff := cmp.Diff([][]string{{"niche", "chat"}}, seen); diff != "" {
		t.Errorf("OnAdd mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Sentence{{"chat", "niche"}}, r.Sentences()); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalKey(t *testing.T) {
	if CanonicalKey([]string{"ab", "c"}) == CanonicalKey([]string{"a", "bc"}) {
		t.Error("word boundaries must be part of the key")
	}
	if CanonicalKey([]string{"chat", "niche"}) != CanonicalKey([]string{"chat", "niche"}) {
		t.Error("key must be deterministic")
	}
}
