package anagram

import (
	"slices"

	"github.com/zeebo/xxh3"
)

// Sentence is an accepted word list in canonical (alphabetical) order
type Sentence []string

// CanonicalKey digests an already sorted word list.
// Words are NUL separated so ["ab","c"] and ["a","bc"] differ.
func CanonicalKey(sorted []string) uint64 {
	n := len(sorted)
	for _, w := range sorted {
		n += len(w)
	}
	buf := make([]byte, 0, n)
	for _, w := range sorted {
		buf = append(buf, w...)
		buf = append(buf, 0)
	}
	return xxh3.Hash(buf)
}

// ResultSet keeps one sentence per distinct set of words, the first one seen.
// Digests only pick the bucket, word lists are always compared in full so a
// collision never merges two different sentences.
// A ResultSet is not safe for concurrent use.
type ResultSet struct {
	buckets    map[uint64][]int // digest -> indexes in sentences
	sentences  []Sentence
	collisions int
	hash       func(sorted []string) uint64
	onAdd      func(words []string)
}

// NewResultSet creates an empty result set
func NewResultSet() *ResultSet {
	return &ResultSet{
		buckets: make(map[uint64][]int),
		hash:    CanonicalKey,
	}
}

// Add records words unless an equal word multiset is already present.
// Returns true when the sentence was new.
func (r *ResultSet) Add(words []string) bool {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	key := r.hash(sorted)

	bucket := r.buckets[key]
	for _, i := range bucket {
		if slices.Equal([]string(r.sentences[i]), sorted) {
			return false
		}
	}
	if len(bucket) > 0 {
		r.collisions++
	}
	r.buckets[key] = append(bucket, len(r.sentences))
	r.sentences = append(r.sentences, sorted)
	if r.onAdd != nil {
		r.onAdd(words)
	}
	return true
}

// Sink returns Add as a Sink for Searcher.Search
func (r *ResultSet) Sink() Sink {
	return func(words []string) { r.Add(words) }
}

// OnAdd registers fn to see each new sentence in placement order
func (r *ResultSet) OnAdd(fn func(words []string)) {
	r.onAdd = fn
}

// Len returns the number of distinct sentences
func (r *ResultSet) Len() int {
	return len(r.sentences)
}

// Sentences returns the kept sentences in insertion order.
// The slice is shared with the set.
func (r *ResultSet) Sentences() []Sentence {
	return r.sentences
}

// Collisions returns how many digests matched a different word list
func (r *ResultSet) Collisions() int {
	return r.collisions
}
