// Package dictionary loads language word lists into a patricia trie index.
//
// An Index is built once from a newline-delimited word list and is only
// read afterwards, so a single Index can be shared by any number of
// goroutines. Words are normalized before insertion (see utils.NormalizeWord),
// queries are expected to be normalized already.
package dictionary

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// present is the item stored for every word; the trie only needs non-nil items.
type present struct{}

// Index is a prefix-queryable word set backed by a patricia trie.
type Index struct {
	trie  *patricia.Trie
	words int
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{trie: patricia.NewTrie()}
}

// Insert adds a normalized word. Returns false for empty or already indexed words.
func (idx *Index) Insert(word string) bool {
	if word == "" {
		return false
	}
	if !idx.trie.Insert(patricia.Prefix(word), present{}) {
		return false
	}
	idx.words++
	return true
}

// Contains reports whether word is exactly an indexed word.
func (idx *Index) Contains(word []byte) bool {
	if len(word) == 0 {
		return false
	}
	return idx.trie.Match(patricia.Prefix(word))
}

// HasPrefix reports whether prefix equals or starts at least one indexed word.
func (idx *Index) HasPrefix(prefix []byte) bool {
	if idx.words == 0 {
		return false
	}
	return idx.trie.MatchSubtree(patricia.Prefix(prefix))
}

// Len returns the number of distinct words
func (idx *Index) Len() int {
	return idx.words
}

// Words returns every indexed word starting with prefix, in trie order.
func (idx *Index) Words(prefix string) []string {
	var words []string
	_ = idx.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	return words
}
