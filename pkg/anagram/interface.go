/*
Package anagram is the core, finding the word sequences whose letters are a permutation of a phrase.

The search permutes the remaining letters, places word boundaries and prunes
every branch whose current word is not the prefix of a dictionary word, all
in one depth-first walk. Accepted sentences go to a Sink; a ResultSet keeps
one sentence per set of words and Rank orders them by word count.

	letters := anagram.Prepare("chat niche", "")
	set := anagram.NewResultSet()
	stats, err := anagram.NewSearcher(idx, anagram.DefaultOptions()).Search(ctx, letters, set.Sink())
	lines := anagram.Rank(set.Sentences())

Solver wraps those steps for the command, the CLI and the IPC server.
*/
package anagram

// Dictionary is the word index the search consults.
// Queries are normalized lowercase bytes; implementations must be safe for
// concurrent reads when Options.Workers > 1.
type Dictionary interface {
	// Contains reports an exact word match
	Contains(word []byte) bool

	// HasPrefix reports whether some word equals or starts with prefix
	HasPrefix(prefix []byte) bool
}

// Sink receives every accepted sentence, words in placement order.
// The slice is owned by the sink. Calls are never concurrent.
type Sink func(words []string)
