package anagram

import (
	"context"
	"strings"
)

// Result is the outcome of one Solve call
type Result struct {
	Hint    string   // lowercased hint, "" when none
	Letters string   // searched letters, sorted
	Ranked  []string // ranked sentences
	Lines   []string // Ranked with the hint in front
	Stats   Stats
}

// Solver runs the whole pipeline: prepare, search, dedup, rank, present.
type Solver struct {
	searcher *Searcher
	opts     Options
}

// NewSolver creates a solver over dict
func NewSolver(dict Dictionary, opts Options) *Solver {
	searcher := NewSearcher(dict, opts)
	return &Solver{searcher: searcher, opts: searcher.opts}
}

// Solve finds the anagram sentences of phrase once the hint letters are removed.
// Lines are ranked and prefixed with the hint. When the search is cut short by
// Options.MaxNodes the partial lines are returned with Stats.Truncated set;
// when ctx ends the partial result is returned together with ctx's error.
func (s *Solver) Solve(ctx context.Context, phrase, hint string) (*Result, error) {
	letters := Prepare(phrase, hint)
	set := NewResultSet()
	if s.opts.OnCandidate != nil {
		set.OnAdd(s.opts.OnCandidate)
	}

	stats, err := s.searcher.Search(ctx, letters, set.Sink())
	stats.Collisions = set.Collisions()

	hint = strings.ToLower(strings.TrimSpace(hint))
	ranked := Rank(set.Sentences())
	return &Result{
		Hint:    hint,
		Letters: letters.String(),
		Ranked:  ranked,
		Lines:   Present(ranked, hint),
		Stats:   stats,
	}, err
}
