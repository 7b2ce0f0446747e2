package anagram

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultSpacesFactor gives one extra word per six letters: max words = N/6 + 2
const DefaultSpacesFactor = 6

// pollEvery is how many nodes a walker visits between context checks
const pollEvery = 1 << 12

// Options tunes a search
type Options struct {
	// SpacesFactor sets the boundary cap, floor(N/SpacesFactor) + 1.
	// Values < 1 use DefaultSpacesFactor.
	SpacesFactor int

	// MaxNodes caps the visited search nodes, 0 for no cap.
	MaxNodes int64

	// Workers > 1 explores the first letter branches concurrently.
	Workers int

	// OnCandidate, if set, sees every sentence a ResultSet accepts as new.
	// Only used by Solver.
	OnCandidate func(words []string)
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		SpacesFactor: DefaultSpacesFactor,
		Workers:      1,
	}
}

// Stats describes a finished search
type Stats struct {
	Letters    int   // size of the searched multiset
	MaxWords   int   // boundary cap + 1
	Nodes      int64 // letters placed, pruned ones included
	Accepted   int   // sentences handed to the sink, before dedup
	Collisions int   // digest collisions in the ResultSet, set by Solver
	Truncated  bool  // MaxNodes ran out before the walk finished
	Elapsed    time.Duration
}

// Searcher runs anagram searches over one dictionary
type Searcher struct {
	dict Dictionary
	opts Options
}

// NewSearcher creates a searcher, the dictionary must not change while searches run
func NewSearcher(dict Dictionary, opts Options) *Searcher {
	if opts.SpacesFactor < 1 {
		opts.SpacesFactor = DefaultSpacesFactor
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Searcher{dict: dict, opts: opts}
}

// MaxBoundaries returns the word boundary cap for n letters
func (s *Searcher) MaxBoundaries(n int) int {
	return n/s.opts.SpacesFactor + 1
}

// Search walks every arrangement of letters and sends each sentence made only of
// dictionary words to sink. Sentences that only differ by word order are all
// sent, deduplication is the sink's job (see ResultSet).
//
// An empty multiset yields no sentence. When MaxNodes runs out the walk stops,
// Stats.Truncated is set and the error is nil. A cancelled ctx stops the walk
// and its error is returned.
func (s *Searcher) Search(ctx context.Context, letters Letters, sink Sink) (Stats, error) {
	start := time.Now()
	stats := Stats{
		Letters:  letters.Len(),
		MaxWords: s.MaxBoundaries(letters.Len()) + 1,
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	if letters.Len() == 0 {
		return stats, nil
	}

	shared := &budget{max: s.opts.MaxNodes}
	var accepted atomic.Int64
	var mu sync.Mutex
	emit := func(words []string) {
		accepted.Add(1)
		if s.opts.Workers > 1 {
			mu.Lock()
			defer mu.Unlock()
		}
		sink(words)
	}

	var err error
	if s.opts.Workers > 1 {
		err = s.searchParallel(ctx, letters, shared, emit)
	} else {
		w := s.newWalker(ctx, letters, shared, emit)
		w.walk()
		err = w.err
	}

	stats.Nodes = shared.nodes.Load()
	stats.Accepted = int(accepted.Load())
	stats.Truncated = shared.exhausted.Load()
	stats.Elapsed = time.Since(start)
	return stats, err
}

// searchParallel gives each distinct first letter its own walker
func (s *Searcher) searchParallel(ctx context.Context, letters Letters, shared *budget, emit Sink) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for _, c := range letters.Distinct() {
		g.Go(func() error {
			w := s.newWalker(gctx, letters, shared, emit)
			w.branch(c)
			return w.err
		})
	}
	return g.Wait()
}

// budget is the node counter shared by all walkers of one search
type budget struct {
	max       int64
	nodes     atomic.Int64
	exhausted atomic.Bool
}

// take counts one node, false once the budget is spent
func (b *budget) take() bool {
	n := b.nodes.Add(1)
	if b.max > 0 && n > b.max {
		b.exhausted.Store(true)
		return false
	}
	return true
}

// walker holds the search state of one goroutine. It is mutated in place and
// every change is undone on the way back up.
type walker struct {
	ctx      context.Context
	dict     Dictionary
	budget   *budget
	sink     Sink
	counts   [256]int
	distinct []byte
	// letters not placed yet
	left     int
	prefix   []byte
	// offsets in prefix where a word ends, increasing
	bounds   []int
	maxBound int
	visited  int
	stopped  bool
	err      error
}

func (s *Searcher) newWalker(ctx context.Context, letters Letters, b *budget, sink Sink) *walker {
	maxBound := s.MaxBoundaries(letters.Len())
	return &walker{
		ctx:      ctx,
		dict:     s.dict,
		budget:   b,
		sink:     sink,
		counts:   letters.counts,
		distinct: letters.Distinct(),
		left:     letters.Len(),
		prefix:   make([]byte, 0, letters.Len()),
		bounds:   make([]int, 0, maxBound),
		maxBound: maxBound,
	}
}

// walk places one more letter, or checks the sentence when none is left
func (w *walker) walk() {
	if w.left == 0 {
		w.emit()
		return
	}
	for _, c := range w.distinct {
		if w.stopped {
			return
		}
		if w.counts[c] == 0 {
			continue
		}
		w.branch(c)
	}
}

// branch places c after the prefix and explores both continuations:
// the current word grows, or it ends here and a new word starts.
func (w *walker) branch(c byte) {
	if !w.tick() {
		return
	}

	w.prefix = append(w.prefix, c)
	word := w.prefix[w.lastBound():]
	if !w.dict.HasPrefix(word) {
		w.prefix = w.prefix[:len(w.prefix)-1]
		return
	}

	w.counts[c]--
	w.left--

	w.walk()

	// Closing the word with nothing left would only leave an empty last word
	if !w.stopped && w.left > 0 && len(w.bounds) < w.maxBound && w.dict.Contains(word) {
		w.bounds = append(w.bounds, len(w.prefix))
		w.walk()
		w.bounds = w.bounds[:len(w.bounds)-1]
	}

	w.left++
	w.counts[c]++
	w.prefix = w.prefix[:len(w.prefix)-1]
}

// tick counts a node against the budget and polls the context now and then
func (w *walker) tick() bool {
	if w.stopped {
		return false
	}
	if !w.budget.take() {
		w.stopped = true
		return false
	}
	w.visited++
	if w.visited%pollEvery == 0 {
		if err := w.ctx.Err(); err != nil {
			w.stopped = true
			w.err = err
			return false
		}
	}
	return true
}

func (w *walker) lastBound() int {
	if len(w.bounds) == 0 {
		return 0
	}
	return w.bounds[len(w.bounds)-1]
}

// emit cuts the complete prefix at the boundaries and hands the words to the
// sink if the last one is a word. Earlier words were checked when closed.
func (w *walker) emit() {
	last := w.lastBound()
	if last == len(w.prefix) || !w.dict.Contains(w.prefix[last:]) {
		return
	}
	words := make([]string, 0, len(w.bounds)+1)
	from := 0
	for _, to := range w.bounds {
		words = append(words, string(w.prefix[from:to]))
		from = to
	}
	words = append(words, string(w.prefix[from:]))
	w.sink(words)
}
