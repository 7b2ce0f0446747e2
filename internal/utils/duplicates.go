package utils

// LineFilter drops exact-string repeats from a stream of rendered lines
type LineFilter struct {
	seen map[string]struct{}
}

// NewLineFilter creates an empty filter sized for about n lines
func NewLineFilter(n int) *LineFilter {
	return &LineFilter{
		seen: make(map[string]struct{}, n),
	}
}

// ShouldInclude checks if a line should be kept (first time seen).
// Returns true if the line is new, false if it's a duplicate
func (f *LineFilter) ShouldInclude(line string) bool {
	if _, ok := f.seen[line]; ok {
		return false
	}
	f.seen[line] = struct{}{}
	return true
}

// Len returns the number of distinct lines seen so far
func (f *LineFilter) Len() int {
	return len(f.seen)
}
