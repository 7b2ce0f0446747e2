package dictionary

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Registry keeps one loaded Index per language of a resource directory.
// Dictionaries are read from disk on first use and shared afterwards.
type Registry struct {
	resourceDir string
	indexes     map[string]*Index
	stats       map[string]LoaderStats
	mu          sync.RWMutex
}

// NewRegistry creates a registry over resourceDir, nothing is loaded yet
func NewRegistry(resourceDir string) *Registry {
	return &Registry{
		resourceDir: resourceDir,
		indexes:     make(map[string]*Index),
		stats:       make(map[string]LoaderStats),
	}
}

// ResourceDir returns the directory the registry loads from
func (r *Registry) ResourceDir() string {
	return r.resourceDir
}

// Get returns the index for lang, loading it if needed
func (r *Registry) Get(lang string) (*Index, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil, fmt.Errorf("%w: empty language code", ErrUnknownLanguage)
	}

	r.mu.RLock()
	idx, ok := r.indexes[lang]
	r.mu.RUnlock()
	if ok {
		return idx, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another caller may have loaded it while we waited for the write lock
	if idx, ok := r.indexes[lang]; ok {
		return idx, nil
	}

	idx, stats, err := Load(r.resourceDir, lang)
	if err != nil {
		return nil, err
	}
	r.indexes[lang] = idx
	r.stats[lang] = stats
	log.Debugf("Registry loaded %q: %d words", lang, idx.Len())
	return idx, nil
}

// Loaded returns the loaded language codes, sorted
func (r *Registry) Loaded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make([]string, 0, len(r.indexes))
	for lang := range r.indexes {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Stats returns the load statistics of a loaded language
func (r *Registry) Stats(lang string) (LoaderStats, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats, ok := r.stats[strings.ToLower(lang)]
	return stats, ok
}

// Available lists the languages present on disk
func (r *Registry) Available() ([]string, error) {
	return AvailableLanguages(r.resourceDir)
}
