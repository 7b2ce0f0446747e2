package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/anagramme/internal/logger"
	"github.com/bastiangx/anagramme/internal/utils"
)

// maxLineSize bounds a single dictionary line
const maxLineSize = 1 << 20

// LoaderStats provides statistics about one dictionary load
type LoaderStats struct {
	Path     string
	Bytes    int64
	Lines    int
	Words    int // distinct words indexed
	Skipped  int // lines that normalized to nothing
	Duration time.Duration
}

// Load reads the <lang>.txt dictionary from resourceDir
func Load(resourceDir, lang string) (*Index, LoaderStats, error) {
	return LoadFile(PathFor(resourceDir, lang))
}

// LoadFile validates and indexes a dictionary file
func LoadFile(path string) (*Index, LoaderStats, error) {
	lg := logger.New("dict")
	start := time.Now()

	if err := ValidateFileFormat(path); err != nil {
		return nil, LoaderStats{Path: path}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, LoaderStats{Path: path}, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	idx, stats, err := ReadIndex(file)
	stats.Path = path
	stats.Duration = time.Since(start)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to load dictionary %s: %w", path, err)
	}

	lg.Debug("Dictionary loaded",
		"path", path,
		"size", utils.FormatBytes(stats.Bytes),
		"words", utils.FormatWithCommas(int64(stats.Words)),
		"skipped", stats.Skipped,
		"took", stats.Duration)
	return idx, stats, nil
}

// ReadIndex builds an index from a newline-delimited word list.
// Each line is normalized with utils.NormalizeWord; lines that normalize
// to the empty string are skipped. Surrounding whitespace (and "\r") is dropped and the last
// line does not need a newline. Invalid UTF-8 aborts the load with ErrNotUTF8.
func ReadIndex(r io.Reader) (*Index, LoaderStats, error) {
	idx := NewIndex()
	var stats LoaderStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		stats.Lines++
		stats.Bytes += int64(len(line)) + 1
		if !utf8.Valid(line) {
			return nil, stats, fmt.Errorf("%w: line %d", ErrNotUTF8, stats.Lines)
		}
		word := utils.NormalizeWord(string(bytes.TrimSpace(line)))
		if word == "" {
			stats.Skipped++
			continue
		}
		if idx.Insert(word) {
			stats.Words++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}
	return idx, stats, nil
}
