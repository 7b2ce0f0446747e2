package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Extension is the file extension of dictionary word lists
const Extension = ".txt"

var (
	// ErrUnknownLanguage is returned when no <lang>.txt exists in the resource directory
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrNotUTF8 is returned for word lists that are not valid UTF-8
	ErrNotUTF8 = errors.New("dictionary is not valid UTF-8")
)

// FormatInfo contains metadata about the dictionary file format
type FormatInfo struct {
	Description string
	Extension   string
}

var textFormat = FormatInfo{
	Description: "Plain Text Dictionary",
	Extension:   Extension,
}

// PathFor returns the dictionary path for a language code, "fr" -> <dir>/fr.txt
func PathFor(resourceDir, lang string) string {
	return filepath.Join(resourceDir, strings.ToLower(lang)+Extension)
}

// ValidateFileFormat checks that filename is a readable .txt word list.
// An empty file is valid and loads as an empty index.
func ValidateFileFormat(filename string) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s not found", ErrUnknownLanguage, filename)
		}
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if !fileInfo.Mode().IsRegular() {
		return fmt.Errorf("file %s is not a regular file", filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != textFormat.Extension {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %s)",
			filename, ext, textFormat.Description, textFormat.Extension)
	}

	return validateTextFormat(filename)
}

// validateTextFormat checks the file can be opened and read.
// UTF-8 validity is checked line by line while indexing.
func validateTextFormat(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	buffer := make([]byte, 1024)
	if _, err := file.Read(buffer); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read from text file %s: %w", filename, err)
	}

	log.Debugf("Text file %s validated", filename)
	return nil
}

// AvailableLanguages scans resourceDir for <lang>.txt files and returns the codes sorted
func AvailableLanguages(resourceDir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(resourceDir, "*"+Extension))
	if err != nil {
		return nil, fmt.Errorf("failed to scan for dictionary files: %w", err)
	}

	// Glob results are already sorted
	langs := make([]string, 0, len(files))
	for _, file := range files {
		if info, err := os.Stat(file); err != nil || !info.Mode().IsRegular() {
			continue
		}
		langs = append(langs, strings.TrimSuffix(filepath.Base(file), Extension))
	}
	return langs, nil
}
