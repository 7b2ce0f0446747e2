package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/anagramme/pkg/anagram"
)

func TestReadIndex(t *testing.T) {
	input := "Chat\r\nchien\n\n  niche  \nÉlève\nélève\n---ça"
	idx, stats, err := ReadIndex(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadIndex error: %v", err)
	}

	for _, w := range []string{"chat", "chien", "niche", "eleve", "---ca"} {
		if !idx.Contains([]byte(w)) {
			t.Errorf("expected %q to be indexed", w)
		}
	}
	if idx.Contains([]byte("Chat")) || idx.Contains([]byte("élève")) {
		t.Error("words should be stored normalized")
	}
	if stats.Lines != 7 {
		t.Errorf("Lines = %d, want 7", stats.Lines)
	}
	if stats.Words != 5 {
		t.Errorf("Words = %d, want 5", stats.Words)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}
}

func TestReadIndexInvalidUTF8(t *testing.T) {
	_, _, err := ReadIndex(strings.NewReader("chat\nni\xffche\n"))
	if !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("err = %v, want ErrNotUTF8", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name the line", err)
	}
}

func writeDict(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDict(t, dir, "fr.txt", "chat\nchien\nniche\n")

	idx, stats, err := Load(dir, "FR")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if idx.Len() != 3 || stats.Words != 3 {
		t.Errorf("got %d words (stats %d), want 3", idx.Len(), stats.Words)
	}
	if stats.Path != filepath.Join(dir, "fr.txt") {
		t.Errorf("Path = %q", stats.Path)
	}

	if _, _, err := Load(dir, "de"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("missing language: err = %v, want ErrUnknownLanguage", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeDict(t, dir, "fr.txt", "")

	idx, stats, err := Load(dir, "fr")
	if err != nil {
		t.Fatalf("empty dictionary should load, got %v", err)
	}
	if idx.Len() != 0 || stats.Words != 0 {
		t.Errorf("got %d words, want 0", idx.Len())
	}

	result, err := anagram.NewSolver(idx, anagram.DefaultOptions()).Solve(context.Background(), "chat", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Lines) != 0 {
		t.Errorf("empty dictionary gave lines %q", result.Lines)
	}
}

func TestValidateFileFormat(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		path    func() string
		wantErr bool
	}{
		{"valid", func() string { return writeDict(t, dir, "en.txt", "cat\n") }, false},
		{"empty", func() string { return writeDict(t, dir, "xx.txt", "") }, false},
		{"wrong extension", func() string { return writeDict(t, dir, "en.bin", "cat\n") }, true},
		{"directory", func() string {
			p := filepath.Join(dir, "sub.txt")
			_ = os.Mkdir(p, 0755)
			return p
		}, true},
		{"missing", func() string { return filepath.Join(dir, "missing.txt") }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFileFormat(tc.path())
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateFileFormat error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestAvailableLanguages(t *testing.T) {
	dir := t.TempDir()
	writeDict(t, dir, "fr.txt", "chat\n")
	writeDict(t, dir, "en.txt", "cat\n")
	writeDict(t, dir, "notes.md", "ignored\n")

	langs, err := AvailableLanguages(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "fr" {
		t.Errorf("AvailableLanguages = %q, want [en fr]", langs)
	}
}
