// Package cli handles interactive phrase input, one dictionary load for many searches
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/anagramme/internal/utils"
	"github.com/bastiangx/anagramme/pkg/anagram"
	"github.com/charmbracelet/log"
)

// InputHandler reads phrases line by line and prints their anagrams.
// A line is "phrase" or "phrase / hint".
type InputHandler struct {
	solver       *anagram.Solver
	in           io.Reader
	out          io.Writer
	prompt       string
	limit        int
	timeout      time.Duration
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters.
// limit caps printed lines (0 for all), timeout bounds each search (0 for none).
func NewInputHandler(solver *anagram.Solver, in io.Reader, out io.Writer, prompt string, limit int, timeout time.Duration) *InputHandler {
	return &InputHandler{
		solver:  solver,
		in:      in,
		out:     out,
		prompt:  prompt,
		limit:   limit,
		timeout: timeout,
	}
}

// Start begins the interface loop.
// It prompts for input, reads a line and passes it to handleInput.
// The loop ends at EOF (returns nil), on a read error or when ctx ends;
// cancelling ctx also interrupts a pending read.
func (h *InputHandler) Start(ctx context.Context) error {
	log.Print("Anagramme CLI")
	log.Print("type a phrase, optionally followed by '/ hint', and press Enter (Ctrl+D to exit):")

	lines := make(chan string)
	readErr := make(chan error, 1)
	go h.readLines(ctx, lines, readErr)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Print(h.prompt)

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = strings.TrimSpace(l)
		}
		if line == "" {
			continue
		}
		if err := h.handleInput(ctx, line); err != nil {
			return err
		}
	}
}

// readLines feeds lines to Start and closes lines at EOF or on a read error.
// A read blocked on the terminal outlives a cancelled Start.
func (h *InputHandler) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	readErr <- scanner.Err()
	close(lines)
}

// handleInput searches one line; only write errors and cancellation are returned
func (h *InputHandler) handleInput(ctx context.Context, line string) error {
	h.requestCount++
	phrase, hint := utils.SplitHint(line)
	if !utils.IsValidPhrase(phrase) {
		log.Errorf("Not a phrase: '%s'", phrase)
		return nil
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	log.Debug("Processing request", "phrase", phrase, "hint", hint, "n", h.requestCount)
	result, err := h.solver.Solve(ctx, phrase, hint)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		log.Warnf("Search for '%s' timed out after %v, results are partial", phrase, h.timeout)
	case err != nil:
		return err
	}

	log.Debugf("Took [ %v ] for '%s' (%s nodes)", result.Stats.Elapsed, phrase,
		utils.FormatWithCommas(result.Stats.Nodes))
	if result.Stats.Truncated {
		log.Warnf("Node budget exhausted for '%s', results are partial", phrase)
	}

	if len(result.Lines) == 0 {
		log.Warnf("No anagram found for '%s'", phrase)
		return nil
	}

	lines := result.Lines
	if h.limit > 0 && len(lines) > h.limit {
		lines = lines[:h.limit]
	}
	log.Printf("Found %d anagrams for '%s':", len(result.Lines), phrase)
	for i, l := range lines {
		if _, err := fmt.Fprintf(h.out, "%3d. %s\n", i+1, l); err != nil {
			return err
		}
	}
	return nil
}
