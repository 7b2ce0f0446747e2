package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/bastiangx/anagramme/internal/logger"
	"github.com/bastiangx/anagramme/internal/utils"
	"github.com/bastiangx/anagramme/pkg/anagram"
	"github.com/bastiangx/anagramme/pkg/config"
	"github.com/bastiangx/anagramme/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for anagram searches
type Server struct {
	registry *dictionary.Registry
	config   *config.Config
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
	log      *log.Logger
	requests int
}

// NewServer creates a server reading requests from r and writing responses to w
func NewServer(registry *dictionary.Registry, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		registry: registry,
		config:   cfg,
		decoder:  msgpack.NewDecoder(r),
		encoder:  msgpack.NewEncoder(w),
		log:      logger.New("ipc"),
	}
}

// Start signals readiness and serves requests until EOF or ctx ends.
// Cancelling ctx returns at once, even while waiting for the next frame.
func (s *Server) Start(ctx context.Context) error {
	s.log.Debug("Starting server", "resources", s.registry.ResourceDir())
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	frames := make(chan frame)
	go s.readFrames(ctx, frames)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var f frame
		select {
		case <-ctx.Done():
			s.log.Debug("Server cancelled", "requests", s.requests)
			return ctx.Err()
		case f = <-frames:
		}
		if f.err != nil {
			if errors.Is(f.err, io.EOF) {
				s.log.Debug("Client closed input", "requests", s.requests)
				return nil
			}
			// The stream cannot be resynchronized after a broken frame
			s.log.Errorf("Decoding request: %v", f.err)
			_ = s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("decode request: %w", f.err)
		}
		s.requests++
		if err := s.handleRequest(ctx, f.req); err != nil {
			return err
		}
	}
}

// frame is one decoded request, or the error that ended the stream
type frame struct {
	req Request
	err error
}

// readFrames decodes requests until the first error. A read blocked on the
// input outlives a cancelled Start; it ends with the process or the stream.
func (s *Server) readFrames(ctx context.Context, frames chan<- frame) {
	for {
		var f frame
		f.err = s.decoder.Decode(&f.req)
		select {
		case frames <- f:
		case <-ctx.Done():
			return
		}
		if f.err != nil {
			return
		}
	}
}

// handleRequest dispatches on the action, only write failures are returned
func (s *Server) handleRequest(ctx context.Context, req Request) error {
	switch req.Action {
	case "", ActionAnagram:
		return s.handleAnagram(ctx, req)
	case ActionLanguages:
		return s.handleLanguages(req)
	case ActionLookup:
		return s.handleLookup(req)
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleAnagram(ctx context.Context, req Request) error {
	if !utils.IsValidPhrase(req.Phrase) {
		s.log.Debug("Rejected phrase", "id", req.ID, "phrase", req.Phrase)
		return s.sendError(req.ID, "missing or invalid 'p' phrase", 400)
	}
	if n := utils.CountLetters(req.Phrase); n > s.config.Server.MaxPhrase {
		return s.sendError(req.ID, fmt.Sprintf("phrase exceeds %d letters", s.config.Server.MaxPhrase), 400)
	}

	idx, code, err := s.index(req.Lang)
	if err != nil {
		return s.sendError(req.ID, err.Error(), code)
	}

	if timeout := s.config.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	solver := anagram.NewSolver(idx, s.config.SearchOptions())
	result, err := solver.Solve(ctx, req.Phrase, req.Hint)
	elapsed := time.Since(start)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		s.log.Errorf("Search %s failed: %v", req.ID, err)
		return s.sendError(req.ID, "search failed: "+err.Error(), 500)
	}
	truncated := result.Stats.Truncated || err != nil

	lines := result.Lines
	limit := s.limit(req.Limit)
	if limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	ranks := utils.CreateRankList(len(lines))
	sentences := make([]SentenceResult, len(lines))
	for i, line := range lines {
		sentences[i] = SentenceResult{
			Text:  line,
			Words: anagram.WordCount(result.Ranked[i]),
			Rank:  ranks[i],
		}
	}

	s.log.Debug("Anagram request",
		"id", req.ID,
		"letters", result.Letters,
		"sentences", len(result.Lines),
		"nodes", utils.FormatWithCommas(result.Stats.Nodes),
		"collisions", result.Stats.Collisions,
		"truncated", truncated,
		"took", elapsed)

	return s.send(AnagramResponse{
		ID:        req.ID,
		Sentences: sentences,
		Count:     len(sentences),
		Truncated: truncated,
		Nodes:     result.Stats.Nodes,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleLanguages(req Request) error {
	available, err := s.registry.Available()
	if err != nil {
		return s.sendError(req.ID, err.Error(), 500)
	}
	return s.send(LanguagesResponse{
		ID:        req.ID,
		Status:    "ok",
		Languages: available,
		Loaded:    s.registry.Loaded(),
	})
}

func (s *Server) handleLookup(req Request) error {
	prefix := utils.NormalizePhrase(req.Phrase)
	if prefix == "" {
		return s.sendError(req.ID, "missing 'p' prefix", 400)
	}
	idx, code, err := s.index(req.Lang)
	if err != nil {
		return s.sendError(req.ID, err.Error(), code)
	}
	words := idx.Words(prefix)
	slices.Sort(words)
	if limit := s.limit(req.Limit); limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return s.send(LookupResponse{ID: req.ID, Words: words, Count: len(words)})
}

// index resolves the request language, falling back to the configured one
func (s *Server) index(lang string) (*dictionary.Index, int, error) {
	if strings.TrimSpace(lang) == "" {
		lang = s.config.Dict.Language
	}
	idx, err := s.registry.Get(lang)
	if err != nil {
		if errors.Is(err, dictionary.ErrUnknownLanguage) {
			return nil, 404, err
		}
		s.log.Errorf("Loading dictionary %q: %v", lang, err)
		return nil, 500, err
	}
	return idx, 0, nil
}

// limit clamps a requested result count to the server maximum, 0 is unlimited
func (s *Server) limit(requested int) int {
	maxResults := s.config.Server.MaxResults
	if requested <= 0 || (maxResults > 0 && requested > maxResults) {
		return maxResults
	}
	return requested
}

// send encodes a response, each response is one msgpack value
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
