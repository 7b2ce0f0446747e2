// Copyright 2025 The Anagramme Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the anagramme command: anagram sentence search over a language dictionary.

Given a phrase, anagramme finds every sequence of dictionary words whose
letters are a permutation of the phrase letters, optionally after removing
the letters of a hint. Sentences that only differ by word order are shown
once, and results are ranked by word count, most words first.

# Usage

Search once and print one sentence per line:

	anagramme -r /path/to/resources -l fr "nichechat"

Give part of the answer as a hint, its letters are removed first and it is
printed in front of every line:

	anagramme -r resources -hint chat "chat niche"

The resource directory holds one UTF-8 word list per language, one word per
line, named after the language code: fr.txt, en.txt. Words are normalized
on load (accents stripped, lowercased).

Run in CLI mode to search many phrases with a single dictionary load:

	anagramme -r resources -c

Run as a msgpack IPC server on stdin/stdout:

	anagramme -r resources -ipc

# Configuration

Defaults are read from a TOML file, created at the user config dir if it
doesn't exist. Flags override the file.

	[search]
	spaces_factor = 6
	max_nodes = 0
	timeout_ms = 0
	workers = 1

	[dict]
	resource_dir = ""
	language = "fr"

	[cli]
	limit = 0
	prompt = "> "

	[server]
	max_phrase = 64
	max_results = 1000

spaces_factor bounds the number of words of a sentence to N/spaces_factor + 2
for N letters. Long phrases explode combinatorially: max_nodes and
timeout_ms stop the search early and keep the sentences found so far.

# Command Line Flags

	-r, -resource-dir string
	    Directory holding the <lang>.txt dictionaries
	-l, -language string
	    Language code of the dictionary (default "fr")
	-hint string
	    Word or short sentence known to be part of the anagram
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode
	-ipc
	    Run the msgpack IPC server
	-config string
	    Path to a TOML config file
	-limit int
	    Maximum number of lines to print (0 for all)
	-max-nodes int
	    Search node budget (0 for no budget)
	-timeout duration
	    Search deadline (0 for none)
	-workers int
	    Parallel first-letter searches
	-log-format string
	    text, json or logfmt

Exit status is 0 on success, even without any anagram, and 1 when the
dictionary cannot be loaded or the arguments are wrong.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bastiangx/anagramme/internal/cli"
	"github.com/bastiangx/anagramme/internal/logger"
	"github.com/bastiangx/anagramme/internal/utils"
	"github.com/bastiangx/anagramme/pkg/anagram"
	"github.com/bastiangx/anagramme/pkg/config"
	"github.com/bastiangx/anagramme/pkg/dictionary"
	"github.com/bastiangx/anagramme/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "anagramme"
)

// options collects the command line
type options struct {
	resourceDir string
	language    string
	hint        string
	debug       bool
	cliMode     bool
	ipcMode     bool
	configPath  string
	limit       int
	maxNodes    int64
	timeout     time.Duration
	workers     int
	logFormat   string
	version     bool
	set         map[string]bool
}

func parseFlags() *options {
	defaults := config.DefaultConfig()
	o := &options{set: make(map[string]bool)}

	flag.StringVar(&o.resourceDir, "resource-dir", "", "Directory holding the <lang>.txt dictionaries")
	flag.StringVar(&o.resourceDir, "r", "", "Shorthand for -resource-dir")
	flag.StringVar(&o.language, "language", defaults.Dict.Language, "Language code, selects <lang>.txt (e.g. fr for french)")
	flag.StringVar(&o.language, "l", defaults.Dict.Language, "Shorthand for -language")
	flag.StringVar(&o.hint, "hint", "", "Hint word or short sentence that is part of an anagram of the input")
	flag.BoolVar(&o.debug, "d", false, "Toggle debug mode")
	flag.BoolVar(&o.cliMode, "c", false, "Run CLI -- search phrases read from stdin")
	flag.BoolVar(&o.ipcMode, "ipc", false, "Run the msgpack IPC server on stdin/stdout")
	flag.StringVar(&o.configPath, "config", "", "Path to a TOML config file")
	flag.IntVar(&o.limit, "limit", defaults.CLI.Limit, "Maximum number of lines to print (0 for all)")
	flag.Int64Var(&o.maxNodes, "max-nodes", defaults.Search.MaxNodes, "Search node budget (0 for no budget)")
	flag.DurationVar(&o.timeout, "timeout", 0, "Search deadline, e.g. 30s (0 for none)")
	flag.IntVar(&o.workers, "workers", defaults.Search.Workers, "Parallel first-letter searches")
	flag.StringVar(&o.logFormat, "log-format", "text", "Log format: text, json or logfmt")
	flag.BoolVar(&o.version, "version", false, "Show current version")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -r DIR [flags] INPUT\n\n", AppName)
		flag.PrintDefaults()
	}

	flag.Parse()
	flag.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o
}

// apply lets explicit flags override the config file
func (o *options) apply(cfg *config.Config) {
	if o.set["resource-dir"] || o.set["r"] {
		cfg.Dict.ResourceDir = o.resourceDir
	}
	if o.set["language"] || o.set["l"] {
		cfg.Dict.Language = o.language
	}
	if o.set["limit"] {
		cfg.CLI.Limit = o.limit
	}
	if o.set["max-nodes"] {
		cfg.Search.MaxNodes = o.maxNodes
	}
	if o.set["timeout"] {
		cfg.Search.TimeoutMs = int(o.timeout / time.Millisecond)
	}
	if o.set["workers"] {
		cfg.Search.Workers = o.workers
	}
}

// main only manages the flow, the work lives in the packages.
func main() {
	o := parseFlags()

	if o.version {
		showVersion()
		os.Exit(0)
	}

	setupLogging(o)

	// The first signal cancels the running search or read, a second one kills
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	context.AfterFunc(ctx, stop)

	cfg, cfgPath, err := config.LoadConfigWithPriority(o.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	o.apply(cfg)
	log.Debugf("Using config: %s", config.GetActiveConfigPath(cfgPath))

	if cfg.Dict.ResourceDir == "" {
		flag.Usage()
		log.Fatal("A resource directory is required (-r DIR or dict.resource_dir)")
	}
	resourceDir := cfg.Dict.ResourceDir
	if pathResolver, err := utils.NewPathResolver(); err == nil {
		resourceDir = pathResolver.GetResourceDir(resourceDir)
	} else {
		log.Warnf("Failed to initialize path resolver: %v", err)
	}
	log.Debugf("Using resource dir at: %s", resourceDir)

	registry := dictionary.NewRegistry(resourceDir)

	if o.ipcMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(registry, cfg, os.Stdin, os.Stdout)
		if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	idx, err := registry.Get(cfg.Dict.Language)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	if stats, ok := registry.Stats(cfg.Dict.Language); ok {
		log.Debug("Dictionary ready",
			"lang", cfg.Dict.Language,
			"words", utils.FormatWithCommas(int64(stats.Words)),
			"took", stats.Duration)
	}

	opts := cfg.SearchOptions()
	opts.OnCandidate = func(words []string) {
		log.Debug("-->", "sentence", strings.Join(words, " "))
	}
	solver := anagram.NewSolver(idx, opts)

	if o.cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(solver, os.Stdin, os.Stdout, cfg.CLI.Prompt, cfg.CLI.Limit, cfg.Timeout())
		if err := inputHandler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		log.Fatal("Missing INPUT phrase")
	}
	if err := runOnce(ctx, solver, cfg, strings.Join(flag.Args(), " "), o.hint); err != nil {
		log.Fatal(err)
	}
}

// runOnce searches a single phrase and prints the ranked lines on stdout
func runOnce(ctx context.Context, solver *anagram.Solver, cfg *config.Config, phrase, hint string) error {
	if timeout := cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := solver.Solve(ctx, phrase, hint)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		log.Warnf("Search timed out after %v, results are partial", cfg.Timeout())
	case err != nil:
		return fmt.Errorf("search interrupted: %w", err)
	}

	log.Debug("Search done",
		"letters", result.Letters,
		"maxWords", result.Stats.MaxWords,
		"nodes", utils.FormatWithCommas(result.Stats.Nodes),
		"accepted", result.Stats.Accepted,
		"unique", len(result.Lines),
		"collisions", result.Stats.Collisions,
		"took", result.Stats.Elapsed)
	if result.Stats.Truncated {
		log.Warnf("Node budget of %s exhausted, results are partial", utils.FormatWithCommas(cfg.Search.MaxNodes))
	}

	lines := result.Lines
	if cfg.CLI.Limit > 0 && len(lines) > cfg.CLI.Limit {
		lines = lines[:cfg.CLI.Limit]
	}
	return anagram.WriteLines(os.Stdout, lines)
}

// setupLogging configures the global charm logger, always on stderr
func setupLogging(o *options) {
	level := log.WarnLevel
	if o.debug {
		level = log.DebugLevel
	}
	formatter := log.TextFormatter
	switch o.logFormat {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}
	// Level first, so sub-loggers created later inherit it
	log.SetLevel(level)
	log.SetDefault(logger.NewWithConfig("", level, false, o.debug, formatter))
}

// showVersion prints a small styled banner
func showVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ Anagramme ] Finds the sentences hidden in your letters")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
}
