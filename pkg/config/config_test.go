package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[search]
spaces_factor = 4
max_nodes = 100000
timeout_ms = 1500
workers = 2

[dict]
resource_dir = "/data/dicts"
language = "en"

[cli]
limit = 20
prompt = "? "
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Search = SearchConfig{SpacesFactor: 4, MaxNodes: 100000, TimeoutMs: 1500, Workers: 2}
	want.Dict = DictConfig{ResourceDir: "/data/dicts", Language: "en"}
	want.CLI = CliConfig{Limit: 20, Prompt: "? "}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Timeout() != 1500*time.Millisecond {
		t.Errorf("Timeout() = %v", cfg.Timeout())
	}
	opts := cfg.SearchOptions()
	if opts.SpacesFactor != 4 || opts.MaxNodes != 100000 || opts.Workers != 2 {
		t.Errorf("SearchOptions() = %+v", opts)
	}
}

func TestLoadConfigRecovery(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			"wrong type keeps other keys",
			"[search]\nspaces_factor = \"six\"\nworkers = 4\n\n[dict]\nlanguage = \"en\"\n",
			func(t *testing.T, cfg *Config) {
				if cfg.Search.SpacesFactor != 6 || cfg.Search.Workers != 4 || cfg.Dict.Language != "en" {
					t.Errorf("partial recovery gave %+v %+v", cfg.Search, cfg.Dict)
				}
			},
		},
		{
			"syntax error uses defaults",
			"[search\nspaces_factor = 3\n",
			func(t *testing.T, cfg *Config) {
				if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
					t.Errorf("expected defaults (-want +got):\n%s", diff)
				}
			},
		},
		{
			"unusable values are sanitized",
			"[search]\nspaces_factor = 0\nworkers = -1\nmax_nodes = -5\n\n[dict]\nlanguage = \"\"\n",
			func(t *testing.T, cfg *Config) {
				def := DefaultConfig()
				if cfg.Search.SpacesFactor != def.Search.SpacesFactor ||
					cfg.Search.Workers != def.Search.Workers ||
					cfg.Search.MaxNodes != 0 ||
					cfg.Dict.Language != def.Dict.Language {
					t.Errorf("sanitize gave %+v %+v", cfg.Search, cfg.Dict)
				}
			},
		},
		{
			"unknown keys are ignored",
			"[search]\nworkers = 3\nfancy = true\n",
			func(t *testing.T, cfg *Config) {
				if cfg.Search.Workers != 3 {
					t.Errorf("Workers = %d, want 3", cfg.Search.Workers)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tc.content))
			if err != nil {
				t.Fatalf("LoadConfig error: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, reloaded); diff != "" {
		t.Errorf("saved config differs (-created +reloaded):\n%s", diff)
	}
}

func TestLoadConfigWithPriority(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	custom := writeConfig(t, "[dict]\nlanguage = \"en\"\n")
	cfg, path, err := LoadConfigWithPriority(custom)
	if err != nil {
		t.Fatal(err)
	}
	if path != custom || cfg.Dict.Language != "en" {
		t.Errorf("custom config not used: path %q, language %q", path, cfg.Dict.Language)
	}

	cfg, path, err = LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if path == "" || filepath.Base(path) != "config.toml" {
		t.Errorf("expected the default path, got %q", path)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestGetActiveConfigPath(t *testing.T) {
	if got := GetActiveConfigPath(""); got != "builtin defaults" {
		t.Errorf("GetActiveConfigPath(\"\") = %q", got)
	}
	if got := GetActiveConfigPath("/etc/anagramme.toml"); got != "/etc/anagramme.toml" {
		t.Errorf("absolute path changed: %q", got)
	}
}
