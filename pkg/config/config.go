/*
Package config manages TOML config for anagramme.
*/
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bastiangx/anagramme/internal/utils"
	"github.com/bastiangx/anagramme/pkg/anagram"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Search SearchConfig `toml:"search"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
}

// SearchConfig tunes the anagram search.
type SearchConfig struct {
	SpacesFactor int   `toml:"spaces_factor"`
	MaxNodes     int64 `toml:"max_nodes"`
	TimeoutMs    int   `toml:"timeout_ms"`
	Workers      int   `toml:"workers"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	ResourceDir string `toml:"resource_dir"`
	Language    string `toml:"language"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Limit  int    `toml:"limit"`
	Prompt string `toml:"prompt"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxPhrase  int `toml:"max_phrase"`
	MaxResults int `toml:"max_results"`
}

// SearchOptions converts the search section to anagram options
func (c *Config) SearchOptions() anagram.Options {
	return anagram.Options{
		SpacesFactor: c.Search.SpacesFactor,
		MaxNodes:     c.Search.MaxNodes,
		Workers:      c.Search.Workers,
	}
}

// Timeout returns the search deadline, 0 for none
func (c *Config) Timeout() time.Duration {
	if c.Search.TimeoutMs <= 0 {
		return 0
	}
	return time.Duration(c.Search.TimeoutMs) * time.Millisecond
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		xdgPath := filepath.Join(configHome, "anagramme")
		if result := utils.CheckDirStatus(xdgPath); result.Writable {
			return xdgPath, nil
		}
	}
	primaryPath := filepath.Join(homeDir, ".config", "anagramme")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "anagramme")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/anagramme/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			SpacesFactor: anagram.DefaultSpacesFactor,
			MaxNodes:     0,
			TimeoutMs:    0,
			Workers:      1,
		},
		Dict: DictConfig{
			ResourceDir: "",
			Language:    "fr",
		},
		CLI: CliConfig{
			Limit:  0,
			Prompt: "> ",
		},
		Server: ServerConfig{
			MaxPhrase:  64,
			MaxResults: 1000,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// sanitize replaces values that cannot work with their defaults
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Search.SpacesFactor < 1 {
		log.Warnf("search.spaces_factor must be >= 1, got %d. Using %d", c.Search.SpacesFactor, def.Search.SpacesFactor)
		c.Search.SpacesFactor = def.Search.SpacesFactor
	}
	if c.Search.Workers < 1 {
		c.Search.Workers = def.Search.Workers
	}
	if c.Search.MaxNodes < 0 {
		c.Search.MaxNodes = 0
	}
	if c.Dict.Language == "" {
		c.Dict.Language = def.Dict.Language
	}
	if c.Server.MaxPhrase < 1 {
		c.Server.MaxPhrase = def.Server.MaxPhrase
	}
}

// tryPartialParse attempts to parse a TOML file section by section
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if searchSection, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(searchSection, &config.Search)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	config.sanitize()
	return config, nil
}

// extractSearchConfig extracts search configuration from a map
func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "spaces_factor"); ok {
		search.SpacesFactor = val
	}
	if val, ok := utils.ExtractInt64(data, "max_nodes"); ok {
		search.MaxNodes = int64(val)
	}
	if val, ok := utils.ExtractInt64(data, "timeout_ms"); ok {
		search.TimeoutMs = val
	}
	if val, ok := utils.ExtractInt64(data, "workers"); ok {
		search.Workers = val
	}
}

// extractDictConfig extracts dictionary configuration from a map
func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "resource_dir"); ok {
		dict.ResourceDir = val
	}
	if val, ok := utils.ExtractString(data, "language"); ok {
		dict.Language = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		cli.Limit = val
	}
	if val, ok := utils.ExtractString(data, "prompt"); ok {
		cli.Prompt = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_phrase"); ok {
		server.MaxPhrase = val
	}
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		server.MaxResults = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
