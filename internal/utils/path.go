package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver resolves resource and config locations for the anagramme binary
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "anagramme")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "anagramme")
		}
		return filepath.Join(homeDir, ".config", "anagramme")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "anagramme")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "anagramme")
	default:
		return filepath.Join(homeDir, ".anagramme")
	}
}

// GetResourceDir resolves the directory holding the <lang>.txt dictionaries.
// Candidates in order:
// 1. userSpecifiedPath as given (absolute or relative to the working dir)
// 2. relative to the executable directory
// 3. <execDir>/resources and <configDir>/resources
// The first candidate holding at least one .txt file wins. When none does,
// the user path is returned unchanged so loading reports the real error.
func (pr *PathResolver) GetResourceDir(userSpecifiedPath string) string {
	for _, path := range pr.resourceCandidates(userSpecifiedPath) {
		if isResourceDir(path) {
			log.Debugf("Found resource directory: %s", path)
			return path
		}
		log.Debugf("Resource directory candidate not valid: %s", path)
	}
	return userSpecifiedPath
}

func (pr *PathResolver) resourceCandidates(userSpecifiedPath string) []string {
	var candidates []string
	if userSpecifiedPath != "" {
		candidates = append(candidates, userSpecifiedPath)
		if !filepath.IsAbs(userSpecifiedPath) {
			candidates = append(candidates, filepath.Join(pr.executableDir, userSpecifiedPath))
		}
	}
	return append(candidates,
		filepath.Join(pr.executableDir, "resources"),
		filepath.Join(pr.configDir, "resources"),
	)
}

// isResourceDir checks if a directory contains at least one dictionary file
func isResourceDir(path string) bool {
	if !IsDir(path) {
		return false
	}
	matches, err := filepath.Glob(filepath.Join(path, "*.txt"))
	return err == nil && len(matches) > 0
}
