// Package config provides configuration management for the pokedex CLI.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds all the path configurations for the pokedex.
type Paths struct {
	// ConfigDir is the directory for configuration files (~/.config/pokedex)
	ConfigDir string

	// DataDir is the directory for data files (~/.local/share/pokedex)
	DataDir string

	// CacheDir is the directory for cached sprites (~/.cache/pokedex)
	CacheDir string
}

// DefaultPaths returns the default paths based on XDG Base Directory spec.
// On Windows, it uses %APPDATA% instead. POKEDEX_CONFIG_DIR overrides the
// config directory on any platform.
func DefaultPaths() *Paths {
	paths := defaultPlatformPaths()

	if dir := os.Getenv("POKEDEX_CONFIG_DIR"); dir != "" {
		paths.ConfigDir = dir
	}

	return paths
}

func defaultPlatformPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}

		return &Paths{
			ConfigDir: filepath.Join(appData, "pokedex"),
			DataDir:   filepath.Join(localAppData, "pokedex"),
			CacheDir:  filepath.Join(localAppData, "pokedex", "cache"),
		}
	}

	// Unix-like systems follow XDG Base Directory spec
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(home, ".cache")
	}

	return &Paths{
		ConfigDir: filepath.Join(configHome, "pokedex"),
		DataDir:   filepath.Join(dataHome, "pokedex"),
		CacheDir:  filepath.Join(cacheHome, "pokedex"),
	}
}

// ConfigFile returns the path to the main configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// HistoryFile returns the path to the lookup history database.
func (p *Paths) HistoryFile() string {
	return filepath.Join(p.DataDir, "history.db")
}

// SpriteCacheDir returns the path to the sprite cache directory.
func (p *Paths) SpriteCacheDir() string {
	return filepath.Join(p.CacheDir, "sprites")
}

// EnsureDirectories creates all necessary directories.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.ConfigDir,
		p.DataDir,
		p.SpriteCacheDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback
		if runtime.GOOS == "windows" {
			return os.Getenv("USERPROFILE")
		}
		return os.Getenv("HOME")
	}
	return home
}
