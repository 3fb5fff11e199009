package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()

	if paths.ConfigDir == "" {
		t.Error("ConfigDir is empty")
	}
	if paths.DataDir == "" {
		t.Error("DataDir is empty")
	}
	if paths.CacheDir == "" {
		t.Error("CacheDir is empty")
	}

	// All paths should be absolute
	if !filepath.IsAbs(paths.ConfigDir) {
		t.Errorf("ConfigDir should be absolute: %s", paths.ConfigDir)
	}
	if !filepath.IsAbs(paths.DataDir) {
		t.Errorf("DataDir should be absolute: %s", paths.DataDir)
	}
}

func TestDefaultPaths_XDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}

	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	t.Setenv("XDG_CACHE_HOME", "/custom/cache")

	paths := DefaultPaths()

	if !strings.HasPrefix(paths.ConfigDir, "/custom/config") {
		t.Errorf("ConfigDir should respect XDG_CONFIG_HOME: %s", paths.ConfigDir)
	}
	if !strings.HasPrefix(paths.DataDir, "/custom/data") {
		t.Errorf("DataDir should respect XDG_DATA_HOME: %s", paths.DataDir)
	}
	if !strings.HasPrefix(paths.CacheDir, "/custom/cache") {
		t.Errorf("CacheDir should respect XDG_CACHE_HOME: %s", paths.CacheDir)
	}
}

func TestDefaultPaths_ConfigDirOverride(t *testing.T) {
	t.Setenv("POKEDEX_CONFIG_DIR", "/override/pokedex-config")

	paths := DefaultPaths()

	if paths.ConfigDir != "/override/pokedex-config" {
		t.Errorf("ConfigDir should respect POKEDEX_CONFIG_DIR: %s", paths.ConfigDir)
	}
	// Data and cache dirs are unaffected by the override
	if strings.HasPrefix(paths.DataDir, "/override") {
		t.Errorf("DataDir should not be affected by POKEDEX_CONFIG_DIR: %s", paths.DataDir)
	}
}

func TestPaths_ConfigFile(t *testing.T) {
	paths := DefaultPaths()
	configFile := paths.ConfigFile()

	if !strings.HasSuffix(configFile, "config.yaml") {
		t.Errorf("ConfigFile should end with config.yaml: %s", configFile)
	}
	if !strings.Contains(configFile, "pokedex") {
		t.Errorf("ConfigFile should contain 'pokedex': %s", configFile)
	}
}

func TestPaths_HistoryFile(t *testing.T) {
	paths := DefaultPaths()
	historyFile := paths.HistoryFile()

	if !strings.HasSuffix(historyFile, "history.db") {
		t.Errorf("HistoryFile should end with history.db: %s", historyFile)
	}
}

func TestPaths_SpriteCacheDir(t *testing.T) {
	paths := DefaultPaths()
	spriteDir := paths.SpriteCacheDir()

	if !strings.HasSuffix(spriteDir, "sprites") {
		t.Errorf("SpriteCacheDir should end with 'sprites': %s", spriteDir)
	}
}

func TestPaths_EnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	// Create custom paths pointing to temp directory
	paths := &Paths{
		ConfigDir: filepath.Join(tmpDir, "config", "pokedex"),
		DataDir:   filepath.Join(tmpDir, "data", "pokedex"),
		CacheDir:  filepath.Join(tmpDir, "cache", "pokedex"),
	}

	// Ensure directories
	err := paths.EnsureDirectories()
	if err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	// Check directories exist
	dirs := []string{
		paths.ConfigDir,
		paths.DataDir,
		paths.SpriteCacheDir(),
	}

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("Directory should exist: %s", dir)
		} else if !info.IsDir() {
			t.Errorf("Should be a directory: %s", dir)
		}
	}
}

func TestHomeDir(t *testing.T) {
	home := homeDir()

	if home == "" {
		t.Error("homeDir returned empty string")
	}
	if !filepath.IsAbs(home) {
		t.Errorf("homeDir should return absolute path: %s", home)
	}
}
