package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakmoth/pokedex/internal/sprite"
)

// DefaultSpriteBaseURL is where sprite images are fetched from when the
// config does not override it.
const DefaultSpriteBaseURL = sprite.DefaultBaseURL

// Config represents the pokedex configuration.
type Config struct {
	Limit   int           `yaml:"limit"` // Candidate pool size for ranking
	Image   ImageConfig   `yaml:"image"`
	Sprite  SpriteConfig  `yaml:"sprite"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

// ImageConfig holds terminal sprite rendering settings.
type ImageConfig struct {
	Enabled bool `yaml:"enabled"` // Render the sprite above the report
	Width   int  `yaml:"width"`   // Sprite width in terminal columns
}

// SpriteConfig holds sprite download settings.
type SpriteConfig struct {
	BaseURL string `yaml:"base_url"` // Asset repository base URL
	Cache   bool   `yaml:"cache"`    // Keep downloaded sprites on disk
}

// HistoryConfig holds lookup history settings.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"` // Record lookups in the history database
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Limit: 10,
		Image: ImageConfig{
			Enabled: true,
			Width:   68,
		},
		Sprite: SpriteConfig{
			BaseURL: DefaultSpriteBaseURL,
			Cache:   true,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	paths := DefaultPaths()
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile saves the configuration to the specified file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration. Out-of-range numeric values are
// clamped rather than rejected; a bad log level is an error.
func (c *Config) Validate() error {
	if c.Limit < 1 {
		c.Limit = 1
	}
	if c.Limit > 151 {
		c.Limit = 151
	}

	if c.Image.Width < 16 {
		c.Image.Width = 16
	}
	if c.Image.Width > 200 {
		c.Image.Width = 200
	}

	if c.Sprite.BaseURL == "" {
		c.Sprite.BaseURL = DefaultSpriteBaseURL
	}

	if !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error (got: %s)", c.Log.Level)
	}

	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("POKEDEX_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Log.Level = "debug"
		}
	}
	if v := os.Getenv("POKEDEX_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.Log.Level = v
		}
	}
	if v := os.Getenv("POKEDEX_NO_IMAGE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Image.Enabled = false
		}
	}
	if v := os.Getenv("POKEDEX_SPRITE_BASE_URL"); v != "" {
		c.Sprite.BaseURL = v
	}
}

// Get retrieves a configuration value by key. Keys are dot-separated
// except the top-level "limit".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "limit":
		return strconv.Itoa(c.Limit), nil
	case "image.enabled":
		return strconv.FormatBool(c.Image.Enabled), nil
	case "image.width":
		return strconv.Itoa(c.Image.Width), nil
	case "sprite.base_url":
		return c.Sprite.BaseURL, nil
	case "sprite.cache":
		return strconv.FormatBool(c.Sprite.Cache), nil
	case "history.enabled":
		return strconv.FormatBool(c.History.Enabled), nil
	case "log.level":
		return c.Log.Level, nil
	default:
		return "", fmt.Errorf("unknown key: %s", key)
	}
}

// Set sets a configuration value by key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "limit":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for limit: %w", err)
		}
		if v < 1 || v > 151 {
			return errors.New("invalid limit: must be between 1 and 151")
		}
		c.Limit = v
	case "image.enabled":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for image.enabled: %w", err)
		}
		c.Image.Enabled = v
	case "image.width":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for image.width: %w", err)
		}
		if v < 16 {
			v = 16
		}
		if v > 200 {
			v = 200
		}
		c.Image.Width = v
	case "sprite.base_url":
		if value == "" {
			return errors.New("invalid sprite.base_url: must not be empty")
		}
		c.Sprite.BaseURL = strings.TrimRight(value, "/")
	case "sprite.cache":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for sprite.cache: %w", err)
		}
		c.Sprite.Cache = v
	case "history.enabled":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for history.enabled: %w", err)
		}
		c.History.Enabled = v
	case "log.level":
		if !isValidLogLevel(value) {
			return fmt.Errorf("invalid log.level: %s (must be debug, info, warn, or error)", value)
		}
		c.Log.Level = value
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

// ListKeys returns the user-facing configuration keys.
func ListKeys() []string {
	return []string{
		"limit",
		"image.enabled",
		"image.width",
		"sprite.base_url",
		"sprite.cache",
		"history.enabled",
		"log.level",
	}
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
