package sprite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/png"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://raw.githubusercontent.com/itsjavi/pokemon-assets/master/assets/img/pokemon"
	DefaultTimeout = 10 * time.Second
)

// ErrNotFound is returned when the asset repository has no sprite for a name.
var ErrNotFound = errors.New("sprite not found")

// Config holds configuration for the sprite fetcher.
type Config struct {
	// BaseURL is the asset repository root (default: DefaultBaseURL).
	BaseURL string

	// CacheDir keeps downloaded sprites on disk. Empty disables caching.
	CacheDir string

	// Timeout is the download timeout (default: 10s).
	Timeout time.Duration

	// Logger receives cache and download diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Fetcher downloads sprites, serving repeat lookups from the disk cache.
type Fetcher struct {
	client   *http.Client
	baseURL  string
	cacheDir string
	logger   *slog.Logger
}

// NewFetcher creates a sprite fetcher.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		cacheDir: cfg.CacheDir,
		logger:   cfg.Logger,
	}
}

// Fetch returns the sprite image for the given display name. The disk
// cache is tried first; a successful download is written back to it.
func (f *Fetcher) Fetch(ctx context.Context, name string) (image.Image, error) {
	slug := Slug(name)

	if data, ok := f.readCache(slug); ok {
		img, err := decode(data)
		if err == nil {
			f.logger.Debug("sprite cache hit", "slug", slug)
			return img, nil
		}
		// Corrupt cache entry, fall through to a fresh download
		f.logger.Debug("sprite cache entry unreadable", "slug", slug, "error", err)
	}

	data, err := f.download(ctx, slug)
	if err != nil {
		return nil, err
	}

	f.writeCache(slug, data)

	return decode(data)
}

func (f *Fetcher) download(ctx context.Context, slug string) ([]byte, error) {
	url := f.baseURL + "/" + slug + ".png"
	f.logger.Debug("downloading sprite", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download sprite: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sprite server returned status %d for %s", resp.StatusCode, slug)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sprite: %w", err)
	}

	return data, nil
}

func (f *Fetcher) cachePath(slug string) string {
	return filepath.Join(f.cacheDir, slug+".png")
}

func (f *Fetcher) readCache(slug string) ([]byte, bool) {
	if f.cacheDir == "" {
		return nil, false
	}
	data, err := os.ReadFile(f.cachePath(slug))
	if err != nil {
		return nil, false
	}
	return data, true
}

// writeCache stores a downloaded sprite. Cache failures are logged, not
// returned; the sprite was already fetched and can still be rendered.
func (f *Fetcher) writeCache(slug string, data []byte) {
	if f.cacheDir == "" {
		return
	}
	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		f.logger.Warn("failed to create sprite cache dir", "dir", f.cacheDir, "error", err)
		return
	}
	if err := os.WriteFile(f.cachePath(slug), data, 0o644); err != nil {
		f.logger.Warn("failed to cache sprite", "slug", slug, "error", err)
	}
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sprite: %w", err)
	}
	return img, nil
}
