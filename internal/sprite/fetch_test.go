package sprite

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)))
	require.NoError(t, err)
	return buf.Bytes()
}

// spriteServer serves a PNG for every path and counts requests.
func spriteServer(t *testing.T, body []byte) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestNewFetcherDefaults(t *testing.T) {
	t.Parallel()

	f := NewFetcher(Config{})
	assert.Equal(t, DefaultBaseURL, f.baseURL)
	assert.Equal(t, DefaultTimeout, f.client.Timeout)

	f = NewFetcher(Config{BaseURL: "https://sprites.example.com/"})
	assert.Equal(t, "https://sprites.example.com", f.baseURL)
}

func TestFetcherDownload(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(pngBytes(t, 8, 8))
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(Config{BaseURL: srv.URL})

	img, err := f.Fetch(t.Context(), "Mr. Mime")
	require.NoError(t, err)
	assert.Equal(t, "/mr-mime.png", gotPath)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestFetcherCachesDownloads(t *testing.T) {
	t.Parallel()

	srv, hits := spriteServer(t, pngBytes(t, 4, 4))
	cacheDir := t.TempDir()

	f := NewFetcher(Config{BaseURL: srv.URL, CacheDir: cacheDir})

	_, err := f.Fetch(t.Context(), "Pikachu")
	require.NoError(t, err)
	require.EqualValues(t, 1, hits.Load())

	// Cache file landed on disk
	_, err = os.Stat(filepath.Join(cacheDir, "pikachu.png"))
	require.NoError(t, err)

	// Second fetch is served from cache
	_, err = f.Fetch(t.Context(), "Pikachu")
	require.NoError(t, err)
	assert.EqualValues(t, 1, hits.Load())
}

func TestFetcherWithoutCacheDirRedownloads(t *testing.T) {
	t.Parallel()

	srv, hits := spriteServer(t, pngBytes(t, 4, 4))

	f := NewFetcher(Config{BaseURL: srv.URL})

	_, err := f.Fetch(t.Context(), "Pikachu")
	require.NoError(t, err)
	_, err = f.Fetch(t.Context(), "Pikachu")
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits.Load())
}

func TestFetcherCorruptCacheEntryIsRefetched(t *testing.T) {
	t.Parallel()

	srv, hits := spriteServer(t, pngBytes(t, 4, 4))
	cacheDir := t.TempDir()

	err := os.WriteFile(filepath.Join(cacheDir, "pikachu.png"), []byte("not a png"), 0o644)
	require.NoError(t, err)

	f := NewFetcher(Config{BaseURL: srv.URL, CacheDir: cacheDir})

	img, err := f.Fetch(t.Context(), "Pikachu")
	require.NoError(t, err)
	assert.NotNil(t, img)
	assert.EqualValues(t, 1, hits.Load())

	// The bad entry was replaced with the downloaded bytes
	data, err := os.ReadFile(filepath.Join(cacheDir, "pikachu.png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes(t, 4, 4), data)
}

func TestFetcherNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(Config{BaseURL: srv.URL})

	_, err := f.Fetch(t.Context(), "MissingNo")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFetcherServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(Config{BaseURL: srv.URL})

	_, err := f.Fetch(t.Context(), "Pikachu")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFetcherRejectsNonImageBody(t *testing.T) {
	t.Parallel()

	srv, _ := spriteServer(t, []byte("<html>not a sprite</html>"))

	f := NewFetcher(Config{BaseURL: srv.URL})

	_, err := f.Fetch(t.Context(), "Pikachu")
	require.Error(t, err)
}
