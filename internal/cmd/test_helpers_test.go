package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"
)

type lookupGlobals struct {
	limit     int
	json      bool
	noImage   bool
	pick      bool
	noHistory bool
	debug     bool
	config    string
}

func withLookupGlobals(t *testing.T, g lookupGlobals) {
	t.Helper()
	old := lookupGlobals{
		limit:     lookupLimit,
		json:      lookupJSON,
		noImage:   lookupNoImage,
		pick:      lookupPick,
		noHistory: lookupNoHistory,
		debug:     lookupDebug,
		config:    configPath,
	}
	lookupLimit = g.limit
	lookupJSON = g.json
	lookupNoImage = g.noImage
	lookupPick = g.pick
	lookupNoHistory = g.noHistory
	lookupDebug = g.debug
	configPath = g.config

	t.Cleanup(func() {
		lookupLimit = old.limit
		lookupJSON = old.json
		lookupNoImage = old.noImage
		lookupPick = old.pick
		lookupNoHistory = old.noHistory
		lookupDebug = old.debug
		configPath = old.config
	})
}

// isolateEnv points every path the commands touch at temp directories.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("POKEDEX_CONFIG_DIR", "")
	t.Setenv("POKEDEX_DEBUG", "")
	t.Setenv("POKEDEX_NO_IMAGE", "")
	t.Setenv("POKEDEX_SPRITE_BASE_URL", "")
	t.Setenv("POKEDEX_LOG_LEVEL", "")
}

// muteColors forces plain output so assertions see no escape codes.
func muteColors(t *testing.T) {
	t.Helper()
	oldMode := colorMode
	colorMode = "never"
	applyColorMode()
	t.Cleanup(func() {
		colorMode = oldMode
	})
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() failed: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()
	_ = w.Close()
	os.Stdout = old
	out := <-outC
	_ = r.Close()
	return out
}
