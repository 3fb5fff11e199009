// Package cmd implements the CLI commands for the pokedex.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakmoth/pokedex/internal/config"
	"github.com/oakmoth/pokedex/internal/dex"
	"github.com/oakmoth/pokedex/internal/history"
	"github.com/oakmoth/pokedex/internal/logging"
	"github.com/oakmoth/pokedex/internal/match"
	"github.com/oakmoth/pokedex/internal/picker"
	"github.com/oakmoth/pokedex/internal/render"
	"github.com/oakmoth/pokedex/internal/sprite"
)

const noMatchBanner = "Couldn't find any matches"

// Sentinel errors that set the exit code without printing an error line;
// the failure banner or the picker has already told the user everything.
var (
	errNoMatch   = errors.New("no matches")
	errCancelled = errors.New("cancelled")
)

var (
	lookupLimit     int
	lookupJSON      bool
	lookupNoImage   bool
	lookupPick      bool
	lookupNoHistory bool
	lookupDebug     bool
	configPath      string
)

const (
	groupCore  = "core"
	groupSetup = "setup"
)

var rootCmd = &cobra.Command{
	Use:   "pokedex [flags] name...",
	Short: "Look up a Pokémon by (approximate) name",
	Long: `Look up a Gen 1 Pokémon by name and print its stat sheet.

The name doesn't have to be exact: the closest match wins, so typos
like "charzad" still find Charizard. The report shows Pokédex data,
base stats, training and breeding info, with the sprite rendered
above it when the terminal supports it.

Examples:
  pokedex charizard           # Exact lookup
  pokedex charzad             # Fuzzy lookup, still Charizard
  pokedex mr mime             # Multi-word names work unquoted
  pokedex --pick nido         # Choose among the closest matches
  pokedex --json eevee        # Ranked candidates as JSON`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLookup,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errNoMatch) && !errors.Is(err, errCancelled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: groupCore, Title: "Core Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	rootCmd.Flags().IntVarP(&lookupLimit, "limit", "n", 0, "candidate pool size (default from config)")
	rootCmd.Flags().BoolVar(&lookupJSON, "json", false, "output ranked candidates as JSON")
	rootCmd.Flags().BoolVar(&lookupNoImage, "no-image", false, "skip the sprite above the report")
	rootCmd.Flags().BoolVar(&lookupPick, "pick", false, "choose interactively among the top candidates")
	rootCmd.Flags().BoolVar(&lookupNoHistory, "no-history", false, "do not record this lookup")
	rootCmd.Flags().BoolVar(&lookupDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always, or never")
}

func runLookup(cmd *cobra.Command, args []string) error {
	applyColorMode()

	if len(args) == 0 {
		return cmd.Help()
	}
	query := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg)

	pokedex, err := dex.Load()
	if err != nil {
		return fmt.Errorf("failed to load pokedex: %w", err)
	}

	limit := cfg.Limit
	if lookupLimit > 0 {
		limit = lookupLimit
	}

	matches := dex.Search(pokedex, query, limit)
	logCandidates(logger, query, matches)

	if lookupJSON {
		return writeLookupJSON(query, matches)
	}

	printer := render.NewPrinter(os.Stdout, reportWidth(), outputProfile())

	if len(matches) == 0 {
		printer.Failure(noMatchBanner)
		return errNoMatch
	}

	best := matches[0]
	if lookupPick && len(matches) > 1 && term.IsTerminal(int(os.Stdin.Fd())) {
		choice, ok, err := picker.Pick(matches)
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
		best = choice
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	recordLookup(ctx, cfg, logger, query, best)

	if cfg.Image.Enabled && !lookupNoImage {
		printSprite(ctx, cfg, logger, printer, best.Item.Name)
	}

	printer.Report(best.Item)
	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.Load()
}

func newLogger(cfg *config.Config) *slog.Logger {
	lcfg := logging.DefaultConfig()
	lcfg.Level = logging.ParseLevel(cfg.Log.Level)
	lcfg.Debug = lookupDebug
	return logging.New(lcfg)
}

// logCandidates emits the ranked pool at debug level.
func logCandidates(logger *slog.Logger, query string, matches []match.Match[dex.Pokemon]) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	top := matches
	if len(top) > 5 {
		top = top[:5]
	}
	for i, m := range top {
		logger.Debug("ranked candidate",
			"rank", i+1,
			"query", query,
			"name", m.Item.Name,
			"number", m.Item.Number,
			"similarity", m.Score.Similarity,
			"distance", m.Score.Distance,
		)
	}
}

// recordLookup appends to the lookup history. Failures are logged and
// swallowed; history must never break a lookup.
func recordLookup(ctx context.Context, cfg *config.Config, logger *slog.Logger, query string, m match.Match[dex.Pokemon]) {
	if lookupNoHistory || !cfg.History.Enabled {
		return
	}

	store, err := history.NewStore(config.DefaultPaths().HistoryFile())
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()

	l := &history.Lookup{
		Query:      query,
		Matched:    m.Item.Name,
		Number:     m.Item.Number,
		Similarity: m.Score.Similarity,
		Distance:   m.Score.Distance,
	}
	if err := store.RecordLookup(ctx, l); err != nil {
		logger.Warn("failed to record lookup", "error", err)
	}
}

// printSprite draws the sprite block above the report, degrading to a
// failure banner when the image cannot be fetched or decoded.
func printSprite(ctx context.Context, cfg *config.Config, logger *slog.Logger, p *render.Printer, name string) {
	cacheDir := ""
	if cfg.Sprite.Cache {
		cacheDir = config.DefaultPaths().SpriteCacheDir()
	}

	fetcher := sprite.NewFetcher(sprite.Config{
		BaseURL:  cfg.Sprite.BaseURL,
		CacheDir: cacheDir,
		Logger:   logger,
	})

	img, err := fetcher.Fetch(ctx, name)
	if err != nil {
		logger.Warn("sprite unavailable", "name", name, "error", err)
		p.Failure(fmt.Sprintf("Image: %v", err))
		return
	}

	p.Sprite(img, cfg.Image.Width)
}

type lookupResult struct {
	Name       string  `json:"name"`
	Number     int     `json:"number"`
	Similarity float64 `json:"similarity"`
	Distance   int     `json:"distance"`
}

type lookupResponse struct {
	Query   string         `json:"query"`
	Results []lookupResult `json:"results"`
}

func writeLookupJSON(query string, matches []match.Match[dex.Pokemon]) error {
	results := make([]lookupResult, len(matches))
	for i, m := range matches {
		results[i] = lookupResult{
			Name:       m.Item.Name,
			Number:     m.Item.Number,
			Similarity: m.Score.Similarity,
			Distance:   m.Score.Distance,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(lookupResponse{Query: query, Results: results})
}

// outputProfile decides how much color the report gets. Pipes and
// NO_COLOR/TERM=dumb environments render plain.
func outputProfile() termenv.Profile {
	switch colorMode {
	case "never":
		return termenv.Ascii
	case "always":
		if p := termenv.EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return termenv.Ascii
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// reportWidth clamps the report to the terminal when it is narrower.
func reportWidth() int {
	width := render.DefaultWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}
	return width
}
