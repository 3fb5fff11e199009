package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oakmoth/pokedex/internal/config"
	"github.com/oakmoth/pokedex/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "Show recent lookups",
	GroupID: groupCore,
	Long: `Show recent lookups from the local history database.

Every successful lookup records what was typed and which record it
resolved to. Recording is skipped with --no-history or when
history.enabled is false in the config.

Examples:
  pokedex history             # Show the last 10 lookups
  pokedex history -n 50       # Show the last 50
  pokedex history clear       # Forget everything`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded lookups",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of lookups to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	applyColorMode()

	paths := config.DefaultPaths()
	store, err := history.NewStore(paths.HistoryFile())
	if err != nil {
		fmt.Printf("No history available at: %s\n", paths.HistoryFile())
		return nil
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lookups, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to query history: %w", err)
	}

	if len(lookups) == 0 {
		fmt.Println("No lookups recorded yet.")
		return nil
	}

	// Print oldest at top for typical terminal usage
	for i := len(lookups) - 1; i >= 0; i-- {
		printLookup(lookups[i])
	}

	fmt.Println()
	fmt.Printf("%sShowing %d lookup(s)%s\n", colorDim, len(lookups), colorReset)

	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	paths := config.DefaultPaths()
	store, err := history.NewStore(paths.HistoryFile())
	if err != nil {
		fmt.Println("No history to clear.")
		return nil
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	removed, err := store.Clear(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Printf("Removed %d lookup(s)\n", removed)
	return nil
}

func printLookup(l history.Lookup) {
	t := time.UnixMilli(l.CreatedUnixMs)
	timestamp := t.Format("2006-01-02 15:04:05")

	fmt.Printf("%s%s%s  %s#%03d%s %s  %s(%s, %.0f%% match)%s\n",
		colorDim, timestamp, colorReset,
		colorCyan, l.Number, colorReset,
		l.Matched,
		colorDim, l.Query, l.Similarity*100, colorReset,
	)
}
