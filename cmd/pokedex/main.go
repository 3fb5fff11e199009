// Package main is the entry point for the pokedex CLI.
package main

import (
	"os"

	"github.com/oakmoth/pokedex/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
