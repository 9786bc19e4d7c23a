// tilegrid loads and validates plain-text tile level maps.
//
// Usage:
//
//	tilegrid check <file>...   - Load and validate level files
//	tilegrid show <file>       - Print a level's padded grid
//	tilegrid index [dir]       - Load a level directory into the catalog
//	tilegrid levels            - List catalog entries
//	tilegrid alphabets         - List tile alphabets
//
// Global flags:
//
//	--config <path>     - Config file (default: search path, then built-in)
//	--db <path>         - Catalog database path
//	--alphabet <name>   - Tile alphabet used for validation
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/registry"
	"github.com/vovakirdan/tilegrid/internal/tilemap/alphabets"
	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagAlphabet string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilegrid",
	Short: "Load and validate tile level maps",
	Long: `tilegrid reads plain-text level maps into rectangular tile grids.

Each line of a level file is a grid row and each character a tile code.
Lines may end in \n, \r\n or \r; short lines are padded with spaces.
With the default "digits" alphabet only 0 (empty), 1 (wall),
2 (collectible) and 3 (spawn) are accepted.

Examples:
  tilegrid check levels/moon01.txt
  tilegrid show levels/moon01.txt
  tilegrid index ./levels
  tilegrid levels
  tilegrid check --alphabet any notes.txt`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to catalog database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAlphabet, "alphabet", "", "Tile alphabet (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(alphabetsCmd)
}

// env is the resolved runtime setup shared by subcommands.
type env struct {
	cfg          config.Config
	logger       *log.Logger
	alphabet     core.Alphabet
	alphabetName string
}

// setup loads config, applies flag overrides and builds the logger.
// Exits on any error.
func setup() env {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Catalog.Path = flagDBPath
	}
	if flagAlphabet != "" {
		cfg.Levels.Alphabet = flagAlphabet
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := cfg.Log.ParseLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "tilegrid",
		Level:           level,
	})

	name := cfg.Levels.Alphabet
	if name == "" {
		name = alphabets.Digits
	}
	alpha, err := registry.Get(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tilegrid alphabets' to see available alphabets.")
		os.Exit(1)
	}

	return env{
		cfg:          cfg,
		logger:       logger,
		alphabet:     alpha,
		alphabetName: name,
	}
}
