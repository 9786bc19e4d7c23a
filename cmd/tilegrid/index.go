package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/storage"
	"github.com/vovakirdan/tilegrid/internal/tilemap/levels"
)

var flagIndexClear bool

var indexCmd = &cobra.Command{
	Use:   "index [dir]",
	Short: "Load a level directory into the catalog",
	Long: `Load every level file under dir (default: levels.dir from config)
and record its extents and tile counts in the catalog.

Nothing is written if any level fails to load.

Examples:
  tilegrid index
  tilegrid index ./levels --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&flagIndexClear, "clear", false, "Remove existing catalog entries first")
}

func runIndex(cmd *cobra.Command, args []string) {
	e := setup()

	dir := e.cfg.Levels.Dir
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err := config.ExpandHome(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := levels.NewLoader(dir,
		levels.WithAlphabet(e.alphabetName, e.alphabet),
		levels.WithWorkers(e.cfg.Levels.Workers),
		levels.WithLogger(e.logger),
	)

	lvls, err := loader.LoadAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describeError(err))
		e.logger.Debug("index aborted", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(e.cfg.Catalog.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagIndexClear {
		if err := store.ClearLevels(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	for _, lvl := range lvls {
		if err := store.SaveLevel(catalogEntry(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		e.logger.Debug("indexed", "id", lvl.ID, "path", lvl.FilePath)
	}

	fmt.Printf("Indexed %d level(s) from %s\n", len(lvls), dir)
}

// catalogEntry converts a loaded level into a catalog row.
func catalogEntry(lvl levels.Level) storage.LevelEntry {
	ext := lvl.Extents()
	return storage.LevelEntry{
		ID:         lvl.ID,
		Name:       lvl.Name,
		Path:       lvl.FilePath,
		Format:     string(lvl.Format),
		Alphabet:   lvl.Alphabet,
		Rows:       ext.Rows,
		Cols:       ext.Cols,
		TileCounts: lvl.TileCounts(),
	}
}
