package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels in the catalog",
	Long: `Shows every level recorded by 'tilegrid index', with its size and
the number of collectibles and spawns.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	e := setup()
	st := newStyles(os.Stdout)

	store, err := storage.Open(e.cfg.Catalog.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.ListLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No levels indexed.")
		fmt.Println()
		fmt.Println("Run 'tilegrid index <dir>' to add some.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, entry := range entries {
		if len(entry.ID) > maxIDLen {
			maxIDLen = len(entry.ID)
		}
	}

	fmt.Println(st.header.Render(fmt.Sprintf("  %-*s  %-7s  %-8s  %-5s  %-6s  %s", maxIDLen, "ID", "Size", "Alphabet", "Items", "Spawns", "Indexed")))
	for _, entry := range entries {
		size := fmt.Sprintf("%dx%d", entry.Rows, entry.Cols)
		fmt.Printf("  %-*s  %-7s  %-8s  %-5d  %-6d  %s\n",
			maxIDLen, entry.ID, size, entry.Alphabet,
			entry.TileCounts["2"], entry.TileCounts["3"],
			st.muted.Render(entry.IndexedAt.Format("2006-01-02 15:04")))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("%d level(s), %d cells, largest %dx%d\n", stats.Levels, stats.TotalCells, stats.MaxRows, stats.MaxCols)
	}
}
