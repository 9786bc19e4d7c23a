package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
	"github.com/vovakirdan/tilegrid/internal/tilemap/levels"
)

var flagShowStats bool

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a level's padded grid",
	Long: `Load a level and print its grid one row per line, padded to the
widest row. Tile codes are colored when writing to a terminal.

Examples:
  tilegrid show levels/moon01.txt
  tilegrid show --stats levels/crater.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowStats, "stats", false, "Print tile counts below the grid")
}

func runShow(cmd *cobra.Command, args []string) {
	e := setup()
	path := args[0]

	loader := levels.NewLoader(filepath.Dir(path),
		levels.WithAlphabet(e.alphabetName, e.alphabet),
		levels.WithLogger(e.logger),
	)
	lvl, err := loader.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %s\n", path, describeError(err))
		os.Exit(1)
	}

	st := newStyles(os.Stdout)
	fmt.Println(st.header.Render(fmt.Sprintf("%s - %s", lvl.Name, lvl.Extents())))
	fmt.Print(renderGrid(lvl.Grid, st))

	if flagShowStats {
		fmt.Println()
		fmt.Print(renderCounts(lvl.Grid, st))
	}
}

// renderGrid prints the grid like a plain dump, styling each cell.
func renderGrid(g *core.Grid, st styles) string {
	if !st.color {
		return g.String()
	}

	var sb strings.Builder
	for r := range g.Rows() {
		for c := range g.Cols() {
			sb.WriteString(st.tile(g.At(r, c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderCounts lists how many cells hold each digit tile code.
func renderCounts(g *core.Grid, st styles) string {
	var sb strings.Builder
	for _, t := range []core.Tile{core.TileEmpty, core.TileWall, core.TileCollectible, core.TileSpawn, core.Filler} {
		fmt.Fprintf(&sb, "  %s %-12s %d\n", st.tile(t), core.TileName(t), g.Count(t))
	}
	return sb.String()
}
