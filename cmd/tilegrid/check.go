package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
	"github.com/vovakirdan/tilegrid/internal/tilemap/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Load and validate level files",
	Long: `Load each level file, validate every tile code and print its extents.

Exits with status 1 if any file fails to load.

Examples:
  tilegrid check levels/moon01.txt
  tilegrid check levels/*.txt levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	e := setup()
	st := newStyles(os.Stdout)

	failed := 0
	for _, path := range args {
		loader := levels.NewLoader(filepath.Dir(path),
			levels.WithAlphabet(e.alphabetName, e.alphabet),
			levels.WithLogger(e.logger),
		)

		lvl, err := loader.LoadFile(path)
		if err != nil {
			failed++
			fmt.Printf("%s  %s  %s\n", st.bad.Render("FAIL"), path, describeError(err))
			continue
		}
		fmt.Printf("%s  %s  %s (%s)\n", st.ok.Render("OK  "), path, lvl.Extents(), lvl.Alphabet)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d level(s) failed\n", failed, len(args))
		os.Exit(1)
	}
}

// describeError turns loader errors into a short reason.
func describeError(err error) string {
	var tileErr *core.InvalidTileCodeError
	switch {
	case errors.As(err, &tileErr):
		return fmt.Sprintf("invalid tile %q at line %d, column %d", tileErr.Code, tileErr.Row+1, tileErr.Col+1)
	case errors.Is(err, core.ErrSourceUnavailable):
		return "cannot read file"
	case errors.Is(err, core.ErrEmptySource):
		return "file is empty"
	case errors.Is(err, core.ErrAllocation):
		return "level too large"
	case errors.Is(err, core.ErrSourceChanged):
		return "file changed while loading"
	default:
		return err.Error()
	}
}
