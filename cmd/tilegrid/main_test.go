package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
	"github.com/vovakirdan/tilegrid/internal/tilemap/levels"
)

func testdataLevels() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "internal", "tilemap", "levels", "testdata", "levels")
}

func TestRenderGridPlain(t *testing.T) {
	g, err := core.LoadBytes([]byte("012\n3\n"), core.Digits)
	if err != nil {
		t.Fatal(err)
	}

	got := renderGrid(g, buildStyles(false))
	if got != "012\n3  \n" {
		t.Errorf("unexpected plain render %q", got)
	}
}

func TestRenderGridColorKeepsShape(t *testing.T) {
	g, err := core.LoadBytes([]byte("01\n2\n"), core.Digits)
	if err != nil {
		t.Fatal(err)
	}

	got := renderGrid(g, buildStyles(true))
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected 2 rows, got %q", got)
	}
}

func TestRenderCounts(t *testing.T) {
	g, err := core.LoadBytes([]byte("0123\n3\n"), core.Digits)
	if err != nil {
		t.Fatal(err)
	}

	got := renderCounts(g, buildStyles(false))
	for _, want := range []string{"spawn", "filler"} {
		if !strings.Contains(got, want) {
			t.Errorf("counts missing %q:\n%s", want, got)
		}
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{&core.InvalidTileCodeError{Code: 'X', Row: 0, Col: 1}, `invalid tile 'X' at line 1, column 2`},
		{fmt.Errorf("wrap: %w", core.ErrSourceUnavailable), "cannot read file"},
		{core.ErrEmptySource, "file is empty"},
		{core.ErrAllocation, "level too large"},
		{core.ErrSourceChanged, "file changed while loading"},
		{errors.New("other"), "other"},
	}

	for _, tc := range tests {
		if got := describeError(tc.err); got != tc.expected {
			t.Errorf("describeError(%v): expected %q, got %q", tc.err, tc.expected, got)
		}
	}
}

func TestCatalogEntry(t *testing.T) {
	loader := levels.NewLoader(testdataLevels())
	lvl, err := loader.LoadFile(filepath.Join(loader.Root, "lvl01.txt"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	entry := catalogEntry(lvl)
	if entry.ID != "lvl01" || entry.Rows != 5 || entry.Cols != 7 {
		t.Errorf("unexpected entry %+v", entry)
	}
	if entry.Format != "text" || entry.Alphabet != "digits" {
		t.Errorf("unexpected format/alphabet %q/%q", entry.Format, entry.Alphabet)
	}
	if entry.TileCounts["3"] != 1 {
		t.Errorf("expected one spawn, got %v", entry.TileCounts)
	}
}
