package core_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
)

func TestScanExtents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected core.Extents
	}{
		{"lf with trailing newline", "012\n3\n", core.Extents{Rows: 2, Cols: 3}},
		{"lf without trailing newline", "012\n3", core.Extents{Rows: 2, Cols: 3}},
		{"crlf", "01\r\n2\r\n", core.Extents{Rows: 2, Cols: 2}},
		{"cr only", "01\r2\r", core.Extents{Rows: 2, Cols: 2}},
		{"mixed terminators", "0\r\n123\n01\r", core.Extents{Rows: 3, Cols: 3}},
		{"longest line last", "0\n01\n0123", core.Extents{Rows: 3, Cols: 4}},
		{"blank line in middle", "01\n\n2\n", core.Extents{Rows: 3, Cols: 2}},
		{"single newline", "\n", core.Extents{Rows: 1, Cols: 0}},
		{"cr cr is two boundaries", "0\r\r1", core.Extents{Rows: 3, Cols: 1}},
		{"empty", "", core.Extents{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := core.ScanExtents(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("ScanExtents failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestScanFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	ext, err := core.ScanFile(path)
	if !errors.Is(err, core.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if ext != (core.Extents{}) {
		t.Errorf("expected zero extents on failure, got %v", ext)
	}
}

func TestScanFile(t *testing.T) {
	path := writeLevel(t, "lvl.txt", "0123\n12\n3")

	ext, err := core.ScanFile(path)
	if err != nil {
		t.Fatalf("ScanFile failed: %v", err)
	}
	if ext.Rows != 3 || ext.Cols != 4 {
		t.Errorf("expected 3x4, got %s", ext)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestScanExtentsReadError(t *testing.T) {
	_, err := core.ScanExtents(failingReader{})
	if !errors.Is(err, core.ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}
