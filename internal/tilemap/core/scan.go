// Package core implements the level-grid loader: a dimension scan over a
// plain-text map, a space-padded rectangular grid, and a validating
// population pass.
//
// Line boundaries are '\n', '\r' (swallowing a directly following '\n'),
// and end of input. End of input only closes a line that holds at least
// one byte, so a trailing newline does not add an empty row.
package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Extents is the size a grid needs to hold a source without truncation.
type Extents struct {
	Rows int
	Cols int
}

// String returns "RxC".
func (e Extents) String() string {
	return fmt.Sprintf("%dx%d", e.Rows, e.Cols)
}

// lineReader yields bytes and line boundaries with "\r\n" and "\r"
// normalized to a single boundary.
type lineReader struct {
	br *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// next returns the next content byte, or boundary=true at a line end.
// io.EOF is returned once input is exhausted.
func (lr *lineReader) next() (b byte, boundary bool, err error) {
	b, err = lr.br.ReadByte()
	if err != nil {
		return 0, false, err
	}
	switch b {
	case '\n':
		return 0, true, nil
	case '\r':
		nb, perr := lr.br.Peek(1)
		if perr == nil && nb[0] == '\n' {
			_, _ = lr.br.ReadByte()
		}
		return 0, true, nil
	}
	return b, false, nil
}

// ScanExtents makes one pass over r and returns the row count and the
// longest line length, terminators excluded.
func ScanExtents(r io.Reader) (Extents, error) {
	lr := newLineReader(r)
	var ext Extents
	col := 0

	for {
		_, boundary, err := lr.next()
		if err == io.EOF {
			if col > 0 {
				ext.Rows++
				ext.Cols = max(ext.Cols, col)
			}
			return ext, nil
		}
		if err != nil {
			return Extents{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}

		if boundary {
			ext.Rows++
			ext.Cols = max(ext.Cols, col)
			col = 0
			continue
		}
		col++
	}
}

// ScanFile opens path and scans it for extents.
func ScanFile(path string) (Extents, error) {
	f, err := os.Open(path)
	if err != nil {
		return Extents{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	ext, err := ScanExtents(f)
	if err != nil {
		return Extents{}, fmt.Errorf("scanning %s: %w", path, err)
	}
	return ext, nil
}
