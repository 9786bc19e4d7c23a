package core

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// populate fills g from r, validating each content byte against alpha.
// It walks AtLineStart -> InLine -> AtLineStart ... -> Done and never
// moves the row cursor backward.
func populate(g *Grid, r io.Reader, alpha Alphabet) error {
	lr := newLineReader(r)
	row, col := 0, 0

	for {
		b, boundary, err := lr.next()
		if err == io.EOF {
			if col > 0 {
				row++
			}
			if row != g.rows {
				return fmt.Errorf("%w: read %d rows, measured %d", ErrSourceChanged, row, g.rows)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}

		if boundary {
			row++
			col = 0
			continue
		}

		if !alpha.Accepts(b) {
			return &InvalidTileCodeError{Code: b, Row: row, Col: col}
		}

		pos := C(row, col)
		if !g.InBounds(pos) {
			return fmt.Errorf("%w: byte at %s outside %s", ErrSourceChanged, pos, g.Extents())
		}
		g.set(pos, b)
		col++
	}
}

// build allocates a grid for ext and populates it from the reader that
// open returns. Nothing is returned unless population succeeds.
// A source with no rows or only blank lines has no cells and fails
// with ErrEmptySource.
func build(ext Extents, open func() (io.ReadCloser, error), alpha Alphabet) (*Grid, error) {
	if ext.Rows == 0 || ext.Cols == 0 {
		return nil, ErrEmptySource
	}
	if alpha == nil {
		alpha = Digits
	}

	g, err := NewGrid(ext)
	if err != nil {
		return nil, err
	}

	rc, err := open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer rc.Close()

	if err := populate(g, rc, alpha); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadFile reads the level at path into a new Grid.
// The file is opened twice: once to measure extents, once to populate.
// A nil alphabet means Digits.
func LoadFile(path string, alpha Alphabet) (*Grid, error) {
	ext, err := ScanFile(path)
	if err != nil {
		return nil, err
	}

	g, err := build(ext, func() (io.ReadCloser, error) { return os.Open(path) }, alpha)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return g, nil
}

// LoadBytes is LoadFile for in-memory content.
func LoadBytes(data []byte, alpha Alphabet) (*Grid, error) {
	ext, err := ScanExtents(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return build(ext, func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}, alpha)
}
