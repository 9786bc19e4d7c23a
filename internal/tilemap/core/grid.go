package core

import (
	"bytes"
	"fmt"
	"io"
)

// MaxCells caps rows*cols for a single grid.
const MaxCells = 1 << 24

// Grid is a rectangular level layout.
// Cells are stored in row-major order: index = row*cols + col.
// Extents are fixed at construction; consumers only read from a Grid.
type Grid struct {
	rows  int
	cols  int
	cells []Tile
}

// NewGrid allocates a grid of the given extents with every cell set to Filler.
func NewGrid(ext Extents) (*Grid, error) {
	if ext.Rows < 0 || ext.Cols < 0 {
		return nil, fmt.Errorf("%w: negative extents %s", ErrAllocation, ext)
	}
	if ext.Cols > 0 && ext.Rows > MaxCells/ext.Cols {
		return nil, fmt.Errorf("%w: %s exceeds %d cells", ErrAllocation, ext, MaxCells)
	}

	g := &Grid{
		rows:  ext.Rows,
		cols:  ext.Cols,
		cells: bytes.Repeat([]byte{Filler}, ext.Rows*ext.Cols),
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Extents returns the grid size.
func (g *Grid) Extents() Extents {
	return Extents{Rows: g.rows, Cols: g.cols}
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the tile at (row, col), or Filler if out of bounds.
func (g *Grid) At(row, col int) Tile {
	c := C(row, col)
	if !g.InBounds(c) {
		return Filler
	}
	return g.cells[g.index(c)]
}

// set is only used by the population pass.
func (g *Grid) set(c Coord, t Tile) {
	g.cells[g.index(c)] = t
}

// Row returns row r as a string of exactly Cols bytes.
// Returns "" if r is out of range.
func (g *Grid) Row(r int) string {
	if r < 0 || r >= g.rows {
		return ""
	}
	return string(g.cells[r*g.cols : (r+1)*g.cols])
}

// Lines returns every row, padded to Cols.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for r := range g.rows {
		lines[r] = g.Row(r)
	}
	return lines
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	return bytes.Count(g.cells, []byte{t})
}

// Counts returns the number of cells per tile code, filler included.
func (g *Grid) Counts() map[Tile]int {
	counts := make(map[Tile]int)
	for _, t := range g.cells {
		counts[t]++
	}
	return counts
}

// Find returns every coordinate holding t, ordered by row then column.
func (g *Grid) Find(t Tile) []Coord {
	var coords []Coord
	for i, cell := range g.cells {
		if cell == t {
			coords = append(coords, C(i/g.cols, i%g.cols))
		}
	}
	return coords
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Equal returns true if two grids have the same extents and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	return bytes.Equal(g.cells, other.cells)
}

// WriteTo writes the grid one row per line, each terminated by '\n'.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for r := range g.rows {
		n, err := io.WriteString(w, g.Row(r)+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the same text WriteTo produces.
func (g *Grid) String() string {
	var buf bytes.Buffer
	_, _ = g.WriteTo(&buf)
	return buf.String()
}
