package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
)

// styles holds output styles. All styles are plain when color is off.
type styles struct {
	color  bool
	ok     lipgloss.Style
	bad    lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	tiles  map[core.Tile]lipgloss.Style
}

// newStyles enables color only when f is a terminal.
func newStyles(f *os.File) styles {
	return buildStyles(term.IsTerminal(int(f.Fd())))
}

func buildStyles(color bool) styles {
	st := styles{
		color:  color,
		ok:     lipgloss.NewStyle(),
		bad:    lipgloss.NewStyle(),
		header: lipgloss.NewStyle(),
		muted:  lipgloss.NewStyle(),
		tiles:  make(map[core.Tile]lipgloss.Style),
	}
	if !color {
		return st
	}

	st.ok = st.ok.Bold(true).Foreground(lipgloss.Color("42"))
	st.bad = st.bad.Bold(true).Foreground(lipgloss.Color("196"))
	st.header = st.header.Bold(true).Foreground(lipgloss.Color("229"))
	st.muted = st.muted.Foreground(lipgloss.Color("241"))

	st.tiles[core.TileEmpty] = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	st.tiles[core.TileWall] = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	st.tiles[core.TileCollectible] = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	st.tiles[core.TileSpawn] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	return st
}

// tile renders one cell.
func (st styles) tile(t core.Tile) string {
	if s, ok := st.tiles[t]; ok {
		return s.Render(string(t))
	}
	return string(t)
}
