package tui

import (
	"github.com/jmylchreest/alertbar/internal/geometry"
)

// Screen is one page of the demo. Bars attach to screens.
type Screen struct {
	id      string
	title   string
	grid    Grid
	cols    int
	rows    int
	navRows int
	active  bool
}

// NewScreen creates an active screen with navRows rows of title chrome.
func NewScreen(id, title string, grid Grid, navRows int) *Screen {
	return &Screen{
		id:      id,
		title:   title,
		grid:    grid,
		navRows: navRows,
		active:  true,
	}
}

func (s *Screen) ID() string    { return s.id }
func (s *Screen) Title() string { return s.title }
func (s *Screen) Active() bool  { return s.active }

// Bounds covers the whole terminal; the status line is drawn over it.
func (s *Screen) Bounds() geometry.Rect {
	size := s.grid.Size(s.cols, s.rows)
	return geometry.Rect{W: size.W, H: size.H}
}

// NavBarHeight returns the height of the title chrome in points.
func (s *Screen) NavBarHeight() float64 {
	return float64(s.navRows) * s.grid.CellHeight
}

// Resize sets the screen size in cells.
func (s *Screen) Resize(cols, rows int) {
	s.cols = cols
	s.rows = rows
}

// Close marks the screen as gone. Attaching to it fails afterwards.
func (s *Screen) Close() {
	s.active = false
}
