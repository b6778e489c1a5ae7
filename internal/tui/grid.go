package tui

import (
	"math"

	"github.com/jmylchreest/alertbar/internal/geometry"
)

// Grid maps points to terminal cells.
type Grid struct {
	CellWidth  float64
	CellHeight float64
}

// Col returns the column containing x.
func (g Grid) Col(x float64) int {
	return int(math.Floor(x / g.CellWidth))
}

// Row returns the row containing y.
func (g Grid) Row(y float64) int {
	return int(math.Floor(y / g.CellHeight))
}

// Cells returns the cell rectangle covering r: origin column and row, then
// width and height in cells. Sizes round to the nearest cell.
func (g Grid) Cells(r geometry.Rect) (col, row, cols, rows int) {
	col = int(math.Round(r.X / g.CellWidth))
	row = int(math.Round(r.Y / g.CellHeight))
	cols = int(math.Round(r.W / g.CellWidth))
	rows = int(math.Round(r.H / g.CellHeight))
	return col, row, cols, rows
}

// Center returns the point at the middle of a cell.
func (g Grid) Center(col, row int) geometry.Point {
	return geometry.Point{
		X: (float64(col) + 0.5) * g.CellWidth,
		Y: (float64(row) + 0.5) * g.CellHeight,
	}
}

// Size returns the size in points of a cols x rows area.
func (g Grid) Size(cols, rows int) geometry.Size {
	return geometry.Size{W: float64(cols) * g.CellWidth, H: float64(rows) * g.CellHeight}
}
