package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/alertbar/internal/alertbar"
	"github.com/jmylchreest/alertbar/internal/geometry"
)

// Renderer draws bars as blocks of styled terminal lines.
type Renderer struct {
	grid       Grid
	background colorful.Color
}

// NewRenderer creates a renderer. background is the terminal background that
// translucent bars blend against.
func NewRenderer(grid Grid, background colorful.Color) *Renderer {
	return &Renderer{grid: grid, background: background}
}

// SetBackground changes the color bars blend against.
func (r *Renderer) SetBackground(c colorful.Color) {
	r.background = c
}

// Overlay draws views onto lines in the order given, so later views cover
// earlier ones. present supplies each view's on-screen frame and opacity.
func (r *Renderer) Overlay(lines []string, views []*alertbar.View, present func(*alertbar.View) (geometry.Rect, float64)) []string {
	for _, v := range views {
		bar := v.Bar()
		if bar == nil {
			continue
		}
		frame, opacity := present(v)
		col, row, cols, rows := r.grid.Cells(frame)
		if cols <= 0 || rows <= 0 {
			continue
		}

		for i, line := range r.Bar(bar, cols, rows, opacity) {
			y := row + i
			if y < 0 || y >= len(lines) {
				continue
			}
			lines[y] = placeOverlay(col, line, lines[y])
		}
	}
	return lines
}

// Bar renders bar as rows lines of cols cells.
func (r *Renderer) Bar(bar *alertbar.Bar, cols, rows int, opacity float64) []string {
	opts := bar.Options()
	colors := opts.Colors

	bg := blend(r.background, parseHex(colors.Background, r.background), colors.BackgroundOpacity*opacity)
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))
	fg := func(hex string) lipgloss.Style {
		c := blend(bg, parseHex(hex, bg), opacity)
		return base.Foreground(lipgloss.Color(c.Hex()))
	}

	lines := make([]string, rows)
	blank := base.Render(strings.Repeat(" ", cols))
	for i := range lines {
		lines[i] = blank
	}

	layout := bar.Layout()
	content := bar.Content()

	if layout.HasImage {
		col := r.grid.Col(layout.Image.X + layout.Image.W/2)
		row := r.grid.Row(layout.Image.Y + layout.Image.H/2)
		putText(lines, col, row, cols, bar.Icon().Glyph, fg(colors.Image).Bold(true))
	}

	col := r.grid.Col(layout.Title.X)
	row := r.grid.Row(layout.Title.Y + layout.Title.H/2)
	putText(lines, col, row, cols, content.Title, fg(colors.Title).Bold(true))

	if layout.HasBody {
		col := r.grid.Col(layout.Body.X)
		row := r.grid.Row(layout.Body.Y + layout.Body.H/2)
		putText(lines, col, row, cols, content.Body, fg(colors.Body))
	}

	return lines
}

// putText writes text at col, row of a block cols wide, truncating it to
// the space left on the row.
func putText(lines []string, col, row, cols int, text string, style lipgloss.Style) {
	if row < 0 || row >= len(lines) || col < 0 || col >= cols {
		return
	}
	text = ansi.Truncate(text, cols-col, "…")
	lines[row] = placeOverlay(col, style.Render(text), lines[row])
}

// placeOverlay writes fg on top of bg starting at column x. Styled strings
// are cut by display width; fg is clipped to bg's width.
func placeOverlay(x int, fg, bg string) string {
	bgW := ansi.StringWidth(bg)
	if x < 0 {
		fg = ansi.Cut(fg, -x, ansi.StringWidth(fg))
		x = 0
	}
	if x >= bgW {
		return bg
	}

	fgW := ansi.StringWidth(fg)
	if x+fgW > bgW {
		fg = ansi.Cut(fg, 0, bgW-x)
		fgW = bgW - x
	}

	left := ansi.Cut(bg, 0, x)
	var right string
	if x+fgW < bgW {
		right = ansi.Cut(bg, x+fgW, bgW)
	}
	return left + fg + right
}

// blend mixes over onto base; alpha 0 is all base, 1 is all over.
func blend(base, over colorful.Color, alpha float64) colorful.Color {
	if alpha <= 0 {
		return base
	}
	if alpha >= 1 {
		return over
	}
	return base.BlendRgb(over, alpha).Clamped()
}

func parseHex(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}
