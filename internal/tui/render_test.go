package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/alertbar/internal/alertbar"
	"github.com/jmylchreest/alertbar/internal/geometry"
	"github.com/jmylchreest/alertbar/internal/icon"
)

func TestPlaceOverlay(t *testing.T) {
	tests := []struct {
		name string
		x    int
		fg   string
		bg   string
		want string
	}{
		{"middle", 2, "XY", "abcdef", "abXYef"},
		{"start", 0, "XY", "abcdef", "XYcdef"},
		{"clipped right", 4, "XYZ", "abcdef", "abcdXY"},
		{"beyond", 8, "XY", "abcdef", "abcdef"},
		{"clipped left", -1, "XYZ", "abc", "YZc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, placeOverlay(tt.x, tt.fg, tt.bg))
		})
	}
}

func TestPlaceOverlay_Styled(t *testing.T) {
	bg := "\x1b[41m" + strings.Repeat(" ", 10) + "\x1b[0m"
	out := placeOverlay(3, "\x1b[1mhi\x1b[0m", bg)

	assert.Equal(t, 10, ansi.StringWidth(out))
	assert.Equal(t, "   hi     ", ansi.Strip(out))
}

func TestBlend(t *testing.T) {
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}

	assert.Equal(t, black, blend(black, white, 0))
	assert.Equal(t, white, blend(black, white, 1))
	assert.Equal(t, white, blend(black, white, 2))

	mid := blend(black, white, 0.5)
	assert.InDelta(t, 0.5, mid.R, 0.001)
	assert.InDelta(t, 0.5, mid.G, 0.001)
	assert.InDelta(t, 0.5, mid.B, 0.001)
}

func TestParseHex(t *testing.T) {
	fallback := colorful.Color{R: 1}
	assert.Equal(t, "#00ff00", parseHex("#00ff00", fallback).Hex())
	assert.Equal(t, fallback, parseHex("green", fallback))
}

func TestGrid(t *testing.T) {
	col, row, cols, rows := testGrid.Cells(geometry.Rect{X: 0, Y: 60, W: 320, H: 60})
	assert.Equal(t, []int{0, 3, 32, 3}, []int{col, row, cols, rows})

	assert.Equal(t, 3, testGrid.Col(35))
	assert.Equal(t, -1, testGrid.Row(-5))
	assert.Equal(t, geometry.Point{X: 35, Y: 90}, testGrid.Center(3, 4))
	assert.Equal(t, geometry.Size{W: 800, H: 480}, testGrid.Size(80, 24))
}

func newRenderedBar(t *testing.T, content alertbar.Content, image string) (*Host, *alertbar.Bar) {
	t.Helper()
	clock := newFakeClock()
	h := newTestHost(clock)
	m := alertbar.NewManager(h, nil)
	s := NewScreen("s1", "Inbox", testGrid, 2)
	s.Resize(32, 24)

	opts := alertbar.DefaultOptions()
	opts.Image = image
	bar, err := m.Attach(s, content, &opts)
	require.NoError(t, err)

	h.Handle(flushMsg{})
	clock.Advance(time.Second)
	h.Handle(frameMsg{})
	require.Equal(t, alertbar.StateVisible, bar.State())
	return h, bar
}

func TestRenderer_Bar(t *testing.T) {
	_, bar := newRenderedBar(t, alertbar.Content{Title: "Saved", Body: "All changes written"}, icon.NameInfo)
	r := NewRenderer(testGrid, colorful.Color{})

	lines := r.Bar(bar, 32, 3, 1)
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 32, ansi.StringWidth(line))
	}

	assert.Equal(t, "Saved", strings.TrimSpace(ansi.Strip(lines[0])))
	assert.Equal(t, "i", strings.TrimSpace(ansi.Strip(lines[1])))
	assert.Equal(t, "All changes written", strings.TrimSpace(ansi.Strip(lines[2])))
	assert.True(t, strings.HasPrefix(ansi.Strip(lines[0]), "      Saved"), "text starts right of the image")
}

func TestRenderer_BarTitleOnly(t *testing.T) {
	_, bar := newRenderedBar(t, alertbar.Content{Title: "Saved"}, "")
	r := NewRenderer(testGrid, colorful.Color{})

	lines := r.Bar(bar, 32, 3, 1)
	assert.Empty(t, strings.TrimSpace(ansi.Strip(lines[0])))
	assert.Equal(t, "Saved", strings.TrimRight(ansi.Strip(lines[1]), " "), "title centered in the bar")
	assert.Empty(t, strings.TrimSpace(ansi.Strip(lines[2])))
}

func TestRenderer_BarTruncatesText(t *testing.T) {
	_, bar := newRenderedBar(t, alertbar.Content{Title: "A title far too long for the bar"}, "")
	r := NewRenderer(testGrid, colorful.Color{})

	lines := r.Bar(bar, 12, 3, 1)
	assert.Equal(t, 12, ansi.StringWidth(lines[1]))
	assert.Contains(t, ansi.Strip(lines[1]), "…")
}

func TestRenderer_Overlay(t *testing.T) {
	h, bar := newRenderedBar(t, alertbar.Content{Title: "Saved"}, "")
	r := NewRenderer(testGrid, colorful.Color{})

	lines := make([]string, 10)
	for i := range lines {
		lines[i] = strings.Repeat(".", 40)
	}

	lines = r.Overlay(lines, h.Views("s1"), h.Presentation)

	assert.Equal(t, strings.Repeat(".", 40), lines[2], "rows above the bar are untouched")
	assert.Equal(t, strings.Repeat(".", 40), lines[6], "rows below the bar are untouched")
	assert.Equal(t, "Saved", strings.TrimRight(ansi.Strip(lines[4])[:32], " "))
	assert.True(t, strings.HasSuffix(ansi.Strip(lines[4]), strings.Repeat(".", 8)), "bar is 32 of 40 columns")
	assert.Equal(t, bar.View(), h.Views("s1")[0])
}
