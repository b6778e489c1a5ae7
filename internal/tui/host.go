package tui

import (
	"log/slog"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jmylchreest/alertbar/internal/alertbar"
	"github.com/jmylchreest/alertbar/internal/geometry"
)

var _ alertbar.Host = (*Host)(nil)

// Messages the host sends to itself through the bubbletea loop.
type (
	flushMsg struct{}
	timerMsg struct{ id uint64 }
	frameMsg struct{}
)

// tween is the in-flight presentation of one view: it runs from a captured
// frame and opacity to whatever the view's model values are.
type tween struct {
	fromFrame   geometry.Rect
	fromOpacity float64
	start       time.Time
	duration    time.Duration
}

// animation is one Animate call waiting for its completion handler.
type animation struct {
	end  time.Time
	done func()
}

// Host runs alertbar work on the bubbletea loop. Every posted function,
// timer, animation completion and tap handler executes inside Update, so
// the manager is never called concurrently.
//
// Host methods queue commands; the owning model returns them with Cmd.
type Host struct {
	grid      Grid
	statusBar float64
	frame     time.Duration
	clock     func() time.Time
	logger    *slog.Logger

	queue     []func()
	flushing  bool
	nextTimer uint64
	timers    map[uint64]func()

	views      map[string][]*alertbar.View
	tweens     map[*alertbar.View]*tween
	animations []*animation
	ticking    bool
	taps       map[*alertbar.View]func()

	cmds []tea.Cmd
}

// HostOptions configures a Host.
type HostOptions struct {
	Grid          Grid
	StatusBarRows int
	FPS           int
	Clock         func() time.Time // Defaults to time.Now
	Logger        *slog.Logger
}

// NewHost creates a new host.
func NewHost(opts HostOptions) *Host {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	return &Host{
		grid:      opts.Grid,
		statusBar: float64(opts.StatusBarRows) * opts.Grid.CellHeight,
		frame:     time.Second / time.Duration(opts.FPS),
		clock:     opts.Clock,
		logger:    opts.Logger,
		timers:    make(map[uint64]func()),
		views:     make(map[string][]*alertbar.View),
		tweens:    make(map[*alertbar.View]*tween),
		taps:      make(map[*alertbar.View]func()),
	}
}

// SetFPS changes the animation frame rate for subsequent frames.
func (h *Host) SetFPS(fps int) {
	if fps > 0 {
		h.frame = time.Second / time.Duration(fps)
	}
}

// Post runs fn on a later pass through the loop. Functions run in the order
// they were posted.
func (h *Host) Post(fn func()) {
	h.queue = append(h.queue, fn)
	if !h.flushing {
		h.flushing = true
		h.cmds = append(h.cmds, func() tea.Msg { return flushMsg{} })
	}
}

// AfterFunc runs fn on the loop once d has elapsed. The returned func
// cancels it and reports whether it was still pending.
func (h *Host) AfterFunc(d time.Duration, fn func()) func() bool {
	h.nextTimer++
	id := h.nextTimer
	h.timers[id] = fn
	h.cmds = append(h.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))

	return func() bool {
		if _, ok := h.timers[id]; !ok {
			return false
		}
		delete(h.timers, id)
		return true
	}
}

// Animate captures the current presentation of views, applies changes to
// their model values and tweens from one to the other over d.
func (h *Host) Animate(d time.Duration, views []*alertbar.View, changes func(), done func()) {
	now := h.clock()

	from := make([]tween, len(views))
	for i, v := range views {
		frame, opacity := h.presentationAt(v, now)
		from[i] = tween{fromFrame: frame, fromOpacity: opacity, start: now, duration: d}
	}

	changes()

	for i, v := range views {
		t := from[i]
		h.tweens[v] = &t
	}
	h.animations = append(h.animations, &animation{end: now.Add(d), done: done})
	h.startFrames()
}

// Insert adds v to parent's view list.
func (h *Host) Insert(parent alertbar.Parent, v *alertbar.View) {
	id := parent.ID()
	h.views[id] = append(h.views[id], v)
}

// Remove takes v out of the hierarchy along with its tap handler and tween.
func (h *Host) Remove(v *alertbar.View) {
	for id, views := range h.views {
		for i, other := range views {
			if other != v {
				continue
			}
			views = append(views[:i:i], views[i+1:]...)
			if len(views) == 0 {
				delete(h.views, id)
			} else {
				h.views[id] = views
			}
			break
		}
	}
	delete(h.taps, v)
	delete(h.tweens, v)
}

// OnTap registers fn to run when v is tapped.
func (h *Host) OnTap(v *alertbar.View, fn func()) {
	h.taps[v] = fn
}

// StatusBarHeight returns the height of the status line in points.
func (h *Host) StatusBarHeight() float64 {
	return h.statusBar
}

// MeasureText returns the size of a single line of text in points.
func (h *Host) MeasureText(text string, bold bool) geometry.Size {
	return geometry.Size{
		W: float64(ansi.StringWidth(text)) * h.grid.CellWidth,
		H: h.grid.CellHeight,
	}
}

// Handle processes host messages. It reports whether msg belonged to the
// host; commands it produced are returned by the next Cmd call.
func (h *Host) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case flushMsg:
		h.flush()
	case timerMsg:
		fn, ok := h.timers[msg.id]
		if !ok {
			h.logger.Debug("ignoring stopped timer", "timer_id", msg.id)
			return true
		}
		delete(h.timers, msg.id)
		fn()
	case frameMsg:
		h.ticking = false
		h.step()
	default:
		return false
	}
	return true
}

// Cmd returns the commands queued since the last call.
func (h *Host) Cmd() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	cmds := h.cmds
	h.cmds = nil
	return tea.Batch(cmds...)
}

// Views returns parent's views ordered bottom to top.
func (h *Host) Views(parentID string) []*alertbar.View {
	views := make([]*alertbar.View, len(h.views[parentID]))
	copy(views, h.views[parentID])
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].ZIndex < views[j].ZIndex
	})
	return views
}

// Presentation returns what is on screen for v right now.
func (h *Host) Presentation(v *alertbar.View) (geometry.Rect, float64) {
	return h.presentationAt(v, h.clock())
}

// Animating reports whether any animation is in flight.
func (h *Host) Animating() bool {
	return len(h.animations) > 0 || len(h.tweens) > 0
}

// TapAt taps the topmost tappable view of parent under p.
func (h *Host) TapAt(parentID string, p geometry.Point) bool {
	views := h.Views(parentID)
	for i := len(views) - 1; i >= 0; i-- {
		v := views[i]
		fn, ok := h.taps[v]
		if !ok {
			continue
		}
		frame, _ := h.Presentation(v)
		if frame.Contains(p) {
			fn()
			return true
		}
	}
	return false
}

// TapTop taps the topmost tappable view of parent.
func (h *Host) TapTop(parentID string) bool {
	views := h.Views(parentID)
	for i := len(views) - 1; i >= 0; i-- {
		if fn, ok := h.taps[views[i]]; ok {
			fn()
			return true
		}
	}
	return false
}

func (h *Host) flush() {
	queue := h.queue
	h.queue = nil
	h.flushing = false
	for _, fn := range queue {
		fn()
	}
}

// step advances animations to the current time, firing completions that
// are due in the order they will end.
func (h *Host) step() {
	now := h.clock()

	for v, t := range h.tweens {
		if !now.Before(t.start.Add(t.duration)) {
			delete(h.tweens, v)
		}
	}

	var due []*animation
	pending := h.animations[:0]
	for _, a := range h.animations {
		if !now.Before(a.end) {
			due = append(due, a)
		} else {
			pending = append(pending, a)
		}
	}
	h.animations = pending

	sort.SliceStable(due, func(i, j int) bool { return due[i].end.Before(due[j].end) })
	for _, a := range due {
		if a.done != nil {
			a.done()
		}
	}

	h.startFrames()
}

func (h *Host) startFrames() {
	if h.ticking || !h.Animating() {
		return
	}
	h.ticking = true
	h.cmds = append(h.cmds, tea.Tick(h.frame, func(time.Time) tea.Msg {
		return frameMsg{}
	}))
}

func (h *Host) presentationAt(v *alertbar.View, now time.Time) (geometry.Rect, float64) {
	t, ok := h.tweens[v]
	if !ok || t.duration <= 0 {
		return v.Frame, v.Opacity
	}

	progress := float64(now.Sub(t.start)) / float64(t.duration)
	if progress >= 1 {
		return v.Frame, v.Opacity
	}
	if progress < 0 {
		progress = 0
	}
	e := easeInOut(progress)

	frame := geometry.Lerp(t.fromFrame, v.Frame, e)
	return frame, t.fromOpacity + (v.Opacity-t.fromOpacity)*e
}

// easeInOut is a cubic ease-in-out curve on [0, 1].
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}
