package alertbar

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/alertbar/internal/geometry"
)

// ZBaseline is the z-index of an empty stack. Each bar gets the baseline
// minus the stack depth at the time it is inserted, so newer bars slide out
// from beneath older ones.
const ZBaseline = 100

// Manager tracks the bars attached to each parent.
// It is not safe for concurrent use; call it from the host's UI loop.
type Manager struct {
	host   Host
	logger *slog.Logger

	// stacks holds each parent's bars in insertion order. Empty stacks are
	// deleted immediately.
	stacks map[string][]*Bar
}

// NewManager creates a new manager bound to host.
func NewManager(host Host, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		host:   host,
		logger: logger,
		stacks: make(map[string][]*Bar),
	}
}

// Attach creates a bar on parent and returns it immediately. The bar joins
// the parent's stack now and is presented on the next loop tick.
// A nil opts uses DefaultOptions.
func (m *Manager) Attach(parent Parent, content Content, opts *Options) (*Bar, error) {
	if parent == nil {
		return nil, &PreconditionError{Op: "attach", Err: ErrNilParent}
	}
	if !parent.Active() {
		return nil, &PreconditionError{Op: "attach", Err: ErrParentGone}
	}
	if content.Title == "" {
		return nil, &PreconditionError{Op: "attach", Err: ErrEmptyTitle}
	}

	snapshot := DefaultOptions()
	if opts != nil {
		snapshot = opts.Clone()
	}
	if err := snapshot.Validate(); err != nil {
		return nil, &PreconditionError{Op: "attach", Err: err}
	}
	img, err := snapshot.Icon()
	if err != nil {
		return nil, &PreconditionError{Op: "attach", Err: err}
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}

	bounds := parent.Bounds()
	base := geometry.BaseOffset(bounds.Y, m.host.StatusBarHeight(), parent.NavBarHeight())
	height := snapshot.Size.Height()
	width := geometry.BarWidth(snapshot.Size.Width, bounds)

	opacity := 1.0
	if snapshot.Animation.Fade {
		opacity = 0
	}

	bar := &Bar{
		id:      id.String(),
		manager: m,
		parent:  parent,
		content: content,
		opts:    snapshot,
		icon:    img,
		state:   StatePending,
		base:    base,
	}
	bar.view = &View{
		Frame:   geometry.StartFrame(bounds.X, base, width, height),
		Opacity: opacity,
		bar:     bar,
	}

	var bodySize geometry.Size
	if content.HasBody() {
		bodySize = m.host.MeasureText(content.Body, false)
	}
	bar.layout = geometry.LayoutContent(
		bar.view.Frame.Size(),
		snapshot.Size.Padding,
		!img.IsZero(),
		m.host.MeasureText(content.Title, true),
		bodySize,
		content.HasBody(),
	)

	key := parent.ID()
	m.stacks[key] = append(m.stacks[key], bar)

	m.logger.Debug("attached bar",
		"bar_id", bar.id,
		"parent", key,
		"stack_size", len(m.stacks[key]),
	)

	m.host.Post(bar.present)

	return bar, nil
}

// DetachAll removes every bar currently attached to parent. None of the
// removals count as user initiated.
func (m *Manager) DetachAll(parent Parent) error {
	if parent == nil {
		return &PreconditionError{Op: "detach all", Err: ErrNilParent}
	}

	bars := m.Bars(parent)
	for _, bar := range bars {
		m.Remove(bar, false)
	}

	if len(bars) > 0 {
		m.logger.Debug("detached all bars", "parent", parent.ID(), "count", len(bars))
	}
	return nil
}

// Remove takes bar out of its parent's stack, slides the bars below it up
// by its height and animates it off the top edge. Removing a nil bar or one
// that is already leaving is a no-op.
func (m *Manager) Remove(bar *Bar, userInitiated bool) {
	if bar == nil || bar.state.Leaving() {
		return
	}

	bar.state = StateDismissing
	bar.disarm()

	key := bar.parent.ID()
	stack := m.stacks[key]
	var followers []*Bar
	if index := indexOf(stack, bar); index >= 0 {
		followers = append(followers, stack[index+1:]...)

		remaining := make([]*Bar, 0, len(stack)-1)
		remaining = append(remaining, stack[:index]...)
		remaining = append(remaining, followers...)
		if len(remaining) == 0 {
			delete(m.stacks, key)
		} else {
			m.stacks[key] = remaining
		}
	}

	m.logger.Debug("removing bar",
		"bar_id", bar.id,
		"parent", key,
		"user_initiated", userInitiated,
		"followers", len(followers),
	)

	height := bar.Height()
	m.reflow(bar, followers, height)

	bar.animate([]*View{bar.view}, func() {
		bar.view.Frame.Y -= height
		if bar.opts.Animation.Fade {
			bar.view.Opacity = 0
		}
	}, func() {
		bar.finish(userInitiated)
	})
}

// reflow slides bars that followed a removed bar up by its height. Bars
// still pending have no slot yet; they compute theirs when presented.
func (m *Manager) reflow(removed *Bar, followers []*Bar, height float64) {
	var shifted []*Bar
	for _, f := range followers {
		if f.state != StatePending {
			shifted = append(shifted, f)
		}
	}
	if len(shifted) == 0 {
		return
	}

	views := make([]*View, len(shifted))
	for i, f := range shifted {
		views[i] = f.view
	}

	removed.animate(views, func() {
		for _, f := range shifted {
			f.view.Frame.Y -= height
		}
	}, nil)
}

// Bars returns a copy of parent's stack, oldest first.
func (m *Manager) Bars(parent Parent) []*Bar {
	if parent == nil {
		return nil
	}
	stack := m.stacks[parent.ID()]
	if len(stack) == 0 {
		return nil
	}
	out := make([]*Bar, len(stack))
	copy(out, stack)
	return out
}

// Len returns the number of bars in parent's stack.
func (m *Manager) Len(parent Parent) int {
	if parent == nil {
		return 0
	}
	return len(m.stacks[parent.ID()])
}

// Parents returns the IDs of parents that have bars, sorted.
func (m *Manager) Parents() []string {
	ids := make([]string, 0, len(m.stacks))
	for id := range m.stacks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
