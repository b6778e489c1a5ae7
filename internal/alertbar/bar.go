package alertbar

import (
	"github.com/jmylchreest/alertbar/internal/geometry"
	"github.com/jmylchreest/alertbar/internal/icon"
)

// Content is the text shown on a bar. An empty Body means the bar has a
// title only.
type Content struct {
	Title string
	Body  string
}

// HasBody reports whether the content has body text.
func (c Content) HasBody() bool {
	return c.Body != ""
}

// Bar is one visible notification. It is created by Manager.Attach and
// drives itself from Pending to Removed.
type Bar struct {
	id      string
	manager *Manager
	parent  Parent
	content Content
	opts    Options
	icon    icon.Icon
	layout  geometry.ContentLayout
	view    *View
	state   State

	// base is the y of the first slot in the parent's stack.
	base float64
	// inserted is true while the view is in the host hierarchy.
	inserted bool
	// stopTimer cancels the auto-dismiss timer, nil when none is armed.
	stopTimer func() bool
}

// ID returns the bar's unique id.
func (b *Bar) ID() string { return b.id }

// Parent returns the screen the bar is attached to.
func (b *Bar) Parent() Parent { return b.parent }

// State returns the bar's lifecycle state.
func (b *Bar) State() State { return b.state }

// Content returns the bar's title and body.
func (b *Bar) Content() Content { return b.content }

// Options returns a copy of the options snapshot the bar was created with.
func (b *Bar) Options() Options { return b.opts.Clone() }

// Icon returns the bar's image, the zero Icon when it has none.
func (b *Bar) Icon() icon.Icon { return b.icon }

// Layout returns the content layout relative to the bar's origin.
func (b *Bar) Layout() geometry.ContentLayout { return b.layout }

// View returns the bar's view.
func (b *Bar) View() *View { return b.view }

// Frame returns the bar's model frame: its settled position once all
// running animations finish.
func (b *Bar) Frame() geometry.Rect { return b.view.Frame }

// Height returns the bar's full height.
func (b *Bar) Height() float64 { return b.view.Frame.H }

// Opacity returns the bar's model opacity.
func (b *Bar) Opacity() float64 { return b.view.Opacity }

// ZIndex returns the bar's stacking order among views; higher draws on top.
func (b *Bar) ZIndex() int { return b.view.ZIndex }

// Dismiss removes the bar from its parent. It is a no-op when the bar is
// already leaving.
func (b *Bar) Dismiss(userInitiated bool) {
	b.manager.Remove(b, userInitiated)
}

// Tap handles a user tap on the bar. OnTap always fires; the bar is
// dismissed only with TapToDismiss.
func (b *Bar) Tap() {
	if cb := b.opts.Callbacks.OnTap; cb != nil {
		cb(b)
	}
	if b.opts.TapToDismiss {
		b.Dismiss(true)
	}
}

// present moves a pending bar into the hierarchy and slides it to its slot.
func (b *Bar) present() {
	if b.state != StatePending {
		return
	}

	stack := b.manager.stacks[b.parent.ID()]
	index := indexOf(stack, b)
	if index < 0 {
		return
	}

	heights := make([]float64, 0, index)
	for _, other := range stack[:index] {
		heights = append(heights, other.Height())
	}
	target := geometry.RestingOffset(b.base, heights...)

	b.state = StatePresenting
	b.view.ZIndex = ZBaseline - (index + 1)
	b.manager.host.Insert(b.parent, b.view)
	b.inserted = true

	b.manager.logger.Debug("presenting bar",
		"bar_id", b.id,
		"parent", b.parent.ID(),
		"index", index,
		"offset", target,
	)

	b.animate([]*View{b.view}, func() {
		b.view.Frame.Y = target
		if b.opts.Animation.Fade {
			b.view.Opacity = 1
		}
	}, b.presented)
}

// presented finishes presentation: callback, tap recognizer, timer.
func (b *Bar) presented() {
	if b.state != StatePresenting {
		return
	}
	b.state = StateVisible

	if cb := b.opts.Callbacks.OnPresented; cb != nil {
		cb(b)
	}
	// The callback may have dismissed the bar.
	if b.state != StateVisible {
		return
	}

	b.manager.host.OnTap(b.view, b.Tap)

	if d := b.opts.DismissAfter.Duration(); d > 0 {
		b.stopTimer = b.manager.host.AfterFunc(d, func() {
			b.stopTimer = nil
			b.Dismiss(false)
		})
	}

	b.manager.logger.Debug("bar visible",
		"bar_id", b.id,
		"dismiss_after", b.opts.DismissAfter.Duration(),
	)
}

// finish completes removal once the exit animation ends.
func (b *Bar) finish(userInitiated bool) {
	b.state = StateRemoved

	if cb := b.opts.Callbacks.OnDismissed; cb != nil {
		cb(b, userInitiated)
	}

	if b.inserted {
		b.manager.host.Remove(b.view)
		b.inserted = false
	}

	b.manager.logger.Debug("bar removed",
		"bar_id", b.id,
		"user_initiated", userInitiated,
	)
}

// disarm cancels the auto-dismiss timer if one is pending.
func (b *Bar) disarm() {
	if b.stopTimer != nil {
		b.stopTimer()
		b.stopTimer = nil
	}
}

// animate runs changes through the host animator, or applies them at once
// when animation is disabled. Callbacks fire in the same order either way.
func (b *Bar) animate(views []*View, changes func(), done func()) {
	if !b.opts.Animation.Enabled {
		changes()
		if done != nil {
			done()
		}
		return
	}
	b.manager.host.Animate(b.opts.Animation.Duration.Duration(), views, changes, done)
}

func indexOf(stack []*Bar, b *Bar) int {
	for i, other := range stack {
		if other == b {
			return i
		}
	}
	return -1
}
