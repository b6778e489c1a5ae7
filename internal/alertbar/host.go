package alertbar

import (
	"time"

	"github.com/jmylchreest/alertbar/internal/geometry"
)

// Parent is the screen a bar attaches to.
type Parent interface {
	// ID is a stable identity; bars of parents with equal IDs share a stack.
	ID() string
	// Bounds is the parent's content rectangle.
	Bounds() geometry.Rect
	// NavBarHeight is the height of the parent's navigation chrome, 0 if none.
	NavBarHeight() float64
	// Active is false once the parent has gone away.
	Active() bool
}

// View is the visual state of a bar as the core models it. Hosts render it
// and animate their presentation toward it.
type View struct {
	Frame   geometry.Rect
	Opacity float64
	ZIndex  int

	bar *Bar
}

// Bar returns the bar that owns the view.
func (v *View) Bar() *Bar {
	return v.bar
}

// Scheduler runs work on the UI loop.
type Scheduler interface {
	// Post queues fn for the next loop tick, in FIFO order. It never runs fn
	// synchronously.
	Post(fn func())
	// AfterFunc runs fn once on the loop after d. stop cancels a pending call
	// and reports whether it did.
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Animator transitions views between model states.
type Animator interface {
	// Animate captures the presentation of views, calls changes (which sets
	// their new model values) and transitions the presentation to those values
	// over d. done, if not nil, runs on the loop once the transition ends.
	Animate(d time.Duration, views []*View, changes func(), done func())
}

// Hierarchy inserts and removes views and recognizes taps on them.
type Hierarchy interface {
	Insert(parent Parent, v *View)
	Remove(v *View)
	// OnTap registers fn to run when the user taps v. It lasts until v is removed.
	OnTap(v *View, fn func())
}

// Metrics reports platform measurements.
type Metrics interface {
	StatusBarHeight() float64
	MeasureText(text string, bold bool) geometry.Size
}

// Host is everything the core needs from the UI platform.
type Host interface {
	Scheduler
	Animator
	Hierarchy
	Metrics
}
