package alertbar

import (
	"time"

	"github.com/jmylchreest/alertbar/internal/geometry"
)

// fakeHost is a manual UI loop: posted work runs on tick, timers fire on
// advance, and animations apply their changes at once but only complete
// when finishAnimations is called.
type fakeHost struct {
	statusBar float64

	posted     []func()
	now        time.Duration
	timers     []*fakeTimer
	animations []fakeAnimation

	inserted map[*View]Parent
	taps     map[*View]func()
	removed  []*View
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

type fakeAnimation struct {
	d     time.Duration
	views []*View
	done  func()
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		statusBar: 20,
		inserted:  make(map[*View]Parent),
		taps:      make(map[*View]func()),
	}
}

func (h *fakeHost) Post(fn func()) {
	h.posted = append(h.posted, fn)
}

func (h *fakeHost) AfterFunc(d time.Duration, fn func()) func() bool {
	t := &fakeTimer{at: h.now + d, fn: fn}
	h.timers = append(h.timers, t)
	return func() bool {
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		return true
	}
}

func (h *fakeHost) Animate(d time.Duration, views []*View, changes func(), done func()) {
	changes()
	h.animations = append(h.animations, fakeAnimation{d: d, views: views, done: done})
}

func (h *fakeHost) Insert(parent Parent, v *View) {
	h.inserted[v] = parent
}

func (h *fakeHost) Remove(v *View) {
	delete(h.inserted, v)
	delete(h.taps, v)
	h.removed = append(h.removed, v)
}

func (h *fakeHost) OnTap(v *View, fn func()) {
	h.taps[v] = fn
}

func (h *fakeHost) StatusBarHeight() float64 {
	return h.statusBar
}

func (h *fakeHost) MeasureText(text string, bold bool) geometry.Size {
	return geometry.Size{W: float64(len(text)) * 8, H: 20}
}

// tick runs the work posted so far. Work posted while running waits for
// the next tick.
func (h *fakeHost) tick() {
	fns := h.posted
	h.posted = nil
	for _, fn := range fns {
		fn()
	}
}

// finishAnimations completes every in-flight animation, including ones
// started by completion handlers.
func (h *fakeHost) finishAnimations() {
	for len(h.animations) > 0 {
		anims := h.animations
		h.animations = nil
		for _, a := range anims {
			if a.done != nil {
				a.done()
			}
		}
	}
}

// settle drains posted work and animations until nothing is in flight.
func (h *fakeHost) settle() {
	for len(h.posted) > 0 || len(h.animations) > 0 {
		h.tick()
		h.finishAnimations()
	}
}

// advance moves the clock and fires due timers in order.
func (h *fakeHost) advance(d time.Duration) {
	h.now += d
	for _, t := range h.timers {
		if t.stopped || t.fired || t.at > h.now {
			continue
		}
		t.fired = true
		t.fn()
	}
}

func (h *fakeHost) tap(v *View) bool {
	fn, ok := h.taps[v]
	if ok {
		fn()
	}
	return ok
}

type fakeParent struct {
	id     string
	bounds geometry.Rect
	nav    float64
	active bool
}

func newFakeParent(id string) *fakeParent {
	return &fakeParent{
		id:     id,
		bounds: geometry.Rect{W: 320, H: 480},
		active: true,
	}
}

func (p *fakeParent) ID() string { return p.id }
func (p *fakeParent) Bounds() geometry.Rect { return p.bounds }
func (p *fakeParent) NavBarHeight() float64 { return p.nav }
func (p *fakeParent) Active() bool { return p.active }
