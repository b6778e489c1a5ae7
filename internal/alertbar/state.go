package alertbar

// State is a bar's position in its lifecycle.
type State int

const (
	// StatePending means the bar is constructed but not yet in the hierarchy.
	StatePending State = iota
	// StatePresenting means the bar is animating in.
	StatePresenting
	// StateVisible means the bar is resting, with its timer armed if configured.
	StateVisible
	// StateDismissing means the bar is animating out.
	StateDismissing
	// StateRemoved means the bar is detached from the hierarchy and registry.
	StateRemoved
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StatePresenting:
		return "presenting"
	case StateVisible:
		return "visible"
	case StateDismissing:
		return "dismissing"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Leaving reports whether the bar is on its way out or gone.
func (s State) Leaving() bool {
	return s == StateDismissing || s == StateRemoved
}
