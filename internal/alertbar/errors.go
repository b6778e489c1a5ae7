package alertbar

import "errors"

// Precondition failures.
var (
	ErrNilParent  = errors.New("parent is nil")
	ErrParentGone = errors.New("parent is no longer active")
	ErrEmptyTitle = errors.New("title cannot be empty")
)

// PreconditionError reports a call made with arguments the manager cannot
// act on. It is returned synchronously; no bar state changes.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return "alertbar: " + e.Op + ": " + e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// IsPrecondition reports whether err is a precondition violation.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}
