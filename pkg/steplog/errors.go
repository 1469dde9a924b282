package steplog

import "errors"

// ErrNotStarted is matched by every error returned for ending a timer
// that has no active start.
var ErrNotStarted = errors.New("timer not started")

// NotStartedError reports an end on a name with no active timer.
type NotStartedError struct {
	Name string
}

func (e *NotStartedError) Error() string {
	// name is quoted verbatim, no escaping
	return `Sorry, "` + e.Name + `" was not started.`
}

func (e *NotStartedError) Is(target error) bool { return target == ErrNotStarted }
