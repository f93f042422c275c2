package workflow

import "errors"

var (
	// ErrIllegalTransition is returned when an event is not valid from the
	// project's current state. Reported to the caller, never retried.
	ErrIllegalTransition = errors.New("illegal transition")

	// ErrAttemptLimitExceeded is returned when a submission would exceed
	// the attempt ceiling. Terminal: the project is cancelled.
	ErrAttemptLimitExceeded = errors.New("attempt limit exceeded")
)
