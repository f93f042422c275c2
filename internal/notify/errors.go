package notify

import "errors"

var (
	// ErrNotificationInvalid marks a notification that failed validation.
	// Invalid notifications are dropped, logged, and never retried.
	ErrNotificationInvalid = errors.New("invalid notification")

	// ErrDeliveryFailure marks a transient delivery error. The consumer
	// retries it exactly once before dead-lettering.
	ErrDeliveryFailure = errors.New("delivery failure")

	// ErrUnknownChannel marks a channel with no configured notifier.
	ErrUnknownChannel = errors.New("unknown channel")
)
