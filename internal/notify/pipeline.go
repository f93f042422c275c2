// Package notify is the notification delivery pipeline: an ordered list of
// middleware functions composed around a core send operation. Logging is the
// outermost stage and wraps everything; validation runs right before the
// core so invalid events fail fast without any I/O.
package notify

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/model"
)

// SendFunc performs one delivery or enqueue of a notification event.
type SendFunc func(ctx context.Context, ev model.NotificationEvent) error

// Middleware wraps a SendFunc with one cross-cutting stage.
type Middleware func(next SendFunc) SendFunc

// Chain composes the middlewares around core. The first middleware in the
// list becomes the outermost stage.
func Chain(core SendFunc, mw ...Middleware) SendFunc {
	send := core
	for i := len(mw) - 1; i >= 0; i-- {
		send = mw[i](send)
	}

	return send
}

// WithValidation drops invalid events before they reach the next stage.
func WithValidation(v *Validator) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, ev model.NotificationEvent) error {
			if err := v.Validate(ev); err != nil {
				return err
			}

			return next(ctx, ev)
		}
	}
}

// WithLogging logs every attempt and its outcome, including validation
// failures from the inner stages.
func WithLogging() Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, ev model.NotificationEvent) error {
			logger := zlog.Logger.With().
				Str("event_type", string(ev.EventType)).
				Str("channel", string(ev.Channel)).
				Str("correlation_id", ev.CorrelationID.String()).
				Int("attempt", ev.Attempt).
				Logger()

			err := next(ctx, ev)

			switch {
			case err == nil:
				logger.Info().Msg("notification processed")
			case errors.Is(err, ErrNotificationInvalid):
				logger.Warn().Err(err).Msg("notification dropped by validation")
			default:
				logger.Error().Err(err).Msg("notification processing failed")
			}

			return err
		}
	}
}
