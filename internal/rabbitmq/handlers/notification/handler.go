// Package notification is the consumer side of the delivery pipeline. It
// applies the bounded retry policy: one retry through the delayed queue,
// then the dead-letter queue.
package notification

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/model"
	"github.com/smontiel/thesis-workflow/internal/notify"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks
type deliverer interface {
	Deliver(ctx context.Context, ev model.NotificationEvent) error
}

type requeuer interface {
	PublishRetry(ev model.NotificationEvent, strategy retry.Strategy) error
	PublishDead(ev model.NotificationEvent, strategy retry.Strategy) error
}

type statusRepo interface {
	UpdateNotificationStatus(ctx context.Context, correlationID string, status string) error
}

// Handler processes one consumed notification event.
type Handler struct {
	sender deliverer
	queue  requeuer
	repo   statusRepo
}

func NewHandler(sender deliverer, queue requeuer, repo statusRepo) *Handler {
	return &Handler{sender: sender, queue: queue, repo: repo}
}

// HandleMessage delivers ev and routes failures. Attempt 0 failures take the
// retry queue with the counter bumped to 1; anything already retried goes to
// the DLQ. Validation failures are dropped immediately, never retried.
func (h *Handler) HandleMessage(ctx context.Context, ev model.NotificationEvent, strategy retry.Strategy) {
	logger := zlog.Logger.With().
		Str("correlation_id", ev.CorrelationID.String()).
		Int("attempt", ev.Attempt).
		Logger()

	err := h.sender.Deliver(ctx, ev)
	if err == nil {
		h.setStatus(ctx, ev, model.NotificationDelivered)
		return
	}

	if errors.Is(err, notify.ErrNotificationInvalid) {
		logger.Warn().Err(err).Msg("notification dropped, validation failures are not retried")
		h.setStatus(ctx, ev, model.NotificationDropped)
		return
	}

	if ev.Attempt == 0 {
		ev.Attempt = 1
		if pubErr := h.queue.PublishRetry(ev, strategy); pubErr != nil {
			logger.Error().Err(pubErr).Msg("failed to enqueue retry, dead-lettering instead")
			h.deadLetter(ctx, ev, strategy)
			return
		}

		logger.Info().Err(err).Msg("delivery failed, scheduled one retry")
		return
	}

	logger.Error().Err(err).Msg("delivery failed after retry, dead-lettering")
	h.deadLetter(ctx, ev, strategy)
}

func (h *Handler) deadLetter(ctx context.Context, ev model.NotificationEvent, strategy retry.Strategy) {
	if err := h.queue.PublishDead(ev, strategy); err != nil {
		zlog.Logger.Error().Err(err).
			Str("correlation_id", ev.CorrelationID.String()).
			Msg("failed to publish to dlq")
	}

	h.setStatus(ctx, ev, model.NotificationDead)
}

func (h *Handler) setStatus(ctx context.Context, ev model.NotificationEvent, status string) {
	if err := h.repo.UpdateNotificationStatus(ctx, ev.CorrelationID.String(), status); err != nil {
		zlog.Logger.Error().Err(err).
			Str("correlation_id", ev.CorrelationID.String()).
			Msgf("failed to set status=%s", status)
	}
}
