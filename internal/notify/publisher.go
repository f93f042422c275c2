package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	"github.com/smontiel/thesis-workflow/internal/model"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/notify/mock.go -package=mocks
type notificationQueue interface {
	Publish(ev model.NotificationEvent, strategy retry.Strategy) error
}

type notificationRepo interface {
	CreateNotification(ctx context.Context, ev model.NotificationEvent, status string) error
}

// Publisher performs asynchronous publication: validate, persist the event
// for tracing, enqueue on the durable broker, return immediately. Accepted,
// not delivered.
type Publisher struct {
	queue    notificationQueue
	repo     notificationRepo
	strategy retry.Strategy
	publish  SendFunc
}

func NewPublisher(queue notificationQueue, repo notificationRepo, v *Validator, strategy retry.Strategy) *Publisher {
	p := &Publisher{queue: queue, repo: repo, strategy: strategy}
	p.publish = Chain(p.enqueue, WithLogging(), WithValidation(v))

	return p
}

// Publish runs the pipeline for one event. A nil correlation id gets one
// assigned so every queue hop can be joined for tracing.
func (p *Publisher) Publish(ctx context.Context, ev model.NotificationEvent) error {
	if ev.CorrelationID == uuid.Nil {
		ev.CorrelationID = uuid.New()
	}

	return p.publish(ctx, ev)
}

func (p *Publisher) enqueue(ctx context.Context, ev model.NotificationEvent) error {
	if err := p.repo.CreateNotification(ctx, ev, model.NotificationPending); err != nil {
		return fmt.Errorf("persist notification: %w", err)
	}

	if err := p.queue.Publish(ev, p.strategy); err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}

	return nil
}
