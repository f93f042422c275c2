// Package worker drives consumption of the notification queue with a small
// pool of goroutines. Events may be processed out of submission order; no
// ordering is guaranteed between distinct correlation ids.
package worker

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/model"
)

//go:generate mockgen -source=consumer.go -destination=../mocks/worker/mock.go -package=mocks
type notificationConsumer interface {
	Consume(ctx context.Context, out chan<- model.NotificationEvent, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, ev model.NotificationEvent, strategy retry.Strategy)
}

// Consumer fans consumed events out to a fixed pool of handler goroutines.
type Consumer struct {
	queue   notificationConsumer
	handler messageHandler
}

func NewConsumer(queue notificationConsumer, handler messageHandler) *Consumer {
	return &Consumer{queue: queue, handler: handler}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	events := make(chan model.NotificationEvent)

	go func() {
		if err := c.queue.Consume(ctx, events, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume notifications")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Info().Msgf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Info().Msgf("worker-%d shutting down", id)
					return
				case ev := <-events:
					c.handler.HandleMessage(ctx, ev, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Info().Msg("notification consumer stopped")
}
