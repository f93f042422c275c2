// Package queue declares the notification broker topology. Three queues
// share one direct exchange and one correlation id per message:
//
//	notifications.q        main delivery queue
//	notifications.retry.q  5s TTL, dead-letters back to notifications.q
//	notifications.dlq      exhausted retries, operator territory
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/model"
)

const (
	ExchangeName  = "notifications-exchange"
	MainQueueName = "notifications.q"
	RetryQueue    = "notifications.retry.q"
	DLQName       = "notifications.dlq"

	MainRoutingKey  = "notifications"
	RetryRoutingKey = "notifications.retry"
	DLQRoutingKey   = "notifications.dlq"

	// RetryDelayMS is the fixed delay before a retried message re-enters
	// the main queue.
	RetryDelayMS = 5000
)

// NotificationQueue owns the declared topology and the publish/consume
// endpoints over it.
type NotificationQueue struct {
	publisher *rabbitmq.Publisher
	consumer  *rabbitmq.Consumer
}

func New(ch *rabbitmq.Channel) (*NotificationQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("bind exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	dlq, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("declare dlq: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             int32(RetryDelayMS),
	}

	retryQ, err := qm.DeclareQueue(RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("declare retry queue: %w", err)
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, MainRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("bind main queue: %w", err)
	}

	if err := ch.QueueBind(retryQ.Name, RetryRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("bind retry queue: %w", err)
	}

	if err := ch.QueueBind(dlq.Name, DLQRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("bind dlq: %w", err)
	}

	return &NotificationQueue{
		publisher: rabbitmq.NewPublisher(ch, exchange.Name()),
		consumer:  rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name)),
	}, nil
}

// Publish enqueues ev on the main queue.
func (q *NotificationQueue) Publish(ev model.NotificationEvent, strategy retry.Strategy) error {
	return q.publish(ev, MainRoutingKey, strategy)
}

// PublishRetry parks ev on the retry queue; the broker moves it back to the
// main queue after the fixed delay.
func (q *NotificationQueue) PublishRetry(ev model.NotificationEvent, strategy retry.Strategy) error {
	return q.publish(ev, RetryRoutingKey, strategy)
}

// PublishDead routes ev to the dead-letter queue.
func (q *NotificationQueue) PublishDead(ev model.NotificationEvent, strategy retry.Strategy) error {
	return q.publish(ev, DLQRoutingKey, strategy)
}

func (q *NotificationQueue) publish(ev model.NotificationEvent, routingKey string, strategy retry.Strategy) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	opts := rabbitmq.PublishingOptions{Headers: Headers(ev)}

	if err := q.publisher.PublishWithRetry(body, routingKey, "application/json", strategy, opts); err != nil {
		return fmt.Errorf("publish to %s: %w", routingKey, err)
	}

	return nil
}

// Headers builds the AMQP headers carried by every published message. The
// retry counter and correlation id travel both here and in the body so
// broker-side tooling can filter without decoding the payload.
func Headers(ev model.NotificationEvent) amqp091.Table {
	return amqp091.Table{
		"x-retries":        int32(ev.Attempt),
		"X-Correlation-Id": ev.CorrelationID.String(),
	}
}

// Consume decodes messages from the main queue onto out until the consumer
// stops. Undecodable payloads are logged and skipped.
func (q *NotificationQueue) Consume(ctx context.Context, out chan<- model.NotificationEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var ev model.NotificationEvent
			if err := json.Unmarshal(m, &ev); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal notification event")
				continue
			}

			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return q.consumer.ConsumeWithRetry(msgChan, strategy)
}
