package notify

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/smontiel/thesis-workflow/internal/model"
)

// Notifier delivers one rendered message over a single channel.
type Notifier interface {
	Send(to, subject, body string) error
}

// Sender performs synchronous delivery: validate, deliver inline, return
// the outcome to the caller. No automatic retry here; bounded retry lives
// on the consumer side of the queues.
type Sender struct {
	notifiers map[model.Channel]Notifier
	send      SendFunc
}

func NewSender(notifiers map[model.Channel]Notifier, v *Validator) *Sender {
	s := &Sender{notifiers: notifiers}
	s.send = Chain(s.deliver, WithLogging(), WithValidation(v))

	return s
}

// Deliver runs the full pipeline for one event.
func (s *Sender) Deliver(ctx context.Context, ev model.NotificationEvent) error {
	return s.send(ctx, ev)
}

func (s *Sender) deliver(_ context.Context, ev model.NotificationEvent) error {
	notifier, ok := s.notifiers[ev.Channel]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, ev.Channel)
	}

	subject := Subject(ev.EventType)
	body := RenderBody(ev)

	for _, r := range ev.Recipients {
		if err := notifier.Send(r.Address, subject, body); err != nil {
			return fmt.Errorf("%w: %s to %s: %v", ErrDeliveryFailure, ev.Channel, r.Address, err)
		}
	}

	return nil
}

var subjects = map[model.EventType]string{
	model.EventDocumentSubmitted:   "Document submitted",
	model.EventEvaluationCompleted: "Evaluation completed",
	model.EventStatusChanged:       "Project status changed",
	model.EventEvaluatorAssigned:   "Evaluator assigned",
	model.EventDeadlineReminder:    "Deadline reminder",
}

// Subject returns the human-readable subject line for an event type.
func Subject(t model.EventType) string {
	if s, ok := subjects[t]; ok {
		return s
	}

	return string(t)
}

// RenderBody flattens the business context into a plain-text body with
// stable key order.
func RenderBody(ev model.NotificationEvent) string {
	keys := make([]string, 0, len(ev.BusinessContext))
	for k := range ev.BusinessContext {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, ev.BusinessContext[k])
	}

	return b.String()
}
