// Package adapter translates internal domain events into outbound
// notification requests and the cross-service status-change call. It is the
// only producer of NotificationEvent values.
package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/eventbus"
	"github.com/smontiel/thesis-workflow/internal/model"
)

//go:generate mockgen -source=adapter.go -destination=../mocks/adapter/mock.go -package=mocks
type notificationPublisher interface {
	Publish(ctx context.Context, ev model.NotificationEvent) error
}

type statusSetter interface {
	SetProjectState(ctx context.Context, projectID uuid.UUID, newState model.ProjectState, reason string, completionID, correlationID uuid.UUID) error
}

// Adapter subscribes to the domain event bus and fans events out to the
// notification pipeline and the downstream project store.
type Adapter struct {
	publisher notificationPublisher
	status    statusSetter
}

func New(publisher notificationPublisher, status statusSetter) *Adapter {
	return &Adapter{publisher: publisher, status: status}
}

// Register wires the adapter's handlers onto the bus. Called once during
// startup, before any event is published.
func (a *Adapter) Register(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.NameProjectStatusChanged, a.onStatusChanged)
	bus.Subscribe(eventbus.NameDocumentSubmitted, a.onDocumentSubmitted)
	bus.Subscribe(eventbus.NameEvaluatorsAssigned, a.onEvaluatorsAssigned)
	bus.Subscribe(eventbus.NameConsensusCompleted, a.onConsensusCompleted)
	bus.Subscribe(eventbus.NameProjectCancelled, a.onProjectCancelled)
}

func (a *Adapter) onStatusChanged(ctx context.Context, ev eventbus.Event) {
	e, ok := ev.(eventbus.ProjectStatusChanged)
	if !ok {
		return
	}

	a.publish(ctx, model.NotificationEvent{
		EventType:  model.EventStatusChanged,
		Channel:    model.ChannelEmail,
		Recipients: e.Recipients,
		BusinessContext: map[string]string{
			"projectTitle":   e.Title,
			"currentStatus":  string(e.To),
			"previousStatus": string(e.From),
			"changeDate":     e.ChangedAt.Format(time.RFC3339),
		},
		CorrelationID: e.CorrelationID,
	})
}

func (a *Adapter) onDocumentSubmitted(ctx context.Context, ev eventbus.Event) {
	e, ok := ev.(eventbus.DocumentSubmitted)
	if !ok {
		return
	}

	a.publish(ctx, model.NotificationEvent{
		EventType:  model.EventDocumentSubmitted,
		Channel:    model.ChannelEmail,
		Recipients: e.Recipients,
		BusinessContext: map[string]string{
			"projectTitle":    e.Title,
			"documentType":    string(e.Kind),
			"submittedBy":     e.SubmittedBy,
			"submissionDate":  e.SubmittedAt.Format(time.RFC3339),
			"documentVersion": strconv.Itoa(e.Attempt),
		},
		CorrelationID: e.CorrelationID,
	})
}

func (a *Adapter) onEvaluatorsAssigned(ctx context.Context, ev eventbus.Event) {
	e, ok := ev.(eventbus.EvaluatorsAssigned)
	if !ok {
		return
	}

	a.publish(ctx, model.NotificationEvent{
		EventType:  model.EventEvaluatorAssigned,
		Channel:    model.ChannelEmail,
		Recipients: e.Recipients,
		BusinessContext: map[string]string{
			"projectTitle": e.Title,
			"documentType": string(e.Kind),
			"directorName": e.DirectorName,
			"dueDate":      e.DueDate.Format(time.RFC3339),
		},
		CorrelationID: e.CorrelationID,
	})
}

// onConsensusCompleted fires the two obligations of a completed consensus:
// exactly one status-change call and exactly one notification event, both
// keyed by the completion id. A failed call is logged and surfaced through
// the bus publisher's caller retrying with the same completion id.
func (a *Adapter) onConsensusCompleted(ctx context.Context, ev eventbus.Event) {
	e, ok := ev.(eventbus.ConsensusCompleted)
	if !ok {
		return
	}

	newState, reason := verdictState(e.Kind, e.Verdict)

	if err := a.status.SetProjectState(ctx, e.ProjectID, newState, reason, e.CompletionID, e.CorrelationID); err != nil {
		zlog.Logger.Error().Err(err).
			Str("project_id", e.ProjectID.String()).
			Str("completion_id", e.CompletionID.String()).
			Msg("status-change call failed, retry with the same completion id")
	}

	a.publish(ctx, model.NotificationEvent{
		EventType:  model.EventEvaluationCompleted,
		Channel:    model.ChannelEmail,
		Recipients: e.Recipients,
		BusinessContext: map[string]string{
			"projectTitle":     e.Title,
			"documentType":     string(e.Kind),
			"evaluationResult": string(e.Verdict),
			"evaluatedBy":      e.EvaluatedBy,
			"evaluationDate":   e.CompletedAt.Format(time.RFC3339),
		},
		CorrelationID: e.CorrelationID,
	})
}

func (a *Adapter) onProjectCancelled(ctx context.Context, ev eventbus.Event) {
	e, ok := ev.(eventbus.ProjectCancelled)
	if !ok {
		return
	}

	// Terminal cancellation needs operator visibility, not user email.
	zlog.Logger.Warn().
		Str("project_id", e.ProjectID.String()).
		Str("reason", e.Reason).
		Msg("project cancelled")
}

// PublishDeadlineReminder builds and publishes a deadline-reminder event.
func (a *Adapter) PublishDeadlineReminder(ctx context.Context, title, pendingActivity string, dueDate time.Time, recipients []model.Recipient) error {
	daysRemaining := int(time.Until(dueDate).Hours() / 24)

	ev := model.NotificationEvent{
		EventType:  model.EventDeadlineReminder,
		Channel:    model.ChannelEmail,
		Recipients: recipients,
		BusinessContext: map[string]string{
			"projectTitle":    title,
			"pendingActivity": pendingActivity,
			"dueDate":         dueDate.Format(time.RFC3339),
			"daysRemaining":   strconv.Itoa(daysRemaining),
		},
		CorrelationID: uuid.New(),
	}

	if err := a.publisher.Publish(ctx, ev); err != nil {
		return fmt.Errorf("publish deadline reminder: %w", err)
	}

	return nil
}

func (a *Adapter) publish(ctx context.Context, ev model.NotificationEvent) {
	if err := a.publisher.Publish(ctx, ev); err != nil {
		zlog.Logger.Error().Err(err).
			Str("event_type", string(ev.EventType)).
			Str("correlation_id", ev.CorrelationID.String()).
			Msg("failed to publish notification")
	}
}

// verdictState maps a consensus verdict onto the project state the owning
// service should move to.
func verdictState(kind model.DocumentKind, verdict model.Decision) (model.ProjectState, string) {
	approved := verdict == model.DecisionApprove

	if kind == model.DocumentFormatoA {
		if approved {
			return model.StateFormatoAAceptado, "formato A approved by consensus"
		}
		return model.StateFormatoARechazado, "formato A rejected by consensus"
	}

	if approved {
		return model.StateAnteproyectoAceptado, "anteproyecto approved by consensus"
	}
	return model.StateAnteproyectoRechazado, "anteproyecto rejected by consensus"
}
