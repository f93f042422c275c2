package notify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/smontiel/thesis-workflow/internal/model"
)

func validEvent() model.NotificationEvent {
	return model.NotificationEvent{
		EventType: model.EventStatusChanged,
		Channel:   model.ChannelEmail,
		Recipients: []model.Recipient{
			{Address: "student@unicauca.edu.co", Role: "student"},
		},
		BusinessContext: map[string]string{
			"projectTitle":   "Adaptive scheduling",
			"currentStatus":  "FORMATO_A_EN_EVALUACION",
			"previousStatus": "FORMATO_A_PRESENTADO",
			"changeDate":     "2025-05-02",
		},
		CorrelationID: uuid.New(),
	}
}

func TestValidator_AcceptsValidEvent(t *testing.T) {
	assert.NoError(t, NewValidator().Validate(validEvent()))
}

func TestValidator_RejectionTable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ev *model.NotificationEvent)
	}{
		{"unset type", func(ev *model.NotificationEvent) { ev.EventType = "" }},
		{"unknown type", func(ev *model.NotificationEvent) { ev.EventType = "coffee-break" }},
		{"unsupported channel", func(ev *model.NotificationEvent) { ev.Channel = "carrier-pigeon" }},
		{"empty recipients", func(ev *model.NotificationEvent) { ev.Recipients = nil }},
		{"malformed email address", func(ev *model.NotificationEvent) {
			ev.Recipients = []model.Recipient{{Address: "not-an-email", Role: "student"}}
		}},
		{"malformed sms address", func(ev *model.NotificationEvent) {
			ev.Channel = model.ChannelSMS
			ev.Recipients = []model.Recipient{{Address: "call me", Role: "student"}}
		}},
		{"missing context key", func(ev *model.NotificationEvent) {
			delete(ev.BusinessContext, "previousStatus")
		}},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := validEvent()
			tt.mutate(&ev)
			assert.ErrorIs(t, v.Validate(ev), ErrNotificationInvalid)
		})
	}
}

func TestValidator_RequiredKeysPerType(t *testing.T) {
	tests := []struct {
		eventType model.EventType
		context   map[string]string
	}{
		{model.EventDocumentSubmitted, map[string]string{
			"projectTitle": "t", "documentType": "FORMATO_A", "submittedBy": "s",
			"submissionDate": "2025-05-02", "documentVersion": "1",
		}},
		{model.EventEvaluationCompleted, map[string]string{
			"projectTitle": "t", "documentType": "ANTEPROYECTO", "evaluationResult": "rejected",
			"evaluatedBy": "e", "evaluationDate": "2025-05-02",
		}},
		{model.EventEvaluatorAssigned, map[string]string{
			"projectTitle": "t", "documentType": "ANTEPROYECTO", "directorName": "d", "dueDate": "2025-06-01",
		}},
		{model.EventDeadlineReminder, map[string]string{
			"projectTitle": "t", "pendingActivity": "submit corrections", "dueDate": "2025-06-01", "daysRemaining": "3",
		}},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			ev := validEvent()
			ev.EventType = tt.eventType
			ev.BusinessContext = tt.context
			assert.NoError(t, v.Validate(ev))

			for key := range tt.context {
				broken := validEvent()
				broken.EventType = tt.eventType
				broken.BusinessContext = map[string]string{}
				for k, val := range tt.context {
					if k != key {
						broken.BusinessContext[k] = val
					}
				}
				assert.ErrorIs(t, v.Validate(broken), ErrNotificationInvalid, "missing %s", key)
			}
		})
	}
}

func TestValidator_IsSideEffectFree(t *testing.T) {
	v := NewValidator()
	ev := validEvent()

	before := len(ev.BusinessContext)
	_ = v.Validate(ev)
	_ = v.Validate(ev)

	assert.Len(t, ev.BusinessContext, before)
	assert.Equal(t, 0, ev.Attempt)
}
