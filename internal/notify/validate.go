package notify

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/smontiel/thesis-workflow/internal/model"
)

// requiredContext is the fixed per-type lookup table of business-context
// keys a notification must carry.
var requiredContext = map[model.EventType][]string{
	model.EventDocumentSubmitted:   {"projectTitle", "documentType", "submittedBy", "submissionDate", "documentVersion"},
	model.EventEvaluationCompleted: {"projectTitle", "documentType", "evaluationResult", "evaluatedBy", "evaluationDate"},
	model.EventStatusChanged:       {"projectTitle", "currentStatus", "previousStatus", "changeDate"},
	model.EventEvaluatorAssigned:   {"projectTitle", "documentType", "directorName", "dueDate"},
	model.EventDeadlineReminder:    {"projectTitle", "pendingActivity", "dueDate", "daysRemaining"},
}

// addressRule maps each supported channel to the validator tag checking its
// recipient address format.
var addressRule = map[model.Channel]string{
	model.ChannelEmail: "email",
	model.ChannelSMS:   "e164",
}

// Validator checks notification events before any I/O happens. It is
// deterministic and side-effect-free.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate returns an error wrapping ErrNotificationInvalid when ev must be
// dropped. Order of checks: type, channel, recipients, addresses, context.
func (v *Validator) Validate(ev model.NotificationEvent) error {
	required, ok := requiredContext[ev.EventType]
	if !ok {
		return fmt.Errorf("%w: unknown event type %q", ErrNotificationInvalid, ev.EventType)
	}

	rule, ok := addressRule[ev.Channel]
	if !ok {
		return fmt.Errorf("%w: unsupported channel %q", ErrNotificationInvalid, ev.Channel)
	}

	if len(ev.Recipients) == 0 {
		return fmt.Errorf("%w: no recipients", ErrNotificationInvalid)
	}

	for _, r := range ev.Recipients {
		if err := v.validate.Var(r.Address, rule); err != nil {
			return fmt.Errorf("%w: address %q is not a valid %s recipient", ErrNotificationInvalid, r.Address, ev.Channel)
		}
	}

	for _, key := range required {
		if _, ok := ev.BusinessContext[key]; !ok {
			return fmt.Errorf("%w: missing context key %q for %s", ErrNotificationInvalid, key, ev.EventType)
		}
	}

	return nil
}
