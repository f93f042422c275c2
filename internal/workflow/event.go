package workflow

import (
	"github.com/google/uuid"

	"github.com/smontiel/thesis-workflow/internal/model"
)

// Event is a workflow input applied to a project's state. Every event
// carries an id so replays can be detected and ignored.
type Event interface {
	ID() uuid.UUID
	name() string
}

const (
	eventDocumentSubmitted  = "document_submitted"
	eventEvaluationStarted  = "evaluation_started"
	eventEvaluatorsAssigned = "evaluators_assigned"
	eventReviewDecided      = "review_decided"
	eventStageAdvanced      = "stage_advanced"
)

// DocumentSubmitted carries a new document version for the active stage.
type DocumentSubmitted struct {
	EventID uuid.UUID
	Kind    model.DocumentKind
}

func (e DocumentSubmitted) ID() uuid.UUID { return e.EventID }
func (DocumentSubmitted) name() string    { return eventDocumentSubmitted }

// EvaluationStarted moves a presented document into review.
type EvaluationStarted struct {
	EventID uuid.UUID
}

func (e EvaluationStarted) ID() uuid.UUID { return e.EventID }
func (EvaluationStarted) name() string    { return eventEvaluationStarted }

// EvaluatorsAssigned records that both evaluator slots of the anteproyecto
// review were filled.
type EvaluatorsAssigned struct {
	EventID uuid.UUID
}

func (e EvaluatorsAssigned) ID() uuid.UUID { return e.EventID }
func (EvaluatorsAssigned) name() string    { return eventEvaluatorsAssigned }

// ReviewDecided carries the review verdict for the document under evaluation.
type ReviewDecided struct {
	EventID  uuid.UUID
	Decision model.Decision
}

func (e ReviewDecided) ID() uuid.UUID { return e.EventID }
func (ReviewDecided) name() string    { return eventReviewDecided }

// StageAdvanced moves a project from an accepted stage to the next one.
type StageAdvanced struct {
	EventID uuid.UUID
}

func (e StageAdvanced) ID() uuid.UUID { return e.EventID }
func (StageAdvanced) name() string    { return eventStageAdvanced }
