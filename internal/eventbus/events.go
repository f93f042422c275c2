package eventbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/smontiel/thesis-workflow/internal/model"
)

// Event names used for subscription.
const (
	NameProjectStatusChanged = "project.status_changed"
	NameDocumentSubmitted    = "project.document_submitted"
	NameProjectCancelled     = "project.cancelled"
	NameEvaluatorsAssigned   = "review.evaluators_assigned"
	NameConsensusCompleted   = "review.consensus_completed"
)

// ProjectStatusChanged is emitted on every project state transition.
type ProjectStatusChanged struct {
	ProjectID     uuid.UUID
	Title         string
	From          model.ProjectState
	To            model.ProjectState
	Recipients    []model.Recipient
	CorrelationID uuid.UUID
	ChangedAt     time.Time
}

func (ProjectStatusChanged) Name() string { return NameProjectStatusChanged }

// DocumentSubmitted is emitted when a document version is accepted.
type DocumentSubmitted struct {
	ProjectID     uuid.UUID
	Title         string
	Kind          model.DocumentKind
	Attempt       int
	SubmittedBy   string
	Recipients    []model.Recipient
	CorrelationID uuid.UUID
	SubmittedAt   time.Time
}

func (DocumentSubmitted) Name() string { return NameDocumentSubmitted }

// ProjectCancelled is emitted when the attempt ceiling cancels a project.
// Terminal: requires operator visibility.
type ProjectCancelled struct {
	ProjectID     uuid.UUID
	Title         string
	Reason        string
	CorrelationID uuid.UUID
}

func (ProjectCancelled) Name() string { return NameProjectCancelled }

// EvaluatorsAssigned is emitted when both evaluator slots of a unit are set.
type EvaluatorsAssigned struct {
	UnitID        uuid.UUID
	ProjectID     uuid.UUID
	Title         string
	Kind          model.DocumentKind
	DirectorName  string
	DueDate       time.Time
	Recipients    []model.Recipient
	CorrelationID uuid.UUID
}

func (EvaluatorsAssigned) Name() string { return NameEvaluatorsAssigned }

// ConsensusCompleted is emitted exactly once per unit when the two-evaluator
// verdict is final. CompletionID keys the idempotent downstream call.
type ConsensusCompleted struct {
	UnitID        uuid.UUID
	ProjectID     uuid.UUID
	Title         string
	Kind          model.DocumentKind
	Verdict       model.Decision
	EvaluatedBy   string
	Recipients    []model.Recipient
	CompletionID  uuid.UUID
	CorrelationID uuid.UUID
	CompletedAt   time.Time
}

func (ConsensusCompleted) Name() string { return NameConsensusCompleted }
