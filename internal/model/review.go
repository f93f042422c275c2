package model

import (
	"time"

	"github.com/google/uuid"
)

// Decision is a single evaluator's verdict.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// AssignmentState is the lifecycle state of a review assignment.
type AssignmentState string

const (
	AssignmentPending   AssignmentState = "PENDING"
	AssignmentInReview  AssignmentState = "IN_REVIEW"
	AssignmentCompleted AssignmentState = "COMPLETED"
)

// EvaluatorSlot holds one of the two evaluator positions of an assignment.
// The decision is write-once.
type EvaluatorSlot struct {
	Evaluator uuid.UUID  `json:"evaluator"`
	Decision  *Decision  `json:"decision,omitempty"`
	Remarks   string     `json:"remarks,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

// Decided reports whether the slot already holds a decision.
func (s EvaluatorSlot) Decided() bool { return s.Decision != nil }

// ReviewAssignment pairs exactly two evaluators with one reviewable unit.
type ReviewAssignment struct {
	UnitID    uuid.UUID        `json:"unit_id"`
	ProjectID uuid.UUID        `json:"project_id"`
	Slots     [2]EvaluatorSlot `json:"slots"`
	State     AssignmentState  `json:"state"`
	Verdict   *Decision        `json:"verdict,omitempty"`
	// CompletionID makes the downstream status-change call idempotent.
	// Minted once when the assignment is created.
	CompletionID      uuid.UUID `json:"completion_id"`
	CompletionEmitted bool      `json:"completion_emitted"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
