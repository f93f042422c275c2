// Package consensus reconciles the two independent evaluator decisions of a
// reviewable unit into one final verdict. The rule is first-rejects-wins,
// both-approve: a single rejection ends the process, approval needs both.
package consensus

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smontiel/thesis-workflow/internal/model"
)

// Completion is the final verdict of a unit. It is produced exactly once,
// on the decision that pins the verdict; the CompletionID makes every
// downstream call keyed off it idempotent.
type Completion struct {
	UnitID       uuid.UUID
	ProjectID    uuid.UUID
	Verdict      model.Decision
	CompletionID uuid.UUID
	CompletedAt  time.Time
}

// NewAssignment creates the two-slot assignment for a unit. The completion
// id is minted here, once, so retries of the downstream status-change call
// always carry the same key.
func NewAssignment(unitID, projectID, evaluator1, evaluator2 uuid.UUID, now time.Time) (model.ReviewAssignment, error) {
	if evaluator1 == evaluator2 {
		return model.ReviewAssignment{}, fmt.Errorf("%w: %s", ErrDuplicateEvaluator, evaluator1)
	}

	return model.ReviewAssignment{
		UnitID:    unitID,
		ProjectID: projectID,
		Slots: [2]model.EvaluatorSlot{
			{Evaluator: evaluator1},
			{Evaluator: evaluator2},
		},
		State:        model.AssignmentPending,
		CompletionID: uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Record writes one evaluator's decision into its slot and recomputes the
// aggregate. It returns a non-nil Completion only on the call that made the
// verdict final. A decision arriving after the verdict is pinned is still
// recorded but cannot change it.
func Record(a *model.ReviewAssignment, evaluatorID uuid.UUID, decision model.Decision, remarks string, now time.Time) (*Completion, error) {
	slot := findSlot(a, evaluatorID)
	if slot == nil {
		return nil, fmt.Errorf("%w: %s on unit %s", ErrUnknownEvaluator, evaluatorID, a.UnitID)
	}

	if slot.Decided() {
		return nil, fmt.Errorf("%w: %s on unit %s", ErrAlreadyDecided, evaluatorID, a.UnitID)
	}

	d := decision
	slot.Decision = &d
	slot.Remarks = remarks
	slot.DecidedAt = &now
	a.UpdatedAt = now

	if a.Verdict != nil {
		// Verdict already pinned by the other slot; this decision is kept
		// for the record only.
		return nil, nil
	}

	verdict, final := aggregate(a)
	if !final {
		a.State = model.AssignmentInReview
		return nil, nil
	}

	a.Verdict = &verdict
	a.State = model.AssignmentCompleted

	return &Completion{
		UnitID:       a.UnitID,
		ProjectID:    a.ProjectID,
		Verdict:      verdict,
		CompletionID: a.CompletionID,
		CompletedAt:  now,
	}, nil
}

// aggregate applies the tie-break rules over the two slots. A rejection in
// either slot is final immediately; approval is final only once both slots
// hold it.
func aggregate(a *model.ReviewAssignment) (model.Decision, bool) {
	for _, slot := range a.Slots {
		if slot.Decided() && *slot.Decision == model.DecisionReject {
			return model.DecisionReject, true
		}
	}

	if a.Slots[0].Decided() && a.Slots[1].Decided() {
		return model.DecisionApprove, true
	}

	return "", false
}

func findSlot(a *model.ReviewAssignment, evaluatorID uuid.UUID) *model.EvaluatorSlot {
	for i := range a.Slots {
		if a.Slots[i].Evaluator == evaluatorID {
			return &a.Slots[i]
		}
	}

	return nil
}
