package consensus

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smontiel/thesis-workflow/internal/model"
)

func newAssignment(t *testing.T) (model.ReviewAssignment, uuid.UUID, uuid.UUID) {
	t.Helper()

	e1, e2 := uuid.New(), uuid.New()
	a, err := NewAssignment(uuid.New(), uuid.New(), e1, e2, time.Now())
	require.NoError(t, err)

	return a, e1, e2
}

func TestNewAssignment_RejectsDuplicateEvaluator(t *testing.T) {
	e := uuid.New()
	_, err := NewAssignment(uuid.New(), uuid.New(), e, e, time.Now())
	assert.ErrorIs(t, err, ErrDuplicateEvaluator)
}

func TestNewAssignment_MintsCompletionID(t *testing.T) {
	a, _, _ := newAssignment(t)
	assert.NotEqual(t, uuid.Nil, a.CompletionID)
	assert.Equal(t, model.AssignmentPending, a.State)
}

func TestRecord_UnknownEvaluator(t *testing.T) {
	a, _, _ := newAssignment(t)

	_, err := Record(&a, uuid.New(), model.DecisionApprove, "", time.Now())
	assert.ErrorIs(t, err, ErrUnknownEvaluator)
}

func TestRecord_DecisionsAreWriteOnce(t *testing.T) {
	a, e1, e2 := newAssignment(t)

	_, err := Record(&a, e1, model.DecisionApprove, "solid proposal", time.Now())
	require.NoError(t, err)

	_, err = Record(&a, e1, model.DecisionReject, "changed my mind", time.Now())
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	// The slot keeps its original decision and the aggregate is unchanged.
	require.NotNil(t, a.Slots[0].Decision)
	assert.Equal(t, model.DecisionApprove, *a.Slots[0].Decision)
	assert.Equal(t, "solid proposal", a.Slots[0].Remarks)
	assert.Nil(t, a.Verdict)

	_, err = Record(&a, e2, model.DecisionApprove, "", time.Now())
	require.NoError(t, err)
	require.NotNil(t, a.Verdict)
	assert.Equal(t, model.DecisionApprove, *a.Verdict)
}

func TestRecord_BothApprove(t *testing.T) {
	a, e1, e2 := newAssignment(t)

	completion, err := Record(&a, e1, model.DecisionApprove, "", time.Now())
	require.NoError(t, err)
	assert.Nil(t, completion, "one approval must not complete the unit")
	assert.Equal(t, model.AssignmentInReview, a.State)

	completion, err = Record(&a, e2, model.DecisionApprove, "", time.Now())
	require.NoError(t, err)
	require.NotNil(t, completion)
	assert.Equal(t, model.DecisionApprove, completion.Verdict)
	assert.Equal(t, a.CompletionID, completion.CompletionID)
	assert.Equal(t, model.AssignmentCompleted, a.State)
}

func TestRecord_RejectionWinsRegardlessOfOrder(t *testing.T) {
	tests := []struct {
		name  string
		first model.Decision
		last  model.Decision
	}{
		{"reject then approve", model.DecisionReject, model.DecisionApprove},
		{"approve then reject", model.DecisionApprove, model.DecisionReject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, e1, e2 := newAssignment(t)

			first, err := Record(&a, e1, tt.first, "", time.Now())
			require.NoError(t, err)

			last, err := Record(&a, e2, tt.last, "", time.Now())
			require.NoError(t, err)

			require.NotNil(t, a.Verdict)
			assert.Equal(t, model.DecisionReject, *a.Verdict)

			// Exactly one of the two calls completed the unit.
			completions := 0
			for _, c := range []*Completion{first, last} {
				if c != nil {
					completions++
					assert.Equal(t, model.DecisionReject, c.Verdict)
				}
			}
			assert.Equal(t, 1, completions)
		})
	}
}

func TestRecord_LateDecisionAfterRejectionIsKeptButInert(t *testing.T) {
	a, e1, e2 := newAssignment(t)

	completion, err := Record(&a, e1, model.DecisionReject, "out of scope", time.Now())
	require.NoError(t, err)
	require.NotNil(t, completion, "first rejection completes immediately")

	late, err := Record(&a, e2, model.DecisionApprove, "looks fine to me", time.Now())
	require.NoError(t, err)
	assert.Nil(t, late, "a second completion must never be produced")

	require.NotNil(t, a.Slots[1].Decision)
	assert.Equal(t, model.DecisionApprove, *a.Slots[1].Decision)
	assert.Equal(t, model.DecisionReject, *a.Verdict)
}

func TestRecord_ConcurrentDecisionsBothKept(t *testing.T) {
	// The service serializes Record per unit; this verifies that under that
	// discipline neither decision overwrites the other.
	a, e1, e2 := newAssignment(t)

	done := make(chan struct{}, 2)
	lock := make(chan struct{}, 1)

	record := func(ev uuid.UUID, d model.Decision) {
		lock <- struct{}{}
		defer func() { <-lock; done <- struct{}{} }()
		_, err := Record(&a, ev, d, "", time.Now())
		assert.NoError(t, err)
	}

	go record(e1, model.DecisionApprove)
	go record(e2, model.DecisionReject)

	<-done
	<-done

	assert.True(t, a.Slots[0].Decided())
	assert.True(t, a.Slots[1].Decided())
	assert.Equal(t, model.DecisionReject, *a.Verdict)
}
