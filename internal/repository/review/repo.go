package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/smontiel/thesis-workflow/internal/consensus"
	"github.com/smontiel/thesis-workflow/internal/model"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

const uniqueViolation = "23505"

// Repository persists review assignments, one row per unit with the two
// evaluator slots denormalized into columns.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateAssignment inserts a new assignment. A second insert for the same
// unit fails with consensus.ErrAlreadyAssigned.
func (r *Repository) CreateAssignment(ctx context.Context, a model.ReviewAssignment) error {
	query := `
		INSERT INTO review_assignments (
		    unit_id, project_id, evaluator1, evaluator2, state, completion_id
		) VALUES ($1, $2, $3, $4, $5, $6);
    `

	_, err := r.db.ExecContext(
		ctx, query, a.UnitID, a.ProjectID, a.Slots[0].Evaluator, a.Slots[1].Evaluator, a.State, a.CompletionID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: unit %s", consensus.ErrAlreadyAssigned, a.UnitID)
		}

		return fmt.Errorf("failed to create assignment: %w", err)
	}

	return nil
}

// GetAssignment retrieves the assignment of one unit.
func (r *Repository) GetAssignment(ctx context.Context, unitID uuid.UUID) (model.ReviewAssignment, error) {
	query := `
		SELECT unit_id, project_id, state, verdict, completion_id, completion_emitted,
		       evaluator1, decision1, remarks1, decided1_at,
		       evaluator2, decision2, remarks2, decided2_at,
		       created_at, updated_at
		FROM review_assignments
		WHERE unit_id = $1;
    `

	var (
		a       model.ReviewAssignment
		verdict sql.NullString
		slots   [2]struct {
			decision  sql.NullString
			remarks   sql.NullString
			decidedAt sql.NullTime
		}
	)

	err := r.db.QueryRowContext(ctx, query, unitID).Scan(
		&a.UnitID, &a.ProjectID, &a.State, &verdict, &a.CompletionID, &a.CompletionEmitted,
		&a.Slots[0].Evaluator, &slots[0].decision, &slots[0].remarks, &slots[0].decidedAt,
		&a.Slots[1].Evaluator, &slots[1].decision, &slots[1].remarks, &slots[1].decidedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReviewAssignment{}, ErrAssignmentNotFound
		}

		return model.ReviewAssignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	if verdict.Valid {
		d := model.Decision(verdict.String)
		a.Verdict = &d
	}

	for i := range slots {
		if slots[i].decision.Valid {
			d := model.Decision(slots[i].decision.String)
			a.Slots[i].Decision = &d
		}

		a.Slots[i].Remarks = slots[i].remarks.String

		if slots[i].decidedAt.Valid {
			t := slots[i].decidedAt.Time
			a.Slots[i].DecidedAt = &t
		}
	}

	return a, nil
}

// SaveAssignment persists the mutable part of an assignment: slot decisions,
// state, verdict and the completion-emitted flag.
func (r *Repository) SaveAssignment(ctx context.Context, a model.ReviewAssignment) error {
	query := `
		UPDATE review_assignments
		SET state = $1, verdict = $2, completion_emitted = $3,
		    decision1 = $4, remarks1 = $5, decided1_at = $6,
		    decision2 = $7, remarks2 = $8, decided2_at = $9,
		    updated_at = now()
		WHERE unit_id = $10;
    `

	res, err := r.db.ExecContext(ctx, query,
		a.State, decisionValue(a.Verdict), a.CompletionEmitted,
		decisionValue(a.Slots[0].Decision), a.Slots[0].Remarks, a.Slots[0].DecidedAt,
		decisionValue(a.Slots[1].Decision), a.Slots[1].Remarks, a.Slots[1].DecidedAt,
		a.UnitID,
	)
	if err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

func decisionValue(d *model.Decision) interface{} {
	if d == nil {
		return nil
	}

	return string(*d)
}
