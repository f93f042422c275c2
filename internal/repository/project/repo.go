package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/smontiel/thesis-workflow/internal/model"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrVersionNotFound = errors.New("document version not found")

	// ErrVersionAlreadyReviewed guards the write-once review mutation.
	ErrVersionAlreadyReviewed = errors.New("document version already reviewed")
)

// Repository persists projects and their document versions.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateProject inserts a new project and returns its ID.
func (r *Repository) CreateProject(ctx context.Context, p model.Project) (uuid.UUID, error) {
	query := `
		INSERT INTO projects (
		    title, state, attempts
		) VALUES ($1, $2, $3)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, p.Title, p.State, p.Attempts).Scan(&p.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p.ID, nil
}

// GetProject retrieves one project by its ID.
func (r *Repository) GetProject(ctx context.Context, id uuid.UUID) (model.Project, error) {
	query := `
		SELECT id, title, state, attempts, created_at, updated_at
		FROM projects
		WHERE id = $1;
    `

	var p model.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.State, &p.Attempts, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, ErrProjectNotFound
		}

		return model.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// UpdateProject persists the state and attempt counter of a project.
func (r *Repository) UpdateProject(ctx context.Context, id uuid.UUID, state model.ProjectState, attempts int) error {
	query := `
		UPDATE projects
		SET state = $1, attempts = $2, updated_at = now()
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, state, attempts, id)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// CreateVersion appends one document version. Versions are never deleted.
func (r *Repository) CreateVersion(ctx context.Context, v model.DocumentVersion) error {
	query := `
		INSERT INTO document_versions (
		    id, project_id, kind, attempt, content_ref, submitted_at, outcome
		) VALUES ($1, $2, $3, $4, $5, $6, $7);
    `

	_, err := r.db.ExecContext(
		ctx, query, v.ID, v.ProjectID, v.Kind, v.Attempt, v.ContentRef, v.SubmittedAt, v.Outcome,
	)
	if err != nil {
		return fmt.Errorf("failed to create document version: %w", err)
	}

	return nil
}

// CountVersions counts the attempts stored for one project and kind.
func (r *Repository) CountVersions(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) (int, error) {
	query := `
		SELECT count(*)
		FROM document_versions
		WHERE project_id = $1 AND kind = $2;
    `

	var count int
	if err := r.db.QueryRowContext(ctx, query, projectID, kind).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count document versions: %w", err)
	}

	return count, nil
}

// LatestVersion returns the highest attempt stored for one project and kind.
func (r *Repository) LatestVersion(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) (model.DocumentVersion, error) {
	query := `
		SELECT id, project_id, kind, attempt, content_ref, submitted_at, outcome, reviewed_by, reviewed_at, remarks
		FROM document_versions
		WHERE project_id = $1 AND kind = $2
		ORDER BY attempt DESC
		LIMIT 1;
    `

	var (
		v          model.DocumentVersion
		reviewedBy sql.NullString
		reviewedAt sql.NullTime
		remarks    sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, projectID, kind).Scan(
		&v.ID, &v.ProjectID, &v.Kind, &v.Attempt, &v.ContentRef, &v.SubmittedAt,
		&v.Outcome, &reviewedBy, &reviewedAt, &remarks,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DocumentVersion{}, ErrVersionNotFound
		}

		return model.DocumentVersion{}, fmt.Errorf("failed to get latest version: %w", err)
	}

	v.ReviewedBy = reviewedBy.String
	v.Remarks = remarks.String

	if reviewedAt.Valid {
		v.ReviewedAt = &reviewedAt.Time
	}

	return v, nil
}

// ReviewVersion applies the single review mutation a version ever receives.
// A second review of the same version fails.
func (r *Repository) ReviewVersion(ctx context.Context, versionID uuid.UUID, outcome model.ReviewOutcome, reviewer, remarks string, at time.Time) error {
	query := `
		UPDATE document_versions
		SET outcome = $1, reviewed_by = $2, remarks = $3, reviewed_at = $4
		WHERE id = $5 AND outcome = $6;
    `

	res, err := r.db.ExecContext(ctx, query, outcome, reviewer, remarks, at, versionID, model.OutcomePending)
	if err != nil {
		return fmt.Errorf("failed to review document version: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrVersionAlreadyReviewed
	}

	return nil
}
