package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smontiel/thesis-workflow/internal/model"
)

//go:generate mockgen -source=versions.go -destination=../mocks/workflow/mock.go -package=mocks
type versionRepo interface {
	CreateVersion(ctx context.Context, v model.DocumentVersion) error
	CountVersions(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) (int, error)
	LatestVersion(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) (model.DocumentVersion, error)
	ReviewVersion(ctx context.Context, versionID uuid.UUID, outcome model.ReviewOutcome, reviewer, remarks string, at time.Time) error
}

// VersionStore tracks the ordered submission attempts of each document kind
// per project and enforces the attempt ceiling. Versions are append-only;
// a review decision is the single mutation a version ever receives.
type VersionStore struct {
	repo versionRepo
}

func NewVersionStore(repo versionRepo) *VersionStore {
	return &VersionStore{repo: repo}
}

// Allows reports whether another attempt of kind is allowed for the project.
func (s *VersionStore) Allows(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) (bool, error) {
	count, err := s.repo.CountVersions(ctx, projectID, kind)
	if err != nil {
		return false, fmt.Errorf("count versions: %w", err)
	}

	return count < model.MaxAttempts, nil
}

// Record appends the next attempt of kind for the project. It fails with
// ErrAttemptLimitExceeded when the ceiling was already reached.
func (s *VersionStore) Record(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind, contentRef string, at time.Time) (model.DocumentVersion, error) {
	count, err := s.repo.CountVersions(ctx, projectID, kind)
	if err != nil {
		return model.DocumentVersion{}, fmt.Errorf("count versions: %w", err)
	}

	if count >= model.MaxAttempts {
		return model.DocumentVersion{}, fmt.Errorf("%w: %s attempt %d of %d", ErrAttemptLimitExceeded, kind, count+1, model.MaxAttempts)
	}

	v := model.DocumentVersion{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Kind:        kind,
		Attempt:     count + 1,
		ContentRef:  contentRef,
		SubmittedAt: at,
		Outcome:     model.OutcomePending,
	}

	if err := s.repo.CreateVersion(ctx, v); err != nil {
		return model.DocumentVersion{}, fmt.Errorf("create version: %w", err)
	}

	return v, nil
}

// Latest returns the most recent attempt of kind for the project.
func (s *VersionStore) Latest(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) (model.DocumentVersion, error) {
	v, err := s.repo.LatestVersion(ctx, projectID, kind)
	if err != nil {
		return model.DocumentVersion{}, fmt.Errorf("latest version: %w", err)
	}

	return v, nil
}

// Review applies the single review mutation to a version.
func (s *VersionStore) Review(ctx context.Context, versionID uuid.UUID, outcome model.ReviewOutcome, reviewer, remarks string, at time.Time) error {
	if err := s.repo.ReviewVersion(ctx, versionID, outcome, reviewer, remarks, at); err != nil {
		return fmt.Errorf("review version: %w", err)
	}

	return nil
}
