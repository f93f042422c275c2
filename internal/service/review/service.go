// Package review orchestrates evaluator assignments for anteproyecto units:
// creating the two-slot assignment, recording decisions under the per-unit
// lock and publishing the completion exactly once.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/consensus"
	"github.com/smontiel/thesis-workflow/internal/eventbus"
	"github.com/smontiel/thesis-workflow/internal/locker"
	"github.com/smontiel/thesis-workflow/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/review/mock.go -package=mocks
type assignmentRepo interface {
	CreateAssignment(ctx context.Context, a model.ReviewAssignment) error
	GetAssignment(ctx context.Context, unitID uuid.UUID) (model.ReviewAssignment, error)
	SaveAssignment(ctx context.Context, a model.ReviewAssignment) error
}

// projectGateway reaches back into the project workflow for the transitions
// the review lifecycle drives.
type projectGateway interface {
	MarkEvaluatorsAssigned(ctx context.Context, strategy retry.Strategy, projectID, eventID uuid.UUID, recipients []model.Recipient) error
	StartEvaluation(ctx context.Context, strategy retry.Strategy, projectID, eventID uuid.UUID, recipients []model.Recipient) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev eventbus.Event)
}

// Service serializes all mutations of one unit behind its lock.
type Service struct {
	repo     assignmentRepo
	projects projectGateway
	bus      eventPublisher
	locks    *locker.Keyed
}

func NewService(repo assignmentRepo, projects projectGateway, bus eventPublisher) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		bus:      bus,
		locks:    locker.NewKeyed(),
	}
}

// Assignment carries one assignEvaluators command.
type Assignment struct {
	UnitID       uuid.UUID
	ProjectID    uuid.UUID
	Title        string
	Evaluator1   uuid.UUID
	Evaluator2   uuid.UUID
	DirectorName string
	DueDate      time.Time
	Recipients   []model.Recipient
}

// AssignEvaluators creates the two-slot assignment for a unit and moves the
// project to ANTEPROYECTO_ASIGNADO.
func (s *Service) AssignEvaluators(ctx context.Context, strategy retry.Strategy, cmd Assignment) (model.ReviewAssignment, error) {
	unlock := s.locks.Lock(cmd.UnitID.String())
	defer unlock()

	a, err := consensus.NewAssignment(cmd.UnitID, cmd.ProjectID, cmd.Evaluator1, cmd.Evaluator2, time.Now())
	if err != nil {
		return model.ReviewAssignment{}, err
	}

	if err := s.repo.CreateAssignment(ctx, a); err != nil {
		return model.ReviewAssignment{}, err
	}

	if err := s.projects.MarkEvaluatorsAssigned(ctx, strategy, cmd.ProjectID, uuid.New(), cmd.Recipients); err != nil {
		return model.ReviewAssignment{}, fmt.Errorf("mark evaluators assigned: %w", err)
	}

	s.bus.Publish(ctx, eventbus.EvaluatorsAssigned{
		UnitID:        cmd.UnitID,
		ProjectID:     cmd.ProjectID,
		Title:         cmd.Title,
		Kind:          model.DocumentAnteproyecto,
		DirectorName:  cmd.DirectorName,
		DueDate:       cmd.DueDate,
		Recipients:    cmd.Recipients,
		CorrelationID: uuid.New(),
	})

	return a, nil
}

// RecordDecision writes one evaluator's verdict. The first decision of a
// pending unit also starts the project evaluation; the decision that pins
// the verdict publishes the completion.
func (s *Service) RecordDecision(ctx context.Context, strategy retry.Strategy, unitID, evaluatorID uuid.UUID, decision model.Decision, remarks string, evaluatedBy, title string, recipients []model.Recipient) (model.ReviewAssignment, error) {
	unlock := s.locks.Lock(unitID.String())
	defer unlock()

	a, err := s.repo.GetAssignment(ctx, unitID)
	if err != nil {
		return model.ReviewAssignment{}, err
	}

	wasPending := a.State == model.AssignmentPending
	now := time.Now()

	completion, err := consensus.Record(&a, evaluatorID, decision, remarks, now)
	if err != nil {
		return model.ReviewAssignment{}, err
	}

	if wasPending {
		if err := s.projects.StartEvaluation(ctx, strategy, a.ProjectID, uuid.New(), recipients); err != nil {
			return model.ReviewAssignment{}, fmt.Errorf("start evaluation: %w", err)
		}
	}

	// The emitted flag is persisted together with the verdict, before the
	// bus sees the completion, so a crash between the two cannot double it.
	if completion != nil && !a.CompletionEmitted {
		a.CompletionEmitted = true
	}

	if err := s.repo.SaveAssignment(ctx, a); err != nil {
		return model.ReviewAssignment{}, err
	}

	if completion != nil {
		s.bus.Publish(ctx, eventbus.ConsensusCompleted{
			UnitID:        completion.UnitID,
			ProjectID:     completion.ProjectID,
			Title:         title,
			Kind:          model.DocumentAnteproyecto,
			Verdict:       completion.Verdict,
			EvaluatedBy:   evaluatedBy,
			Recipients:    recipients,
			CompletionID:  completion.CompletionID,
			CorrelationID: uuid.New(),
			CompletedAt:   completion.CompletedAt,
		})
	} else if a.Verdict != nil {
		zlog.Logger.Info().
			Str("unit_id", unitID.String()).
			Str("evaluator", evaluatorID.String()).
			Msg("decision recorded after verdict was pinned")
	}

	return a, nil
}

// GetAssignment loads the assignment of one unit.
func (s *Service) GetAssignment(ctx context.Context, unitID uuid.UUID) (model.ReviewAssignment, error) {
	return s.repo.GetAssignment(ctx, unitID)
}
