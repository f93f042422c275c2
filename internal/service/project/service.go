// Package project orchestrates the project state machine: it loads the
// aggregate, applies one workflow event under the per-project lock, persists
// the outcome and publishes the resulting domain events.
package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/eventbus"
	"github.com/smontiel/thesis-workflow/internal/locker"
	"github.com/smontiel/thesis-workflow/internal/model"
	"github.com/smontiel/thesis-workflow/internal/workflow"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/project/mock.go -package=mocks
type projectRepo interface {
	CreateProject(ctx context.Context, p model.Project) (uuid.UUID, error)
	GetProject(ctx context.Context, id uuid.UUID) (model.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, state model.ProjectState, attempts int) error
}

type versionStore interface {
	Allows(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) (bool, error)
	Record(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind, contentRef string, at time.Time) (model.DocumentVersion, error)
	Latest(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) (model.DocumentVersion, error)
	Review(ctx context.Context, versionID uuid.UUID, outcome model.ReviewOutcome, reviewer, remarks string, at time.Time) error
}

type processedStore interface {
	Seen(ctx context.Context, id string) (bool, error)
	Mark(ctx context.Context, id string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev eventbus.Event)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service is the single writer per project aggregate.
type Service struct {
	repo        projectRepo
	versions    versionStore
	events      processedStore
	completions processedStore
	bus         eventPublisher
	cache       cache
	locks       *locker.Keyed
}

func NewService(repo projectRepo, versions versionStore, events, completions processedStore, bus eventPublisher, cache cache) *Service {
	return &Service{
		repo:        repo,
		versions:    versions,
		events:      events,
		completions: completions,
		bus:         bus,
		cache:       cache,
		locks:       locker.NewKeyed(),
	}
}

// Submission carries one inbound submitDocument command.
type Submission struct {
	ProjectID   uuid.UUID
	Kind        model.DocumentKind
	ContentRef  string
	SubmittedBy string
	EventID     uuid.UUID
	Recipients  []model.Recipient
}

// CreateProject registers a new project. Creation counts as the first
// FormatoA submission: initial state FORMATO_A_PRESENTADO, attempt 1.
func (s *Service) CreateProject(ctx context.Context, strategy retry.Strategy, title, contentRef, submittedBy string, recipients []model.Recipient) (model.Project, error) {
	p := model.Project{
		Title:    title,
		State:    model.StateFormatoAPresentado,
		Attempts: 1,
	}

	id, err := s.repo.CreateProject(ctx, p)
	if err != nil {
		return model.Project{}, fmt.Errorf("create project: %w", err)
	}

	p.ID = id

	v, err := s.versions.Record(ctx, id, model.DocumentFormatoA, contentRef, time.Now())
	if err != nil {
		return model.Project{}, fmt.Errorf("record initial version: %w", err)
	}

	correlationID := uuid.New()
	s.bus.Publish(ctx, eventbus.DocumentSubmitted{
		ProjectID:     id,
		Title:         title,
		Kind:          model.DocumentFormatoA,
		Attempt:       v.Attempt,
		SubmittedBy:   submittedBy,
		Recipients:    recipients,
		CorrelationID: correlationID,
		SubmittedAt:   v.SubmittedAt,
	})

	s.cacheState(ctx, strategy, id, p.State)

	return p, nil
}

// SubmitDocument applies one submission attempt. Replays of an already
// processed event id return the stored version without touching counters.
func (s *Service) SubmitDocument(ctx context.Context, strategy retry.Strategy, sub Submission) (model.DocumentVersion, error) {
	unlock := s.locks.Lock(sub.ProjectID.String())
	defer unlock()

	seen, err := s.events.Seen(ctx, sub.EventID.String())
	if err != nil {
		return model.DocumentVersion{}, fmt.Errorf("check event id: %w", err)
	}

	if seen {
		zlog.Logger.Info().
			Str("event_id", sub.EventID.String()).
			Str("project_id", sub.ProjectID.String()).
			Msg("submission replay detected, returning stored version")
		return s.versions.Latest(ctx, sub.ProjectID, sub.Kind)
	}

	p, err := s.repo.GetProject(ctx, sub.ProjectID)
	if err != nil {
		return model.DocumentVersion{}, fmt.Errorf("get project: %w", err)
	}

	res, applyErr := workflow.Apply(p.State, p.Attempts, workflow.DocumentSubmitted{
		EventID: sub.EventID,
		Kind:    sub.Kind,
	})
	if applyErr != nil {
		if errors.Is(applyErr, workflow.ErrAttemptLimitExceeded) {
			// The rejected attempt still cancels the project; the event is
			// terminal and must not be replayable.
			if err := s.persist(ctx, strategy, p, res, sub.Recipients, uuid.New()); err != nil {
				return model.DocumentVersion{}, err
			}

			s.mark(ctx, s.events, sub.EventID.String())
		}

		return model.DocumentVersion{}, applyErr
	}

	allowed, err := s.versions.Allows(ctx, sub.ProjectID, sub.Kind)
	if err != nil {
		return model.DocumentVersion{}, fmt.Errorf("check attempt ceiling: %w", err)
	}

	if !allowed {
		return model.DocumentVersion{}, fmt.Errorf("%w: version store refused %s", workflow.ErrAttemptLimitExceeded, sub.Kind)
	}

	v, err := s.versions.Record(ctx, sub.ProjectID, sub.Kind, sub.ContentRef, time.Now())
	if err != nil {
		return model.DocumentVersion{}, err
	}

	correlationID := uuid.New()

	if err := s.persist(ctx, strategy, p, res, sub.Recipients, correlationID); err != nil {
		return model.DocumentVersion{}, err
	}

	s.bus.Publish(ctx, eventbus.DocumentSubmitted{
		ProjectID:     sub.ProjectID,
		Title:         p.Title,
		Kind:          sub.Kind,
		Attempt:       v.Attempt,
		SubmittedBy:   sub.SubmittedBy,
		Recipients:    sub.Recipients,
		CorrelationID: correlationID,
		SubmittedAt:   v.SubmittedAt,
	})

	s.mark(ctx, s.events, sub.EventID.String())

	return v, nil
}

// StartEvaluation moves the presented document of the active stage into
// review.
func (s *Service) StartEvaluation(ctx context.Context, strategy retry.Strategy, projectID, eventID uuid.UUID, recipients []model.Recipient) error {
	return s.applySimple(ctx, strategy, projectID, eventID, workflow.EvaluationStarted{EventID: eventID}, recipients)
}

// MarkEvaluatorsAssigned records that both evaluator slots were filled for
// the anteproyecto review.
func (s *Service) MarkEvaluatorsAssigned(ctx context.Context, strategy retry.Strategy, projectID, eventID uuid.UUID, recipients []model.Recipient) error {
	return s.applySimple(ctx, strategy, projectID, eventID, workflow.EvaluatorsAssigned{EventID: eventID}, recipients)
}

// AdvanceStage moves the project from an accepted state to the next stage.
func (s *Service) AdvanceStage(ctx context.Context, strategy retry.Strategy, projectID, eventID uuid.UUID, recipients []model.Recipient) error {
	return s.applySimple(ctx, strategy, projectID, eventID, workflow.StageAdvanced{EventID: eventID}, recipients)
}

// ApplyReviewDecision applies a review verdict to the project and to the
// document version under evaluation.
func (s *Service) ApplyReviewDecision(ctx context.Context, strategy retry.Strategy, projectID uuid.UUID, decision model.Decision, reviewer, remarks string, eventID uuid.UUID, recipients []model.Recipient) error {
	unlock := s.locks.Lock(projectID.String())
	defer unlock()

	seen, err := s.events.Seen(ctx, eventID.String())
	if err != nil {
		return fmt.Errorf("check event id: %w", err)
	}

	if seen {
		return nil
	}

	p, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}

	if err := s.decide(ctx, strategy, p, decision, reviewer, remarks, recipients); err != nil {
		return err
	}

	s.mark(ctx, s.events, eventID.String())

	return nil
}

// SetProjectState is the inbound side of the idempotent status-change call.
// Replays carrying an already-processed completion id are acknowledged
// without effect.
func (s *Service) SetProjectState(ctx context.Context, strategy retry.Strategy, projectID uuid.UUID, newState model.ProjectState, reason string, completionID uuid.UUID) error {
	unlock := s.locks.Lock(projectID.String())
	defer unlock()

	seen, err := s.completions.Seen(ctx, completionID.String())
	if err != nil {
		return fmt.Errorf("check completion id: %w", err)
	}

	if seen {
		zlog.Logger.Info().
			Str("completion_id", completionID.String()).
			Msg("duplicate completion, state change already applied")
		return nil
	}

	decision, err := stateDecision(newState)
	if err != nil {
		return err
	}

	p, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}

	if err := s.decide(ctx, strategy, p, decision, "evaluation committee", reason, nil); err != nil {
		return err
	}

	s.mark(ctx, s.completions, completionID.String())

	return nil
}

// GetProject loads one project.
func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (model.Project, error) {
	return s.repo.GetProject(ctx, id)
}

// GetProjectState serves reads through the cache.
func (s *Service) GetProjectState(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.ProjectState, error) {
	state, err := s.cache.GetWithRetry(ctx, strategy, stateKey(id))
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("project_id", id.String()).Msg("state cache read failed")
	}

	if err == nil && state != "" {
		return model.ProjectState(state), nil
	}

	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get project state: %w", err)
	}

	s.cacheState(ctx, strategy, id, p.State)

	return p.State, nil
}

// decide runs the review decision against the machine and the version store.
func (s *Service) decide(ctx context.Context, strategy retry.Strategy, p model.Project, decision model.Decision, reviewer, remarks string, recipients []model.Recipient) error {
	kind := workflow.ActiveKind(p.State)

	state, attempts := p.State, p.Attempts

	// A verdict arriving before the evaluation was explicitly started implies
	// the review took place; both transitions apply under the same command.
	var started []workflow.Effect
	if state == model.StateFormatoAPresentado || state == model.StateAnteproyectoAsignado {
		res, err := workflow.Apply(state, attempts, workflow.EvaluationStarted{EventID: uuid.New()})
		if err != nil {
			return err
		}

		state, attempts = res.State, res.Attempts
		started = res.Effects
	}

	res, err := workflow.Apply(state, attempts, workflow.ReviewDecided{
		EventID:  uuid.New(),
		Decision: decision,
	})
	if err != nil {
		return err
	}

	res.Effects = append(started, res.Effects...)

	outcome := model.OutcomeApproved
	if decision == model.DecisionReject {
		outcome = model.OutcomeRejected
	}

	v, err := s.versions.Latest(ctx, p.ID, kind)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("project_id", p.ID.String()).Msg("no version to attach the review to")
	} else if err := s.versions.Review(ctx, v.ID, outcome, reviewer, remarks, time.Now()); err != nil {
		return err
	}

	return s.persist(ctx, strategy, p, res, recipients, uuid.New())
}

func (s *Service) applySimple(ctx context.Context, strategy retry.Strategy, projectID, eventID uuid.UUID, ev workflow.Event, recipients []model.Recipient) error {
	unlock := s.locks.Lock(projectID.String())
	defer unlock()

	seen, err := s.events.Seen(ctx, eventID.String())
	if err != nil {
		return fmt.Errorf("check event id: %w", err)
	}

	if seen {
		return nil
	}

	p, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}

	res, err := workflow.Apply(p.State, p.Attempts, ev)
	if err != nil {
		return err
	}

	if err := s.persist(ctx, strategy, p, res, recipients, uuid.New()); err != nil {
		return err
	}

	s.mark(ctx, s.events, eventID.String())

	return nil
}

// persist writes the transition outcome and publishes its effects.
func (s *Service) persist(ctx context.Context, strategy retry.Strategy, p model.Project, res workflow.Result, recipients []model.Recipient, correlationID uuid.UUID) error {
	if err := s.repo.UpdateProject(ctx, p.ID, res.State, res.Attempts); err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	for _, effect := range res.Effects {
		switch effect.Kind {
		case workflow.EffectStatusChanged:
			s.bus.Publish(ctx, eventbus.ProjectStatusChanged{
				ProjectID:     p.ID,
				Title:         p.Title,
				From:          effect.From,
				To:            effect.To,
				Recipients:    recipients,
				CorrelationID: correlationID,
				ChangedAt:     time.Now(),
			})
		case workflow.EffectProjectCancelled:
			s.bus.Publish(ctx, eventbus.ProjectCancelled{
				ProjectID:     p.ID,
				Title:         p.Title,
				Reason:        effect.Reason,
				CorrelationID: correlationID,
			})
		}
	}

	s.cacheState(ctx, strategy, p.ID, res.State)

	return nil
}

func (s *Service) cacheState(ctx context.Context, strategy retry.Strategy, id uuid.UUID, state model.ProjectState) {
	if err := s.cache.SetWithRetry(ctx, strategy, stateKey(id), string(state)); err != nil {
		zlog.Logger.Warn().Err(err).Str("project_id", id.String()).Msg("failed to cache project state")
	}
}

func (s *Service) mark(ctx context.Context, store processedStore, id string) {
	if err := store.Mark(ctx, id); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to mark id as processed")
	}
}

func stateKey(id uuid.UUID) string {
	return "project_state:" + id.String()
}

// stateDecision maps a requested target state onto the review decision that
// drives the machine there.
func stateDecision(state model.ProjectState) (model.Decision, error) {
	switch state {
	case model.StateFormatoAAceptado, model.StateAnteproyectoAceptado:
		return model.DecisionApprove, nil
	case model.StateFormatoARechazado, model.StateFormatoACorrecciones, model.StateAnteproyectoRechazado:
		return model.DecisionReject, nil
	default:
		return "", fmt.Errorf("%w: state %q cannot be set directly", workflow.ErrIllegalTransition, state)
	}
}
