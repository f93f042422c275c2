package review

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/smontiel/thesis-workflow/internal/adapter"
	"github.com/smontiel/thesis-workflow/internal/eventbus"
	"github.com/smontiel/thesis-workflow/internal/model"
	projectsvc "github.com/smontiel/thesis-workflow/internal/service/project"
	"github.com/smontiel/thesis-workflow/internal/workflow"
)

// The fakes below stand in for Postgres and Redis so the full workflow can
// run in-process: both services, the consensus engine, the event bus, the
// adapter and the loop back through the idempotent status-change call.

type memProjectRepo struct {
	mu       sync.Mutex
	projects map[uuid.UUID]model.Project
	versions []model.DocumentVersion
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: make(map[uuid.UUID]model.Project)}
}

func (r *memProjectRepo) CreateProject(_ context.Context, p model.Project) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.New()
	r.projects[p.ID] = p

	return p.ID, nil
}

func (r *memProjectRepo) GetProject(_ context.Context, id uuid.UUID) (model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.projects[id], nil
}

func (r *memProjectRepo) UpdateProject(_ context.Context, id uuid.UUID, state model.ProjectState, attempts int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.projects[id]
	p.State = state
	p.Attempts = attempts
	r.projects[id] = p

	return nil
}

func (r *memProjectRepo) CreateVersion(_ context.Context, v model.DocumentVersion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.versions = append(r.versions, v)

	return nil
}

func (r *memProjectRepo) CountVersions(_ context.Context, projectID uuid.UUID, kind model.DocumentKind) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, v := range r.versions {
		if v.ProjectID == projectID && v.Kind == kind {
			count++
		}
	}

	return count, nil
}

func (r *memProjectRepo) LatestVersion(_ context.Context, projectID uuid.UUID, kind model.DocumentKind) (model.DocumentVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest model.DocumentVersion
	for _, v := range r.versions {
		if v.ProjectID == projectID && v.Kind == kind && v.Attempt > latest.Attempt {
			latest = v
		}
	}

	return latest, nil
}

func (r *memProjectRepo) ReviewVersion(_ context.Context, versionID uuid.UUID, outcome model.ReviewOutcome, reviewer, remarks string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.versions {
		if r.versions[i].ID == versionID {
			r.versions[i].Outcome = outcome
			r.versions[i].ReviewedBy = reviewer
			r.versions[i].Remarks = remarks
			r.versions[i].ReviewedAt = &at
		}
	}

	return nil
}

type memAssignmentRepo struct {
	mu          sync.Mutex
	assignments map[uuid.UUID]model.ReviewAssignment
}

func newMemAssignmentRepo() *memAssignmentRepo {
	return &memAssignmentRepo{assignments: make(map[uuid.UUID]model.ReviewAssignment)}
}

func (r *memAssignmentRepo) CreateAssignment(_ context.Context, a model.ReviewAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assignments[a.UnitID] = a

	return nil
}

func (r *memAssignmentRepo) GetAssignment(_ context.Context, unitID uuid.UUID) (model.ReviewAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.assignments[unitID], nil
}

func (r *memAssignmentRepo) SaveAssignment(_ context.Context, a model.ReviewAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assignments[a.UnitID] = a

	return nil
}

type memIDStore struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newMemIDStore() *memIDStore {
	return &memIDStore{seen: make(map[string]bool)}
}

func (s *memIDStore) Seen(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seen[id], nil
}

func (s *memIDStore) Mark(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seen[id] = true

	return nil
}

type memCache struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemCache() *memCache {
	return &memCache{values: make(map[string]string)}
}

func (c *memCache) SetWithRetry(_ context.Context, _ retry.Strategy, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = fmt.Sprint(value)

	return nil
}

func (c *memCache) GetWithRetry(_ context.Context, _ retry.Strategy, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.values[key]
	if !ok {
		return "", redis.Nil
	}

	return v, nil
}

type capturePublisher struct {
	mu     sync.Mutex
	events []model.NotificationEvent
}

func (p *capturePublisher) Publish(_ context.Context, ev model.NotificationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, ev)

	return nil
}

func (p *capturePublisher) byType(t model.EventType) []model.NotificationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []model.NotificationEvent
	for _, ev := range p.events {
		if ev.EventType == t {
			out = append(out, ev)
		}
	}

	return out
}

// loopbackStatusSetter feeds the adapter's status-change call straight back
// into the project service, the way the downstream HTTP endpoint would.
type loopbackStatusSetter struct {
	projects *projectsvc.Service
	strategy retry.Strategy
	calls    int
}

func (l *loopbackStatusSetter) SetProjectState(ctx context.Context, projectID uuid.UUID, newState model.ProjectState, reason string, completionID, _ uuid.UUID) error {
	l.calls++
	return l.projects.SetProjectState(ctx, l.strategy, projectID, newState, reason, completionID)
}

// TestFullWorkflowScenario walks one project from first submission to a final
// anteproyecto rejection by evaluator consensus.
func TestFullWorkflowScenario(t *testing.T) {
	ctx := context.Background()

	repo := newMemProjectRepo()
	bus := eventbus.New()
	versions := workflow.NewVersionStore(repo)

	projects := projectsvc.NewService(repo, versions, newMemIDStore(), newMemIDStore(), bus, newMemCache())
	reviews := NewService(newMemAssignmentRepo(), projects, bus)

	published := &capturePublisher{}
	status := &loopbackStatusSetter{projects: projects, strategy: strategy}
	adapter.New(published, status).Register(bus)

	// First submission happens at registration.
	p, err := projects.CreateProject(ctx, strategy, "Graph compression study", "s3://fa/v1", "student", nil)
	require.NoError(t, err)
	require.Equal(t, model.StateFormatoAPresentado, p.State)
	require.Equal(t, 1, p.Attempts)

	// Committee rejects the first Formato A.
	require.NoError(t, projects.StartEvaluation(ctx, strategy, p.ID, uuid.New(), nil))
	require.NoError(t, projects.ApplyReviewDecision(ctx, strategy, p.ID, model.DecisionReject, "committee", "revise objectives", uuid.New(), nil))

	got, err := projects.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.StateFormatoACorrecciones, got.State)

	// Second attempt passes.
	v, err := projects.SubmitDocument(ctx, strategy, projectsvc.Submission{
		ProjectID:   p.ID,
		Kind:        model.DocumentFormatoA,
		ContentRef:  "s3://fa/v2",
		SubmittedBy: "student",
		EventID:     uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, 2, v.Attempt)

	require.NoError(t, projects.StartEvaluation(ctx, strategy, p.ID, uuid.New(), nil))
	require.NoError(t, projects.ApplyReviewDecision(ctx, strategy, p.ID, model.DecisionApprove, "committee", "", uuid.New(), nil))

	got, err = projects.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.StateFormatoAAceptado, got.State)

	// Advance into the anteproyecto stage.
	require.NoError(t, projects.AdvanceStage(ctx, strategy, p.ID, uuid.New(), nil))

	got, err = projects.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.StateAnteproyectoPresentado, got.State)
	require.Equal(t, 1, got.Attempts)

	// Student submits the anteproyecto document.
	v, err = projects.SubmitDocument(ctx, strategy, projectsvc.Submission{
		ProjectID:   p.ID,
		Kind:        model.DocumentAnteproyecto,
		ContentRef:  "s3://ap/v1",
		SubmittedBy: "student",
		EventID:     uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, 1, v.Attempt)

	// Two evaluators get the unit.
	unitID := uuid.New()
	e1, e2 := uuid.New(), uuid.New()

	_, err = reviews.AssignEvaluators(ctx, strategy, Assignment{
		UnitID:     unitID,
		ProjectID:  p.ID,
		Title:      "Graph compression study",
		Evaluator1: e1,
		Evaluator2: e2,
	})
	require.NoError(t, err)

	got, err = projects.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.StateAnteproyectoAsignado, got.State)

	// First decision moves the project into evaluation without a verdict.
	a, err := reviews.RecordDecision(ctx, strategy, unitID, e1, model.DecisionApprove, "solid work", "committee", "Graph compression study", nil)
	require.NoError(t, err)
	require.Nil(t, a.Verdict)

	got, err = projects.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.StateAnteproyectoEnEvaluacion, got.State)

	// Second decision rejects: verdict pinned, completion flows through the
	// adapter back into the project.
	a, err = reviews.RecordDecision(ctx, strategy, unitID, e2, model.DecisionReject, "methodology gaps", "committee", "Graph compression study", nil)
	require.NoError(t, err)
	require.NotNil(t, a.Verdict)
	require.Equal(t, model.DecisionReject, *a.Verdict)
	require.True(t, a.CompletionEmitted)

	got, err = projects.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StateAnteproyectoRechazado, got.State)

	// Exactly one status-change call, exactly one evaluation-completed event.
	assert.Equal(t, 1, status.calls)
	assert.Len(t, published.byType(model.EventEvaluationCompleted), 1)

	// The rejected version carries the consensus remarks.
	latest, err := versions.Latest(ctx, p.ID, model.DocumentAnteproyecto)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeRejected, latest.Outcome)
}
