package project

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wbfredis "github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"

	"github.com/smontiel/thesis-workflow/internal/eventbus"
	mocks "github.com/smontiel/thesis-workflow/internal/mocks/service/project"
	"github.com/smontiel/thesis-workflow/internal/model"
	"github.com/smontiel/thesis-workflow/internal/workflow"
)

// The production wiring hands the wbf client straight to NewService.
var _ cache = (*wbfredis.Client)(nil)

type fixture struct {
	repo        *mocks.MockprojectRepo
	versions    *mocks.MockversionStore
	events      *mocks.MockprocessedStore
	completions *mocks.MockprocessedStore
	bus         *mocks.MockeventPublisher
	cache       *mocks.Mockcache
	svc         *Service
}

func newFixture(t *testing.T) (*fixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:        mocks.NewMockprojectRepo(ctrl),
		versions:    mocks.NewMockversionStore(ctrl),
		events:      mocks.NewMockprocessedStore(ctrl),
		completions: mocks.NewMockprocessedStore(ctrl),
		bus:         mocks.NewMockeventPublisher(ctrl),
		cache:       mocks.NewMockcache(ctrl),
	}
	f.svc = NewService(f.repo, f.versions, f.events, f.completions, f.bus, f.cache)

	return f, ctrl
}

var strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

func TestCreateProject_StartsAtFirstAttempt(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().
		CreateProject(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p model.Project) (uuid.UUID, error) {
			assert.Equal(t, model.StateFormatoAPresentado, p.State)
			assert.Equal(t, 1, p.Attempts)
			return id, nil
		})
	f.versions.EXPECT().
		Record(ctx, id, model.DocumentFormatoA, "s3://formato-a/v1", gomock.Any()).
		Return(model.DocumentVersion{ID: uuid.New(), Attempt: 1}, nil)
	f.bus.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, ev eventbus.Event) {
		sub, ok := ev.(eventbus.DocumentSubmitted)
		require.True(t, ok)
		assert.Equal(t, 1, sub.Attempt)
	})
	f.cache.EXPECT().SetWithRetry(ctx, strategy, stateKey(id), string(model.StateFormatoAPresentado)).Return(nil)

	p, err := f.svc.CreateProject(ctx, strategy, "Graph compression study", "s3://formato-a/v1", "student", nil)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
}

func TestSubmitDocument_ResubmitIncrementsAttempt(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sub := Submission{
		ProjectID:  uuid.New(),
		Kind:       model.DocumentFormatoA,
		ContentRef: "s3://formato-a/v2",
		EventID:    uuid.New(),
	}

	f.events.EXPECT().Seen(ctx, sub.EventID.String()).Return(false, nil)
	f.repo.EXPECT().GetProject(ctx, sub.ProjectID).Return(model.Project{
		ID:       sub.ProjectID,
		State:    model.StateFormatoACorrecciones,
		Attempts: 1,
	}, nil)
	f.versions.EXPECT().Allows(ctx, sub.ProjectID, model.DocumentFormatoA).Return(true, nil)
	f.versions.EXPECT().
		Record(ctx, sub.ProjectID, model.DocumentFormatoA, sub.ContentRef, gomock.Any()).
		Return(model.DocumentVersion{ID: uuid.New(), Attempt: 2}, nil)
	f.repo.EXPECT().UpdateProject(ctx, sub.ProjectID, model.StateFormatoAPresentado, 2).Return(nil)
	f.bus.EXPECT().Publish(ctx, gomock.Any()).Times(2)
	f.cache.EXPECT().SetWithRetry(ctx, strategy, gomock.Any(), string(model.StateFormatoAPresentado)).Return(nil)
	f.events.EXPECT().Mark(ctx, sub.EventID.String()).Return(nil)

	v, err := f.svc.SubmitDocument(ctx, strategy, sub)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Attempt)
}

func TestSubmitDocument_ReplayReturnsStoredVersion(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sub := Submission{
		ProjectID: uuid.New(),
		Kind:      model.DocumentFormatoA,
		EventID:   uuid.New(),
	}
	stored := model.DocumentVersion{ID: uuid.New(), Attempt: 2}

	f.events.EXPECT().Seen(ctx, sub.EventID.String()).Return(true, nil)
	f.versions.EXPECT().Latest(ctx, sub.ProjectID, model.DocumentFormatoA).Return(stored, nil)

	v, err := f.svc.SubmitDocument(ctx, strategy, sub)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, v.ID)
}

func TestSubmitDocument_FourthAttemptCancels(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sub := Submission{
		ProjectID: uuid.New(),
		Kind:      model.DocumentFormatoA,
		EventID:   uuid.New(),
	}

	f.events.EXPECT().Seen(ctx, sub.EventID.String()).Return(false, nil)
	f.repo.EXPECT().GetProject(ctx, sub.ProjectID).Return(model.Project{
		ID:       sub.ProjectID,
		State:    model.StateFormatoACorrecciones,
		Attempts: model.MaxAttempts,
	}, nil)
	f.repo.EXPECT().UpdateProject(ctx, sub.ProjectID, model.StateProyectoCancelado, model.MaxAttempts).Return(nil)

	var published []eventbus.Event
	f.bus.EXPECT().Publish(ctx, gomock.Any()).Times(2).Do(func(_ context.Context, ev eventbus.Event) {
		published = append(published, ev)
	})
	f.cache.EXPECT().SetWithRetry(ctx, strategy, gomock.Any(), string(model.StateProyectoCancelado)).Return(nil)
	f.events.EXPECT().Mark(ctx, sub.EventID.String()).Return(nil)

	_, err := f.svc.SubmitDocument(ctx, strategy, sub)
	require.ErrorIs(t, err, workflow.ErrAttemptLimitExceeded)

	names := []string{published[0].Name(), published[1].Name()}
	assert.Contains(t, names, eventbus.NameProjectCancelled)
}

func TestSubmitDocument_IllegalStateRejected(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sub := Submission{
		ProjectID: uuid.New(),
		Kind:      model.DocumentFormatoA,
		EventID:   uuid.New(),
	}

	f.events.EXPECT().Seen(ctx, sub.EventID.String()).Return(false, nil)
	f.repo.EXPECT().GetProject(ctx, sub.ProjectID).Return(model.Project{
		ID:       sub.ProjectID,
		State:    model.StateFormatoAEnEvaluacion,
		Attempts: 1,
	}, nil)

	_, err := f.svc.SubmitDocument(ctx, strategy, sub)
	require.ErrorIs(t, err, workflow.ErrIllegalTransition)
}

func TestApplyReviewDecision_RejectGoesToCorrecciones(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	projectID := uuid.New()
	eventID := uuid.New()
	versionID := uuid.New()

	f.events.EXPECT().Seen(ctx, eventID.String()).Return(false, nil)
	f.repo.EXPECT().GetProject(ctx, projectID).Return(model.Project{
		ID:       projectID,
		State:    model.StateFormatoAEnEvaluacion,
		Attempts: 1,
	}, nil)
	f.versions.EXPECT().
		Latest(ctx, projectID, model.DocumentFormatoA).
		Return(model.DocumentVersion{ID: versionID, Attempt: 1}, nil)
	f.versions.EXPECT().
		Review(ctx, versionID, model.OutcomeRejected, "committee", "revise objectives", gomock.Any()).
		Return(nil)
	f.repo.EXPECT().UpdateProject(ctx, projectID, model.StateFormatoACorrecciones, 1).Return(nil)
	f.bus.EXPECT().Publish(ctx, gomock.Any())
	f.cache.EXPECT().SetWithRetry(ctx, strategy, gomock.Any(), string(model.StateFormatoACorrecciones)).Return(nil)
	f.events.EXPECT().Mark(ctx, eventID.String()).Return(nil)

	err := f.svc.ApplyReviewDecision(ctx, strategy, projectID, model.DecisionReject, "committee", "revise objectives", eventID, nil)
	require.NoError(t, err)
}

func TestApplyReviewDecision_OnPresentedDocumentStartsEvaluation(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	projectID := uuid.New()
	eventID := uuid.New()
	versionID := uuid.New()

	f.events.EXPECT().Seen(ctx, eventID.String()).Return(false, nil)
	f.repo.EXPECT().GetProject(ctx, projectID).Return(model.Project{
		ID:       projectID,
		State:    model.StateFormatoAPresentado,
		Attempts: 1,
	}, nil)
	f.versions.EXPECT().
		Latest(ctx, projectID, model.DocumentFormatoA).
		Return(model.DocumentVersion{ID: versionID, Attempt: 1}, nil)
	f.versions.EXPECT().
		Review(ctx, versionID, model.OutcomeRejected, "committee", "revise objectives", gomock.Any()).
		Return(nil)
	f.repo.EXPECT().UpdateProject(ctx, projectID, model.StateFormatoACorrecciones, 1).Return(nil)

	var statuses []eventbus.ProjectStatusChanged
	f.bus.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, ev eventbus.Event) {
		if sc, ok := ev.(eventbus.ProjectStatusChanged); ok {
			statuses = append(statuses, sc)
		}
	}).Times(2)

	f.cache.EXPECT().SetWithRetry(ctx, strategy, gomock.Any(), string(model.StateFormatoACorrecciones)).Return(nil)
	f.events.EXPECT().Mark(ctx, eventID.String()).Return(nil)

	err := f.svc.ApplyReviewDecision(ctx, strategy, projectID, model.DecisionReject, "committee", "revise objectives", eventID, nil)
	require.NoError(t, err)

	require.Len(t, statuses, 2)
	assert.Equal(t, model.StateFormatoAEnEvaluacion, statuses[0].To)
	assert.Equal(t, model.StateFormatoACorrecciones, statuses[1].To)
}

func TestSetProjectState_DuplicateCompletionIgnored(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	completionID := uuid.New()

	f.completions.EXPECT().Seen(ctx, completionID.String()).Return(true, nil)

	err := f.svc.SetProjectState(ctx, strategy, uuid.New(), model.StateAnteproyectoRechazado, "consensus reject", completionID)
	require.NoError(t, err)
}

func TestSetProjectState_AppliesVerdict(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	projectID := uuid.New()
	completionID := uuid.New()
	versionID := uuid.New()

	f.completions.EXPECT().Seen(ctx, completionID.String()).Return(false, nil)
	f.repo.EXPECT().GetProject(ctx, projectID).Return(model.Project{
		ID:       projectID,
		State:    model.StateAnteproyectoEnEvaluacion,
		Attempts: 1,
	}, nil)
	f.versions.EXPECT().
		Latest(ctx, projectID, model.DocumentAnteproyecto).
		Return(model.DocumentVersion{ID: versionID}, nil)
	f.versions.EXPECT().
		Review(ctx, versionID, model.OutcomeRejected, "evaluation committee", "consensus reject", gomock.Any()).
		Return(nil)
	f.repo.EXPECT().UpdateProject(ctx, projectID, model.StateAnteproyectoRechazado, 1).Return(nil)
	f.bus.EXPECT().Publish(ctx, gomock.Any())
	f.cache.EXPECT().SetWithRetry(ctx, strategy, gomock.Any(), string(model.StateAnteproyectoRechazado)).Return(nil)
	f.completions.EXPECT().Mark(ctx, completionID.String()).Return(nil)

	err := f.svc.SetProjectState(ctx, strategy, projectID, model.StateAnteproyectoRechazado, "consensus reject", completionID)
	require.NoError(t, err)
}

func TestSetProjectState_UnreachableStateRejected(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	completionID := uuid.New()
	f.completions.EXPECT().Seen(gomock.Any(), completionID.String()).Return(false, nil)

	err := f.svc.SetProjectState(context.Background(), strategy, uuid.New(), model.StateProyectoFinalizado, "", completionID)
	require.ErrorIs(t, err, workflow.ErrIllegalTransition)
}

func TestGetProjectState_CacheHit(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	f.cache.EXPECT().
		GetWithRetry(ctx, strategy, stateKey(id)).
		Return(string(model.StateFormatoAAceptado), nil)

	state, err := f.svc.GetProjectState(ctx, strategy, id)
	require.NoError(t, err)
	assert.Equal(t, model.StateFormatoAAceptado, state)
}

func TestGetProjectState_CacheMissFallsBack(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	f.cache.EXPECT().GetWithRetry(ctx, strategy, stateKey(id)).Return("", redis.Nil)
	f.repo.EXPECT().GetProject(ctx, id).Return(model.Project{ID: id, State: model.StateAnteproyectoAsignado}, nil)
	f.cache.EXPECT().SetWithRetry(ctx, strategy, stateKey(id), string(model.StateAnteproyectoAsignado)).Return(nil)

	state, err := f.svc.GetProjectState(ctx, strategy, id)
	require.NoError(t, err)
	assert.Equal(t, model.StateAnteproyectoAsignado, state)
}
