package eventbus

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/smontiel/thesis-workflow/internal/model"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	b := New()

	var got []string
	b.Subscribe(NameProjectStatusChanged, func(_ context.Context, ev Event) {
		got = append(got, "first:"+ev.Name())
	})
	b.Subscribe(NameProjectStatusChanged, func(_ context.Context, ev Event) {
		got = append(got, "second:"+ev.Name())
	})

	b.Publish(context.Background(), ProjectStatusChanged{
		ProjectID: uuid.New(),
		From:      model.StateFormatoAPresentado,
		To:        model.StateFormatoAEnEvaluacion,
	})

	assert.Equal(t, []string{
		"first:" + NameProjectStatusChanged,
		"second:" + NameProjectStatusChanged,
	}, got)
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	b := New()

	assert.NotPanics(t, func() {
		b.Publish(context.Background(), ProjectCancelled{ProjectID: uuid.New()})
	})
}

func TestBus_SubscribersAreIndependentPerName(t *testing.T) {
	b := New()

	calls := 0
	b.Subscribe(NameConsensusCompleted, func(context.Context, Event) { calls++ })

	b.Publish(context.Background(), DocumentSubmitted{ProjectID: uuid.New()})
	assert.Zero(t, calls)

	b.Publish(context.Background(), ConsensusCompleted{UnitID: uuid.New()})
	assert.Equal(t, 1, calls)
}
