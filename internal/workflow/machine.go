// Package workflow is the project state machine: a closed set of states and
// an explicit transition table over (state, event) pairs. Apply is a pure
// function; persistence and event publication happen in the service layer.
package workflow

import (
	"fmt"

	"github.com/smontiel/thesis-workflow/internal/model"
)

// EffectKind tags the side effects a transition obliges the caller to emit.
type EffectKind int

const (
	// EffectStatusChanged obliges a status-changed notification.
	EffectStatusChanged EffectKind = iota
	// EffectDocumentRecorded obliges persisting a new document version.
	EffectDocumentRecorded
	// EffectProjectCancelled marks the terminal cancellation. Requires
	// operator visibility.
	EffectProjectCancelled
)

// Effect is one obligation produced by a transition.
type Effect struct {
	Kind   EffectKind
	From   model.ProjectState
	To     model.ProjectState
	Reason string
}

// Result is the outcome of applying one event.
type Result struct {
	State    model.ProjectState
	Attempts int
	Effects  []Effect
}

type transitionKey struct {
	state model.ProjectState
	event string
}

type transitionFunc func(state model.ProjectState, attempts int, ev Event) (Result, error)

// transitions is the full table. Pairs absent from it fail with
// ErrIllegalTransition instead of silently no-opping.
var transitions = map[transitionKey]transitionFunc{
	{model.StateFormatoACorrecciones, eventDocumentSubmitted}:    resubmitFormatoA,
	{model.StateFormatoAPresentado, eventEvaluationStarted}:      moveTo(model.StateFormatoAEnEvaluacion),
	{model.StateFormatoAEnEvaluacion, eventReviewDecided}:        decideFormatoA,
	{model.StateFormatoAAceptado, eventStageAdvanced}:            advanceToAnteproyecto,
	{model.StateAnteproyectoPresentado, eventDocumentSubmitted}:  submitAnteproyecto,
	{model.StateAnteproyectoRechazado, eventDocumentSubmitted}:   submitAnteproyecto,
	{model.StateAnteproyectoPresentado, eventEvaluatorsAssigned}: moveTo(model.StateAnteproyectoAsignado),
	{model.StateAnteproyectoAsignado, eventEvaluationStarted}:    moveTo(model.StateAnteproyectoEnEvaluacion),
	{model.StateAnteproyectoEnEvaluacion, eventReviewDecided}:    decideAnteproyecto,
	{model.StateAnteproyectoAceptado, eventStageAdvanced}:        finishProject,
}

// Apply runs one event against the current (state, attempts) pair. On
// ErrAttemptLimitExceeded the returned Result is still meaningful: it holds
// the cancelled state the caller must persist alongside reporting the error.
func Apply(state model.ProjectState, attempts int, ev Event) (Result, error) {
	fn, ok := transitions[transitionKey{state, ev.name()}]
	if !ok {
		return Result{}, fmt.Errorf("%w: event %q in state %q", ErrIllegalTransition, ev.name(), state)
	}

	return fn(state, attempts, ev)
}

// PermitsSubmission reports whether a document of the given kind may be
// submitted from the given state.
func PermitsSubmission(state model.ProjectState, kind model.DocumentKind) bool {
	switch kind {
	case model.DocumentFormatoA:
		return state == model.StateFormatoACorrecciones
	case model.DocumentAnteproyecto:
		return state == model.StateAnteproyectoPresentado || state == model.StateAnteproyectoRechazado
	default:
		return false
	}
}

// ActiveKind returns the document kind governed by the given state.
func ActiveKind(state model.ProjectState) model.DocumentKind {
	switch state {
	case model.StateAnteproyectoPresentado, model.StateAnteproyectoEnEvaluacion,
		model.StateAnteproyectoAsignado, model.StateAnteproyectoAceptado,
		model.StateAnteproyectoRechazado, model.StateProyectoFinalizado:
		return model.DocumentAnteproyecto
	default:
		return model.DocumentFormatoA
	}
}

func moveTo(next model.ProjectState) transitionFunc {
	return func(state model.ProjectState, attempts int, _ Event) (Result, error) {
		return Result{
			State:    next,
			Attempts: attempts,
			Effects:  []Effect{{Kind: EffectStatusChanged, From: state, To: next}},
		}, nil
	}
}

func resubmitFormatoA(state model.ProjectState, attempts int, ev Event) (Result, error) {
	sub, ok := ev.(DocumentSubmitted)
	if !ok || sub.Kind != model.DocumentFormatoA {
		return Result{}, fmt.Errorf("%w: document %q not submittable in state %q", ErrIllegalTransition, sub.Kind, state)
	}

	if attempts >= model.MaxAttempts {
		return Result{
			State:    model.StateProyectoCancelado,
			Attempts: attempts,
			Effects: []Effect{
				{Kind: EffectStatusChanged, From: state, To: model.StateProyectoCancelado},
				{Kind: EffectProjectCancelled, From: state, To: model.StateProyectoCancelado, Reason: "attempt limit exceeded"},
			},
		}, fmt.Errorf("%w: attempt %d of %d", ErrAttemptLimitExceeded, attempts+1, model.MaxAttempts)
	}

	return Result{
		State:    model.StateFormatoAPresentado,
		Attempts: attempts + 1,
		Effects: []Effect{
			{Kind: EffectDocumentRecorded, From: state, To: model.StateFormatoAPresentado},
			{Kind: EffectStatusChanged, From: state, To: model.StateFormatoAPresentado},
		},
	}, nil
}

func submitAnteproyecto(state model.ProjectState, attempts int, ev Event) (Result, error) {
	sub, ok := ev.(DocumentSubmitted)
	if !ok || sub.Kind != model.DocumentAnteproyecto {
		return Result{}, fmt.Errorf("%w: document %q not submittable in state %q", ErrIllegalTransition, sub.Kind, state)
	}

	res := Result{
		State:    model.StateAnteproyectoPresentado,
		Attempts: attempts,
		Effects:  []Effect{{Kind: EffectDocumentRecorded, From: state, To: model.StateAnteproyectoPresentado}},
	}

	if state != model.StateAnteproyectoPresentado {
		res.Effects = append(res.Effects, Effect{Kind: EffectStatusChanged, From: state, To: model.StateAnteproyectoPresentado})
	}

	return res, nil
}

func decideFormatoA(state model.ProjectState, attempts int, ev Event) (Result, error) {
	dec, ok := ev.(ReviewDecided)
	if !ok {
		return Result{}, fmt.Errorf("%w: unexpected event in state %q", ErrIllegalTransition, state)
	}

	next := model.StateFormatoAAceptado

	if dec.Decision == model.DecisionReject {
		if attempts < model.MaxAttempts {
			next = model.StateFormatoACorrecciones
		} else {
			next = model.StateFormatoARechazado
		}
	}

	return Result{
		State:    next,
		Attempts: attempts,
		Effects:  []Effect{{Kind: EffectStatusChanged, From: state, To: next}},
	}, nil
}

func decideAnteproyecto(state model.ProjectState, attempts int, ev Event) (Result, error) {
	dec, ok := ev.(ReviewDecided)
	if !ok {
		return Result{}, fmt.Errorf("%w: unexpected event in state %q", ErrIllegalTransition, state)
	}

	next := model.StateAnteproyectoAceptado
	if dec.Decision == model.DecisionReject {
		next = model.StateAnteproyectoRechazado
	}

	return Result{
		State:    next,
		Attempts: attempts,
		Effects:  []Effect{{Kind: EffectStatusChanged, From: state, To: next}},
	}, nil
}

func advanceToAnteproyecto(state model.ProjectState, _ int, _ Event) (Result, error) {
	return Result{
		State:    model.StateAnteproyectoPresentado,
		Attempts: 1,
		Effects:  []Effect{{Kind: EffectStatusChanged, From: state, To: model.StateAnteproyectoPresentado}},
	}, nil
}

func finishProject(state model.ProjectState, attempts int, _ Event) (Result, error) {
	return Result{
		State:    model.StateProyectoFinalizado,
		Attempts: attempts,
		Effects:  []Effect{{Kind: EffectStatusChanged, From: state, To: model.StateProyectoFinalizado}},
	}, nil
}
