package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxAttempts is the ceiling of submission attempts per document kind.
// The attempt that would exceed it cancels the project instead.
const MaxAttempts = 3

// ProjectState is the workflow state of a thesis project.
type ProjectState string

const (
	StateFormatoAPresentado       ProjectState = "FORMATO_A_PRESENTADO"
	StateFormatoAEnEvaluacion     ProjectState = "FORMATO_A_EN_EVALUACION"
	StateFormatoAAceptado         ProjectState = "FORMATO_A_ACEPTADO"
	StateFormatoARechazado        ProjectState = "FORMATO_A_RECHAZADO"
	StateFormatoACorrecciones     ProjectState = "FORMATO_A_CORRECCIONES"
	StateAnteproyectoPresentado   ProjectState = "ANTEPROYECTO_PRESENTADO"
	StateAnteproyectoEnEvaluacion ProjectState = "ANTEPROYECTO_EN_EVALUACION"
	StateAnteproyectoAsignado     ProjectState = "ANTEPROYECTO_ASIGNADO"
	StateAnteproyectoAceptado     ProjectState = "ANTEPROYECTO_ACEPTADO"
	StateAnteproyectoRechazado    ProjectState = "ANTEPROYECTO_RECHAZADO"
	StateProyectoFinalizado       ProjectState = "PROYECTO_FINALIZADO"
	StateProyectoCancelado        ProjectState = "PROYECTO_CANCELADO"
)

// Terminal reports whether no further workflow events are accepted from s.
func (s ProjectState) Terminal() bool {
	return s == StateProyectoFinalizado || s == StateProyectoCancelado
}

// DocumentKind identifies which stage document a submission carries.
type DocumentKind string

const (
	DocumentFormatoA     DocumentKind = "FORMATO_A"
	DocumentAnteproyecto DocumentKind = "ANTEPROYECTO"
)

// Project represents a thesis project moving through the approval workflow.
type Project struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	State     ProjectState `json:"state"`
	Attempts  int          `json:"attempts"` // attempts used for the active document kind
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
