package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewOutcome is the review verdict on a single document version.
type ReviewOutcome string

const (
	OutcomePending  ReviewOutcome = "pending"
	OutcomeApproved ReviewOutcome = "approved"
	OutcomeRejected ReviewOutcome = "rejected"
)

// DocumentVersion is one submitted attempt of a document kind for a project.
// Versions are never deleted; superseded ones remain for audit.
type DocumentVersion struct {
	ID          uuid.UUID     `json:"id"`
	ProjectID   uuid.UUID     `json:"project_id"`
	Kind        DocumentKind  `json:"kind"`
	Attempt     int           `json:"attempt"` // ordinal 1..MaxAttempts
	ContentRef  string        `json:"content_ref"`
	SubmittedAt time.Time     `json:"submitted_at"`
	Outcome     ReviewOutcome `json:"outcome"`
	ReviewedBy  string        `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time    `json:"reviewed_at,omitempty"`
	Remarks     string        `json:"remarks,omitempty"`
}
