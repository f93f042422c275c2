package dto

// CreateProjectRequest registers a new project. The Formato A carried here
// counts as attempt 1.
type CreateProjectRequest struct {
	Title       string      `json:"title" validate:"required"`
	ContentRef  string      `json:"content_ref" validate:"required"`
	SubmittedBy string      `json:"submitted_by" validate:"required"`
	Recipients  []Recipient `json:"recipients" validate:"omitempty,dive"`
}

// SubmitDocumentRequest carries one document submission attempt.
type SubmitDocumentRequest struct {
	Kind        string      `json:"kind" validate:"required,oneof=FORMATO_A ANTEPROYECTO"`
	ContentRef  string      `json:"content_ref" validate:"required"`
	SubmittedBy string      `json:"submitted_by" validate:"required"`
	EventID     string      `json:"event_id" validate:"required,uuid4"`
	Recipients  []Recipient `json:"recipients" validate:"omitempty,dive"`
}

// ReviewDecisionRequest carries a committee verdict on the document under
// evaluation.
type ReviewDecisionRequest struct {
	Decision   string      `json:"decision" validate:"required,oneof=approve reject"`
	Reviewer   string      `json:"reviewer" validate:"required"`
	Remarks    string      `json:"remarks"`
	EventID    string      `json:"event_id" validate:"required,uuid4"`
	Recipients []Recipient `json:"recipients" validate:"omitempty,dive"`
}

// AdvanceStageRequest moves an accepted project to its next stage.
type AdvanceStageRequest struct {
	EventID    string      `json:"event_id" validate:"required,uuid4"`
	Recipients []Recipient `json:"recipients" validate:"omitempty,dive"`
}

// SetStateRequest is the inbound idempotent status-change call. The
// completion id deduplicates replays.
type SetStateRequest struct {
	State  string `json:"state" validate:"required"`
	Reason string `json:"reason"`
}

// AssignEvaluatorsRequest fills both evaluator slots of one unit.
type AssignEvaluatorsRequest struct {
	ProjectID    string      `json:"project_id" validate:"required,uuid4"`
	Title        string      `json:"title" validate:"required"`
	Evaluator1   string      `json:"evaluator1" validate:"required,uuid4"`
	Evaluator2   string      `json:"evaluator2" validate:"required,uuid4"`
	DirectorName string      `json:"director_name"`
	DueDate      string      `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Recipients   []Recipient `json:"recipients" validate:"omitempty,dive"`
}

// RecordDecisionRequest carries one evaluator's verdict on a unit.
type RecordDecisionRequest struct {
	EvaluatorID string      `json:"evaluator_id" validate:"required,uuid4"`
	Decision    string      `json:"decision" validate:"required,oneof=approve reject"`
	Remarks     string      `json:"remarks"`
	EvaluatedBy string      `json:"evaluated_by"`
	Title       string      `json:"title"`
	Recipients  []Recipient `json:"recipients" validate:"omitempty,dive"`
}

// Recipient addresses one notification target.
type Recipient struct {
	Address string `json:"address" validate:"required"`
	Role    string `json:"role" validate:"required"`
	Name    string `json:"name"`
}
