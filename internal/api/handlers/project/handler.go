package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/api/dto"
	"github.com/smontiel/thesis-workflow/internal/api/respond"
	"github.com/smontiel/thesis-workflow/internal/config"
	"github.com/smontiel/thesis-workflow/internal/model"
	projectrepo "github.com/smontiel/thesis-workflow/internal/repository/project"
	projectsvc "github.com/smontiel/thesis-workflow/internal/service/project"
	"github.com/smontiel/thesis-workflow/internal/workflow"
)

// projectService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/project/mock.go -package=mocks
type projectService interface {
	CreateProject(ctx context.Context, strategy retry.Strategy, title, contentRef, submittedBy string, recipients []model.Recipient) (model.Project, error)
	SubmitDocument(ctx context.Context, strategy retry.Strategy, sub projectsvc.Submission) (model.DocumentVersion, error)
	ApplyReviewDecision(ctx context.Context, strategy retry.Strategy, projectID uuid.UUID, decision model.Decision, reviewer, remarks string, eventID uuid.UUID, recipients []model.Recipient) error
	AdvanceStage(ctx context.Context, strategy retry.Strategy, projectID, eventID uuid.UUID, recipients []model.Recipient) error
	SetProjectState(ctx context.Context, strategy retry.Strategy, projectID uuid.UUID, newState model.ProjectState, reason string, completionID uuid.UUID) error
	GetProject(ctx context.Context, id uuid.UUID) (model.Project, error)
	GetProjectState(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.ProjectState, error)
}

// Handler handles HTTP requests for the project workflow.
type Handler struct {
	service   projectService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s projectService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create handles HTTP POST requests to register a new project.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateProjectRequest
	if !h.decode(c, &req) {
		return
	}

	p, err := h.service.CreateProject(
		c.Request.Context(), h.cfg.Retry, req.Title, req.ContentRef, req.SubmittedBy, recipients(req.Recipients),
	)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", req.Title).Msg("failed to create project")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, p)
}

// SubmitDocument handles HTTP POST requests carrying a document submission.
func (h *Handler) SubmitDocument(c *ginext.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SubmitDocumentRequest
	if !h.decode(c, &req) {
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid event_id"))
		return
	}

	v, err := h.service.SubmitDocument(c.Request.Context(), h.cfg.Retry, projectsvc.Submission{
		ProjectID:   projectID,
		Kind:        model.DocumentKind(req.Kind),
		ContentRef:  req.ContentRef,
		SubmittedBy: req.SubmittedBy,
		EventID:     eventID,
		Recipients:  recipients(req.Recipients),
	})
	if err != nil {
		h.failWorkflow(c, projectID, err, "failed to submit document")
		return
	}

	respond.Created(c.Writer, v)
}

// Review handles HTTP POST requests carrying a committee verdict.
func (h *Handler) Review(c *ginext.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ReviewDecisionRequest
	if !h.decode(c, &req) {
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid event_id"))
		return
	}

	err = h.service.ApplyReviewDecision(
		c.Request.Context(), h.cfg.Retry, projectID,
		model.Decision(req.Decision), req.Reviewer, req.Remarks, eventID, recipients(req.Recipients),
	)
	if err != nil {
		h.failWorkflow(c, projectID, err, "failed to apply review decision")
		return
	}

	respond.OK(c.Writer, "decision applied")
}

// Advance handles HTTP POST requests moving an accepted project forward.
func (h *Handler) Advance(c *ginext.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AdvanceStageRequest
	if !h.decode(c, &req) {
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid event_id"))
		return
	}

	if err := h.service.AdvanceStage(c.Request.Context(), h.cfg.Retry, projectID, eventID, recipients(req.Recipients)); err != nil {
		h.failWorkflow(c, projectID, err, "failed to advance stage")
		return
	}

	respond.OK(c.Writer, "stage advanced")
}

// SetState handles HTTP PATCH requests from the review side. Replays with an
// already-processed X-Completion-Id header are acknowledged with 200.
func (h *Handler) SetState(c *ginext.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	completionID, err := uuid.Parse(c.GetHeader("X-Completion-Id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing or invalid X-Completion-Id header"))
		return
	}

	var req dto.SetStateRequest
	if !h.decode(c, &req) {
		return
	}

	err = h.service.SetProjectState(
		c.Request.Context(), h.cfg.Retry, projectID, model.ProjectState(req.State), req.Reason, completionID,
	)
	if err != nil {
		h.failWorkflow(c, projectID, err, "failed to set project state")
		return
	}

	respond.OK(c.Writer, "state applied")
}

// Get handles HTTP GET requests for one project.
func (h *Handler) Get(c *ginext.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetProject(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, projectrepo.ErrProjectNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("project not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("project_id", projectID.String()).Msg("failed to get project")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, p)
}

// GetState handles HTTP GET requests for the project state, served through
// the cache.
func (h *Handler) GetState(c *ginext.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	state, err := h.service.GetProjectState(c.Request.Context(), h.cfg.Retry, projectID)
	if err != nil {
		if errors.Is(err, projectrepo.ErrProjectNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("project not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("project_id", projectID.String()).Msg("failed to get project state")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, state)
}

// decode reads and validates the JSON body. It writes the error response
// itself and reports whether the handler may continue.
func (h *Handler) decode(c *ginext.Context, req interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func (h *Handler) pathID(c *ginext.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("param", name).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

// failWorkflow maps the workflow error taxonomy onto HTTP statuses.
func (h *Handler) failWorkflow(c *ginext.Context, projectID uuid.UUID, err error, msg string) {
	switch {
	case errors.Is(err, workflow.ErrIllegalTransition):
		zlog.Logger.Warn().Err(err).Str("project_id", projectID.String()).Msg(msg)
		respond.Fail(c.Writer, http.StatusConflict, err)
	case errors.Is(err, workflow.ErrAttemptLimitExceeded):
		zlog.Logger.Warn().Err(err).Str("project_id", projectID.String()).Msg(msg)
		respond.Fail(c.Writer, http.StatusConflict, err)
	case errors.Is(err, projectrepo.ErrProjectNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("project not found"))
	default:
		zlog.Logger.Error().Err(err).Str("project_id", projectID.String()).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func recipients(in []dto.Recipient) []model.Recipient {
	out := make([]model.Recipient, 0, len(in))
	for _, r := range in {
		out = append(out, model.Recipient{Address: r.Address, Role: r.Role, Name: r.Name})
	}

	return out
}
