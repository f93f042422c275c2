package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/api/dto"
	"github.com/smontiel/thesis-workflow/internal/api/respond"
	"github.com/smontiel/thesis-workflow/internal/config"
	"github.com/smontiel/thesis-workflow/internal/consensus"
	"github.com/smontiel/thesis-workflow/internal/model"
	reviewrepo "github.com/smontiel/thesis-workflow/internal/repository/review"
	reviewsvc "github.com/smontiel/thesis-workflow/internal/service/review"
	"github.com/smontiel/thesis-workflow/internal/workflow"
)

// reviewService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/review/mock.go -package=mocks
type reviewService interface {
	AssignEvaluators(ctx context.Context, strategy retry.Strategy, cmd reviewsvc.Assignment) (model.ReviewAssignment, error)
	RecordDecision(ctx context.Context, strategy retry.Strategy, unitID, evaluatorID uuid.UUID, decision model.Decision, remarks string, evaluatedBy, title string, recipients []model.Recipient) (model.ReviewAssignment, error)
	GetAssignment(ctx context.Context, unitID uuid.UUID) (model.ReviewAssignment, error)
}

// Handler handles HTTP requests for review assignments.
type Handler struct {
	service   reviewService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s reviewService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Assign handles HTTP POST requests filling both evaluator slots of a unit.
func (h *Handler) Assign(c *ginext.Context) {
	unitID, ok := h.pathID(c, "unitId")
	if !ok {
		return
	}

	var req dto.AssignEvaluatorsRequest
	if !h.decode(c, &req) {
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid project_id"))
		return
	}

	e1, err1 := uuid.Parse(req.Evaluator1)
	e2, err2 := uuid.Parse(req.Evaluator2)
	if err1 != nil || err2 != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid evaluator id"))
		return
	}

	var dueDate time.Time
	if req.DueDate != "" {
		dueDate, err = time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid due_date format"))
			return
		}
	}

	a, err := h.service.AssignEvaluators(c.Request.Context(), h.cfg.Retry, reviewsvc.Assignment{
		UnitID:       unitID,
		ProjectID:    projectID,
		Title:        req.Title,
		Evaluator1:   e1,
		Evaluator2:   e2,
		DirectorName: req.DirectorName,
		DueDate:      dueDate,
		Recipients:   recipients(req.Recipients),
	})
	if err != nil {
		h.failReview(c, unitID, err, "failed to assign evaluators")
		return
	}

	respond.Created(c.Writer, a)
}

// Decide handles HTTP POST requests recording one evaluator's verdict.
func (h *Handler) Decide(c *ginext.Context) {
	unitID, ok := h.pathID(c, "unitId")
	if !ok {
		return
	}

	var req dto.RecordDecisionRequest
	if !h.decode(c, &req) {
		return
	}

	evaluatorID, err := uuid.Parse(req.EvaluatorID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid evaluator_id"))
		return
	}

	a, err := h.service.RecordDecision(
		c.Request.Context(), h.cfg.Retry, unitID, evaluatorID,
		model.Decision(req.Decision), req.Remarks, req.EvaluatedBy, req.Title, recipients(req.Recipients),
	)
	if err != nil {
		h.failReview(c, unitID, err, "failed to record decision")
		return
	}

	respond.OK(c.Writer, a)
}

// Get handles HTTP GET requests for one assignment.
func (h *Handler) Get(c *ginext.Context) {
	unitID, ok := h.pathID(c, "unitId")
	if !ok {
		return
	}

	a, err := h.service.GetAssignment(c.Request.Context(), unitID)
	if err != nil {
		if errors.Is(err, reviewrepo.ErrAssignmentNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("assignment not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("unit_id", unitID.String()).Msg("failed to get assignment")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, a)
}

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

// failReview maps the consensus error taxonomy onto HTTP statuses.
func (h *Handler) failReview(c *ginext.Context, unitID uuid.UUID, err error, msg string) {
	switch {
	case errors.Is(err, consensus.ErrDuplicateEvaluator):
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	case errors.Is(err, consensus.ErrAlreadyAssigned),
		errors.Is(err, consensus.ErrAlreadyDecided),
		errors.Is(err, workflow.ErrIllegalTransition):
		zlog.Logger.Warn().Err(err).Str("unit_id", unitID.String()).Msg(msg)
		respond.Fail(c.Writer, http.StatusConflict, err)
	case errors.Is(err, consensus.ErrUnknownEvaluator):
		respond.Fail(c.Writer, http.StatusForbidden, err)
	case errors.Is(err, reviewrepo.ErrAssignmentNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("assignment not found"))
	default:
		zlog.Logger.Error().Err(err).Str("unit_id", unitID.String()).Msg(msg)
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
