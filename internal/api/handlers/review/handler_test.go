package review

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/smontiel/thesis-workflow/internal/api/dto"
	"github.com/smontiel/thesis-workflow/internal/config"
	"github.com/smontiel/thesis-workflow/internal/consensus"
	mocks "github.com/smontiel/thesis-workflow/internal/mocks/api/handlers/review"
	"github.com/smontiel/thesis-workflow/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockreviewService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockreviewService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	handler := NewHandler(mockService, validator.New(), cfg)
	return handler, mockService, cfg
}

func testContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

func TestHandler_Assign_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	unitID := uuid.New()

	reqBody := dto.AssignEvaluatorsRequest{
		ProjectID:  uuid.New().String(),
		Title:      "Graph compression study",
		Evaluator1: uuid.New().String(),
		Evaluator2: uuid.New().String(),
	}
	c, w := testContext(t, http.MethodPost, "/api/reviews/"+unitID.String()+"/assign", reqBody)
	c.Params = gin.Params{{Key: "unitId", Value: unitID.String()}}

	mockService.EXPECT().
		AssignEvaluators(gomock.Any(), cfg.Retry, gomock.Any()).
		Return(model.ReviewAssignment{UnitID: unitID, State: model.AssignmentPending}, nil)

	handler.Assign(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Assign_AlreadyAssignedConflicts(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	unitID := uuid.New()

	reqBody := dto.AssignEvaluatorsRequest{
		ProjectID:  uuid.New().String(),
		Title:      "Graph compression study",
		Evaluator1: uuid.New().String(),
		Evaluator2: uuid.New().String(),
	}
	c, w := testContext(t, http.MethodPost, "/api/reviews/"+unitID.String()+"/assign", reqBody)
	c.Params = gin.Params{{Key: "unitId", Value: unitID.String()}}

	mockService.EXPECT().
		AssignEvaluators(gomock.Any(), cfg.Retry, gomock.Any()).
		Return(model.ReviewAssignment{}, consensus.ErrAlreadyAssigned)

	handler.Assign(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_Decide_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	unitID := uuid.New()
	evaluatorID := uuid.New()

	reqBody := dto.RecordDecisionRequest{
		EvaluatorID: evaluatorID.String(),
		Decision:    "reject",
		Remarks:     "methodology gaps",
	}
	c, w := testContext(t, http.MethodPost, "/api/reviews/"+unitID.String()+"/decisions", reqBody)
	c.Params = gin.Params{{Key: "unitId", Value: unitID.String()}}

	verdict := model.DecisionReject
	mockService.EXPECT().
		RecordDecision(gomock.Any(), cfg.Retry, unitID, evaluatorID, model.DecisionReject, "methodology gaps", "", "", gomock.Any()).
		Return(model.ReviewAssignment{UnitID: unitID, State: model.AssignmentCompleted, Verdict: &verdict}, nil)

	handler.Decide(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Decide_UnknownEvaluatorForbidden(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	unitID := uuid.New()
	evaluatorID := uuid.New()

	reqBody := dto.RecordDecisionRequest{
		EvaluatorID: evaluatorID.String(),
		Decision:    "approve",
	}
	c, w := testContext(t, http.MethodPost, "/api/reviews/"+unitID.String()+"/decisions", reqBody)
	c.Params = gin.Params{{Key: "unitId", Value: unitID.String()}}

	mockService.EXPECT().
		RecordDecision(gomock.Any(), cfg.Retry, unitID, evaluatorID, model.DecisionApprove, "", "", "", gomock.Any()).
		Return(model.ReviewAssignment{}, consensus.ErrUnknownEvaluator)

	handler.Decide(c)

	assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
}

func TestHandler_Decide_AlreadyDecidedConflicts(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	unitID := uuid.New()
	evaluatorID := uuid.New()

	reqBody := dto.RecordDecisionRequest{
		EvaluatorID: evaluatorID.String(),
		Decision:    "approve",
	}
	c, w := testContext(t, http.MethodPost, "/api/reviews/"+unitID.String()+"/decisions", reqBody)
	c.Params = gin.Params{{Key: "unitId", Value: unitID.String()}}

	mockService.EXPECT().
		RecordDecision(gomock.Any(), cfg.Retry, unitID, evaluatorID, model.DecisionApprove, "", "", "", gomock.Any()).
		Return(model.ReviewAssignment{}, consensus.ErrAlreadyDecided)

	handler.Decide(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_Get_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	unitID := uuid.New()

	c, w := testContext(t, http.MethodGet, "/api/reviews/"+unitID.String(), nil)
	c.Params = gin.Params{{Key: "unitId", Value: unitID.String()}}

	mockService.EXPECT().
		GetAssignment(gomock.Any(), unitID).
		Return(model.ReviewAssignment{UnitID: unitID}, nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
