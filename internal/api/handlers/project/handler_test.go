package project

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
	mocks "github.com/smontiel/thesis-workflow/internal/mocks/api/handlers/project"
	"github.com/smontiel/thesis-workflow/internal/model"
	"github.com/smontiel/thesis-workflow/internal/workflow"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockprojectService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockprojectService(ctrl)
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

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.CreateProjectRequest{
		Title:       "Graph compression study",
		ContentRef:  "s3://fa/v1",
		SubmittedBy: "student",
	}
	c, w := testContext(t, http.MethodPost, "/api/projects", reqBody)

	mockService.EXPECT().
		CreateProject(gomock.Any(), cfg.Retry, reqBody.Title, reqBody.ContentRef, reqBody.SubmittedBy, gomock.Any()).
		Return(model.Project{ID: uuid.New(), State: model.StateFormatoAPresentado, Attempts: 1}, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_InvalidBody(t *testing.T) {
	handler, _, _ := setupHandler(t)

	c, w := testContext(t, http.MethodPost, "/api/projects", dto.CreateProjectRequest{Title: "missing the rest"})

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_SubmitDocument_IllegalTransitionConflicts(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	projectID := uuid.New()

	reqBody := dto.SubmitDocumentRequest{
		Kind:        "FORMATO_A",
		ContentRef:  "s3://fa/v2",
		SubmittedBy: "student",
		EventID:     uuid.New().String(),
	}
	c, w := testContext(t, http.MethodPost, "/api/projects/"+projectID.String()+"/documents", reqBody)
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}

	mockService.EXPECT().
		SubmitDocument(gomock.Any(), cfg.Retry, gomock.Any()).
		Return(model.DocumentVersion{}, workflow.ErrIllegalTransition)

	handler.SubmitDocument(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_SubmitDocument_AttemptLimitConflicts(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	projectID := uuid.New()

	reqBody := dto.SubmitDocumentRequest{
		Kind:        "FORMATO_A",
		ContentRef:  "s3://fa/v4",
		SubmittedBy: "student",
		EventID:     uuid.New().String(),
	}
	c, w := testContext(t, http.MethodPost, "/api/projects/"+projectID.String()+"/documents", reqBody)
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}

	mockService.EXPECT().
		SubmitDocument(gomock.Any(), cfg.Retry, gomock.Any()).
		Return(model.DocumentVersion{}, workflow.ErrAttemptLimitExceeded)

	handler.SubmitDocument(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_Review_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	projectID := uuid.New()
	eventID := uuid.New()

	reqBody := dto.ReviewDecisionRequest{
		Decision: "reject",
		Reviewer: "committee",
		Remarks:  "revise objectives",
		EventID:  eventID.String(),
	}
	c, w := testContext(t, http.MethodPost, "/api/projects/"+projectID.String()+"/review", reqBody)
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}

	mockService.EXPECT().
		ApplyReviewDecision(gomock.Any(), cfg.Retry, projectID, model.DecisionReject, "committee", "revise objectives", eventID, gomock.Any()).
		Return(nil)

	handler.Review(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_SetState_MissingCompletionID(t *testing.T) {
	handler, _, _ := setupHandler(t)
	projectID := uuid.New()

	c, w := testContext(t, http.MethodPatch, "/api/projects/"+projectID.String()+"/state", dto.SetStateRequest{State: "FORMATO_A_ACEPTADO"})
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}

	handler.SetState(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_SetState_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	projectID := uuid.New()
	completionID := uuid.New()

	c, w := testContext(t, http.MethodPatch, "/api/projects/"+projectID.String()+"/state", dto.SetStateRequest{
		State:  "ANTEPROYECTO_RECHAZADO",
		Reason: "consensus reject",
	})
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}
	c.Request.Header.Set("X-Completion-Id", completionID.String())

	mockService.EXPECT().
		SetProjectState(gomock.Any(), cfg.Retry, projectID, model.StateAnteproyectoRechazado, "consensus reject", completionID).
		Return(nil)

	handler.SetState(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetState_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	projectID := uuid.New()

	c, w := testContext(t, http.MethodGet, "/api/projects/"+projectID.String()+"/state", nil)
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}

	mockService.EXPECT().
		GetProjectState(gomock.Any(), cfg.Retry, projectID).
		Return(model.StateFormatoAAceptado, nil)

	handler.GetState(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
