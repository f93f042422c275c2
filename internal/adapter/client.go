package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	"github.com/smontiel/thesis-workflow/internal/model"
)

// ErrDownstreamCall marks a failed status-change call. The caller must retry
// it with the same completion id; it is never silently swallowed.
var ErrDownstreamCall = errors.New("downstream status-change call failed")

// StatusClient issues the idempotent PATCH-style setProjectState call to the
// project's owning service. The completion id travels both in the body and
// the X-Completion-Id header so the receiver can deduplicate.
type StatusClient struct {
	baseURL  string
	client   *http.Client
	strategy retry.Strategy
}

func NewStatusClient(baseURL string, strategy retry.Strategy) *StatusClient {
	return &StatusClient{
		baseURL:  baseURL,
		client:   &http.Client{},
		strategy: strategy,
	}
}

type setStateRequest struct {
	NewState     model.ProjectState `json:"newState"`
	Reason       string             `json:"reason"`
	CompletionID uuid.UUID          `json:"completionId"`
}

// SetProjectState performs the call, retrying transient failures with the
// configured strategy. Every retry reuses the same completion id.
func (c *StatusClient) SetProjectState(ctx context.Context, projectID uuid.UUID, newState model.ProjectState, reason string, completionID, correlationID uuid.UUID) error {
	body, err := json.Marshal(setStateRequest{
		NewState:     newState,
		Reason:       reason,
		CompletionID: completionID,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/projects/%s/state", c.baseURL, projectID)

	err = retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
		if err != nil {
			return err
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Completion-Id", completionID.String())
		req.Header.Set("X-Correlation-Id", correlationID.String())

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("unexpected status %s", resp.Status)
		}

		return nil
	}, c.strategy)
	if err != nil {
		return fmt.Errorf("%w: project %s: %v", ErrDownstreamCall, projectID, err)
	}

	return nil
}
