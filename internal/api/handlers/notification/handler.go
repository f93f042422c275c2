package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/api/respond"
	"github.com/smontiel/thesis-workflow/internal/config"
	notifrepo "github.com/smontiel/thesis-workflow/internal/repository/notification"
)

// notificationService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	GetStatus(ctx context.Context, strategy retry.Strategy, correlationID string) (string, error)
}

// Handler handles HTTP requests for notification delivery statuses.
type Handler struct {
	service notificationService
	cfg     *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationService, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

// GetStatus handles HTTP GET requests for the delivery status of one
// notification event.
func (h *Handler) GetStatus(c *ginext.Context) {
	correlationID := c.Param("correlationId")
	if correlationID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing correlation id"))
		return
	}

	status, err := h.service.GetStatus(c.Request.Context(), h.cfg.Retry, correlationID)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("correlation_id", correlationID).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]string{
		"correlation_id": correlationID,
		"status":         status,
	})
}
