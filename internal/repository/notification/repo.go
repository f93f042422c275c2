package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/smontiel/thesis-workflow/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository tracks every published notification event and its delivery
// status, keyed by correlation id so all queue hops can be joined.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new notification event with its status.
func (r *Repository) CreateNotification(ctx context.Context, ev model.NotificationEvent, status string) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	query := `
		INSERT INTO notifications (
		    correlation_id, event_type, channel, payload, status
		) VALUES ($1, $2, $3, $4, $5);
    `

	_, err = r.db.ExecContext(ctx, query, ev.CorrelationID, ev.EventType, ev.Channel, payload, status)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// UpdateNotificationStatus updates the delivery status by correlation id.
func (r *Repository) UpdateNotificationStatus(ctx context.Context, correlationID string, status string) error {
	query := `
		UPDATE notifications
		SET status = $1, updated_at = now()
		WHERE correlation_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, status, correlationID)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// GetNotificationStatus retrieves the delivery status by correlation id.
func (r *Repository) GetNotificationStatus(ctx context.Context, correlationID string) (string, error) {
	query := `
		SELECT status
		FROM notifications
		WHERE correlation_id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, correlationID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}
