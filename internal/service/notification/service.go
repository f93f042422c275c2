// Package notification serves delivery-status queries for published
// notification events, keyed by correlation id.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks
type statusRepo interface {
	GetNotificationStatus(ctx context.Context, correlationID string) (string, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service reads delivery statuses through the cache. Statuses are written by
// the queue consumer, so a cached value may trail the database briefly.
type Service struct {
	repo  statusRepo
	cache cache
}

func NewService(repo statusRepo, cache cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// GetStatus returns the delivery status of the event with the given
// correlation id.
func (s *Service) GetStatus(ctx context.Context, strategy retry.Strategy, correlationID string) (string, error) {
	key := "notification_status:" + correlationID

	status, err := s.cache.GetWithRetry(ctx, strategy, key)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("correlation_id", correlationID).Msg("status cache read failed")
	}

	if err == nil && status != "" {
		return status, nil
	}

	status, err = s.repo.GetNotificationStatus(ctx, correlationID)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, key, status); err != nil {
		zlog.Logger.Warn().Err(err).Str("correlation_id", correlationID).Msg("failed to cache notification status")
	}

	return status, nil
}
