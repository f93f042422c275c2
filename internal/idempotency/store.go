// Package idempotency tracks already-processed event and completion ids so
// replayed commands and duplicate deliveries do not fire their side effects
// twice. Ids expire after a TTL; the workflow only needs protection across
// the retry window, not forever.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type redisClient interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Store is a Redis-backed set of processed ids. Seen and Mark are split so
// a failed command does not consume its id: callers check before applying
// and mark only after the command succeeded.
type Store struct {
	rdb    redisClient
	prefix string
	ttl    time.Duration
}

func New(rdb redisClient, prefix string, ttl time.Duration) *Store {
	return &Store{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Seen reports whether id was already processed.
func (s *Store) Seen(ctx context.Context, id string) (bool, error) {
	_, err := s.rdb.Get(ctx, s.key(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("check id %s: %w", id, err)
	}

	return true, nil
}

// Mark records id as processed.
func (s *Store) Mark(ctx context.Context, id string) error {
	if err := s.rdb.SetWithExpiration(ctx, s.key(id), 1, s.ttl); err != nil {
		return fmt.Errorf("mark id %s: %w", id, err)
	}

	return nil
}

func (s *Store) key(id string) string {
	return s.prefix + ":" + id
}
