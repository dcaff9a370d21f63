package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore binds Idempotency-Key headers to created task ids.
// Key format: idempotency:task:<key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	id, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, true, nil
}

// Bind keeps the first task id bound to key; later binds within the TTL are ignored.
func (s *IdempotencyStore) Bind(ctx context.Context, key, taskID string) error {
	if err := s.client.SetNX(ctx, s.key(key), taskID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency bind: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(k string) string {
	return "idempotency:task:" + k
}
