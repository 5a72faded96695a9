package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const processingMarker = "processing"

// IdempotencyStore remembers finished invoice documents by client
// supplied idempotency key.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "idempotency:invoice:",
	}
}

// Reserve claims key for a new request. It reports false together with the
// stored document when the key was already claimed; the document is nil
// while the first request is still running.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	ok, err := s.client.SetNX(ctx, fullKey, processingMarker, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if ok {
		return true, nil, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Expired between SETNX and GET; treat as in flight.
			return false, nil, nil
		}
		return false, nil, err
	}
	if string(existing) == processingMarker {
		return false, nil, nil
	}

	return false, existing, nil
}

// Complete stores the finished document under key.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, document []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, document, ttl).Err()
}

// Release drops a reservation so the request can be retried.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
