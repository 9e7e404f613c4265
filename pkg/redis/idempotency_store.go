package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	idempotencyPrefix = "idempotency:"
	// ProcessingMarker is stored while the first request for a key is in flight
	ProcessingMarker = "processing"
)

// ErrKeyNotFound is returned when no value is stored for an idempotency key
var ErrKeyNotFound = errors.New("idempotency key not found")

// IdempotencyStore stores replayable responses keyed by client supplied idempotency keys
type IdempotencyStore struct {
	client *goredis.Client
}

// NewIdempotencyStore creates a store backed by the given client
func NewIdempotencyStore(client *goredis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Get returns the stored value or ErrKeyNotFound
func (s *IdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, idempotencyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Lock reserves the key with the processing marker. It returns false when the key is taken.
func (s *IdempotencyStore) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, idempotencyPrefix+key, ProcessingMarker, ttl).Result()
}

// Save stores the final response body for replay
func (s *IdempotencyStore) Save(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, idempotencyPrefix+key, value, ttl).Err()
}

// Release drops the key so the request can be retried
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, idempotencyPrefix+key).Err()
}
