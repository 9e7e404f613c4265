package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const blacklistPrefix = "revoked_token:"

// TokenBlacklist keeps revoked token ids until the token would have expired anyway.
type TokenBlacklist struct {
	client *goredis.Client
}

// NewTokenBlacklist creates a blacklist backed by the given client
func NewTokenBlacklist(client *goredis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Revoke marks a token id as revoked for ttl. A non-positive ttl is a no-op
// because the token is already expired.
func (b *TokenBlacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, blacklistPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token id has been revoked
func (b *TokenBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := b.client.Get(ctx, blacklistPrefix+tokenID).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	return false, err
}
