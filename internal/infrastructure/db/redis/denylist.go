package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked bearer tokens in Redis. The token core
// stays stateless: revocation lives entirely in this external collaborator.
// Key format: denylist:<sub>:<iat>, expiring at the token's exp so the
// list never holds entries for tokens that could no longer verify anyway.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marks the token identified by (sub, issuedAt) as revoked until it
// expires on its own. Revoking an already-expired token is a no-op.
func (d *TokenDenylist) Revoke(ctx context.Context, sub string, issuedAt, expiresAt int64) error {
	ttl := time.Until(time.Unix(expiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, d.key(sub, issuedAt), "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist revoke: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token identified by (sub, issuedAt) has
// been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, sub string, issuedAt int64) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(sub, issuedAt)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(sub string, issuedAt int64) string {
	return fmt.Sprintf("denylist:%s:%d", sub, issuedAt)
}
