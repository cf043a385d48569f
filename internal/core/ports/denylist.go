package ports

import "context"

// TokenDenylist records revoked tokens so that logout takes effect before
// expiry. Entries are keyed by (sub, iat), since the token carries no
// separate id, and implementations expire entries at the token's exp so
// the list never outgrows the set of live tokens.
type TokenDenylist interface {
	Revoke(ctx context.Context, sub string, issuedAt, expiresAt int64) error
	IsRevoked(ctx context.Context, sub string, issuedAt int64) (bool, error)
}
