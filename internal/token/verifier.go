package token

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Denylist reports whether a previously issued token has been revoked.
// Implementations are external collaborators (e.g. Redis); the verifier
// itself stays stateless. A nil Denylist disables revocation checks.
type Denylist interface {
	IsRevoked(ctx context.Context, sub string, issuedAt int64) (bool, error)
}

// Verifier validates compact tokens against the immutable signing key.
// Safe for concurrent use.
type Verifier struct {
	key      []byte
	denylist Denylist
	now      func() time.Time
}

// NewVerifier creates a Verifier for the given secret. denylist may be nil.
func NewVerifier(secret string, denylist Denylist) *Verifier {
	return &Verifier{key: []byte(secret), denylist: denylist, now: time.Now}
}

// Verify validates a compact token string and returns its claims.
//
// Checks run in a fixed order: segment structure, payload decode, expiry,
// signature, then revocation. A token whose exp equals the current second
// is still valid; exp is only enforced when present. Failures map to
// ErrMalformed, ErrExpired, ErrInvalidSignature or ErrRevoked; any other
// error is a denylist store failure.
func (v *Verifier) Verify(ctx context.Context, tok string) (*Claims, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return nil, ErrMalformed
	}
	headerSeg, payloadSeg, signatureSeg := parts[0], parts[1], parts[2]

	payload, err := DecodeSegment(payloadSeg)
	if err != nil {
		return nil, err
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if claims.ExpiresAt != 0 && claims.ExpiresAt < v.now().Unix() {
		return nil, ErrExpired
	}

	if !VerifySignature(headerSeg, payloadSeg, signatureSeg, v.key) {
		return nil, ErrInvalidSignature
	}

	if v.denylist != nil {
		revoked, err := v.denylist.IsRevoked(ctx, claims.Sub, claims.IssuedAt)
		if err != nil {
			return nil, fmt.Errorf("denylist check: %w", err)
		}
		if revoked {
			return nil, ErrRevoked
		}
	}

	return &claims, nil
}
