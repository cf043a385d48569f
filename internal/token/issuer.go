package token

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = time.Hour

// Claims is the payload embedded in every issued token. Field order fixes
// the serialized byte layout; do not reorder.
type Claims struct {
	Sub       string `json:"sub"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Issuer signs tokens for authenticated users. It holds the immutable
// signing key and expiry policy; safe for concurrent use.
type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewIssuer creates an Issuer for the given secret. A non-positive ttl
// falls back to DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{key: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue builds and signs a token for the given identity. The returned
// token verifies under the same key and decodes back to these claims.
func (i *Issuer) Issue(sub, username, email string) (string, error) {
	now := i.now().Unix()
	claims := Claims{
		Sub:       sub,
		Username:  username,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now + int64(i.ttl/time.Second),
	}

	headerJSON, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	headerSeg := EncodeSegment(headerJSON)
	payloadSeg := EncodeSegment(payloadJSON)
	return headerSeg + "." + payloadSeg + "." + Sign(headerSeg, payloadSeg, i.key), nil
}
