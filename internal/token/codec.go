// Package token implements the compact signed bearer tokens used by the
// API: three base64url segments joined by '.', where the third segment is
// an HMAC-SHA256 over the first two. The output is standard RFC 7519
// HS256 compact serialization, so any stock JWT consumer can validate
// tokens issued here.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	// ErrMissing indicates the request carried no bearer token at all.
	ErrMissing = errors.New("missing bearer token")
	// ErrMalformed indicates the token string is structurally invalid:
	// wrong segment count, corrupt base64, or an undecodable payload.
	ErrMalformed = errors.New("malformed token")
	// ErrExpired indicates the token's exp claim is in the past.
	ErrExpired = errors.New("token expired")
	// ErrInvalidSignature indicates the signature does not match the
	// header and payload under the configured key.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrRevoked indicates the token appears on the revocation denylist.
	ErrRevoked = errors.New("token revoked")
)

// EncodeSegment encodes raw bytes as unpadded URL-safe base64, the segment
// encoding used throughout the token format.
func EncodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeSegment reverses EncodeSegment. Any decode failure is reported as
// ErrMalformed.
func DecodeSegment(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return b, nil
}

// Sign computes the signature segment for an encoded header and payload:
// HMAC-SHA256 over "<headerSeg>.<payloadSeg>" with the given key, segment
// encoded.
func Sign(headerSeg, payloadSeg string, key []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(headerSeg))
	mac.Write([]byte{'.'})
	mac.Write([]byte(payloadSeg))
	return EncodeSegment(mac.Sum(nil))
}

// VerifySignature reports whether signatureSeg is a valid signature for the
// encoded header and payload under key. It never returns an error: an
// undecodable signature segment simply fails verification. The comparison
// is constant time.
func VerifySignature(headerSeg, payloadSeg, signatureSeg string, key []byte) bool {
	sig, err := DecodeSegment(signatureSeg)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(headerSeg))
	mac.Write([]byte{'.'})
	mac.Write([]byte(payloadSeg))
	return hmac.Equal(mac.Sum(nil), sig)
}
