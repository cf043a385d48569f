// Package password provides one-way credential hashing behind a single
// Hasher contract. Two schemes ship: the sha256 scheme is digest-compatible
// with stores populated by the reference deployment; the bcrypt scheme is
// the recommended production setting (salted, cost-tunable). Verification
// dispatches on the stored digest's shape, so switching schemes never locks
// out existing users.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// Hasher transforms a plaintext password into a storable digest and checks
// a plaintext against a stored digest. Implementations are stateless and
// safe for concurrent use.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// New returns the Hasher for the named scheme. Unrecognised schemes fall
// back to sha256, the digest format existing stores already hold.
func New(scheme string) Hasher {
	if strings.EqualFold(scheme, SchemeBcrypt) {
		return BcryptHasher{Cost: bcrypt.DefaultCost}
	}
	return SHA256Hasher{}
}

// SHA256Hasher is the baseline scheme: lowercase hex of SHA-256 over the
// UTF-8 bytes of the password. Deterministic and unsalted; kept only for
// digest compatibility with the stores this service inherits. New
// deployments should configure bcrypt instead.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares in constant time.
func (h SHA256Hasher) Verify(plaintext, digest string) bool {
	computed, _ := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// BcryptHasher is the hardened scheme: salted, iterated, constant-time
// comparison inside the library. The digest is self-describing
// ($2a$<cost>$...), so Verify needs no configuration.
type BcryptHasher struct {
	Cost int
}

func (b BcryptHasher) Hash(plaintext string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(digest), nil
}

// Verify accepts bcrypt digests and, for records created before the scheme
// switch, legacy sha256 hex digests.
func (BcryptHasher) Verify(plaintext, digest string) bool {
	if strings.HasPrefix(digest, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
	}
	return SHA256Hasher{}.Verify(plaintext, digest)
}
