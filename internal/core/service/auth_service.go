package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/weatherhub/weather-api/internal/core/domain"
	"github.com/weatherhub/weather-api/internal/core/ports"
	"github.com/weatherhub/weather-api/internal/password"
	"github.com/weatherhub/weather-api/internal/token"
)

// AuthService implements signup and login. Token issuance and credential
// hashing are delegated to the stateless token and password packages; the
// only I/O here is the credential store.
type AuthService struct {
	repo   ports.AuthRepository
	hasher password.Hasher
	issuer *token.Issuer
}

func NewAuthService(repo ports.AuthRepository, hasher password.Hasher, issuer *token.Issuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer}
}

func (s *AuthService) Signup(ctx context.Context, username, email, plaintext string) (*domain.User, error) {
	existing, err := s.repo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies credentials and returns a signed token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(plaintext, user.PasswordDigest) {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.issuer.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return tok, user, nil
}
