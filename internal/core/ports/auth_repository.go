package ports

import (
	"context"

	"github.com/weatherhub/weather-api/internal/core/domain"
)

// AuthRepository is the narrow credential-store contract the auth core
// consumes. Implementations own persistence entirely; the core only reads
// (id, username, email, digest) and writes (username, email, digest).
type AuthRepository interface {
	// FindByUsername returns the user, or domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameOrEmail returns any user matching either field, or
	// domain.ErrUserNotFound when neither is taken.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	// Create inserts a new credential record. Returns domain.ErrUserExists
	// when username or email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
