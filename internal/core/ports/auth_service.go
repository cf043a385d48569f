package ports

import (
	"context"

	"github.com/weatherhub/weather-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
