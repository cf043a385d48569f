package ports

import (
	"context"

	"github.com/weatherhub/weather-api/internal/core/domain"
)

// WeatherProvider abstracts the upstream weather API. Implementations
// return domain.ErrLocationNotFound for unknown locations.
type WeatherProvider interface {
	Current(ctx context.Context, location string) (*domain.WeatherReport, error)
}

type WeatherService interface {
	ByLocation(ctx context.Context, location string) (*domain.WeatherReport, error)
}
