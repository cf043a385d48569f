package service

import (
	"context"
	"strings"

	"github.com/weatherhub/weather-api/internal/core/domain"
	"github.com/weatherhub/weather-api/internal/core/ports"
)

// WeatherService answers current-conditions lookups through the configured
// provider.
type WeatherService struct {
	provider ports.WeatherProvider
}

func NewWeatherService(provider ports.WeatherProvider) *WeatherService {
	return &WeatherService{provider: provider}
}

func (s *WeatherService) ByLocation(ctx context.Context, location string) (*domain.WeatherReport, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domain.ErrLocationNotFound
	}
	return s.provider.Current(ctx, location)
}
