package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weatherhub/weather-api/internal/api/metrics"
	"github.com/weatherhub/weather-api/internal/core/domain"
	"github.com/weatherhub/weather-api/internal/core/ports"
)

// londonQuery is the fixed upstream query for the protected endpoint.
const londonQuery = "London,uk"

type WeatherHandler struct {
	weatherService ports.WeatherService
	log            zerolog.Logger
}

func NewWeatherHandler(weatherService ports.WeatherService, log zerolog.Logger) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService, log: log}
}

// London returns current conditions for London. The route sits behind the
// Auth middleware; ctxClaims confirms an authenticated principal is present.
//
// @Summary      Current weather in London (protected)
// @Tags         weather
// @Produce      json
// @Success      200  {object}  weatherResponse
// @Failure      401  {object}  errorResponse
// @Router       /weather/london [get]
func (h *WeatherHandler) London(c echo.Context) error {
	if _, err := ctxClaims(c); err != nil {
		return err
	}
	return h.lookup(c, londonQuery)
}

// ByLocation returns current conditions for any location. Public.
//
// @Summary      Current weather by location
// @Tags         weather
// @Produce      json
// @Param        location  path      string  true  "Location name"
// @Success      200  {object}  weatherResponse
// @Failure      404  {object}  errorResponse
// @Router       /weather/{location} [get]
func (h *WeatherHandler) ByLocation(c echo.Context) error {
	return h.lookup(c, c.Param("location"))
}

func (h *WeatherHandler) lookup(c echo.Context, location string) error {
	report, err := h.weatherService.ByLocation(c.Request().Context(), location)
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			metrics.WeatherLookupsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "weather data not found for location"})
		}
		metrics.WeatherLookupsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Str("location", location).Msg("weather lookup failed")
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "failed to fetch weather data"})
	}

	metrics.WeatherLookupsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, weatherResponse{
		Success: true,
		Data: weatherData{
			Location: report.Location,
			Country:  report.Country,
			Weather: weatherConditions{
				Description: report.Description,
				Temperature: report.Temperature,
				FeelsLike:   report.FeelsLike,
				Humidity:    report.Humidity,
				WindSpeed:   report.WindSpeed,
			},
		},
	})
}
