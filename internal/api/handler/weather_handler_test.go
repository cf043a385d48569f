package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weatherhub/weather-api/internal/api/middleware"
	"github.com/weatherhub/weather-api/internal/core/domain"
	"github.com/weatherhub/weather-api/internal/token"
)

type stubWeatherService struct {
	report *domain.WeatherReport
	err    error
	gotLoc string
}

func (s *stubWeatherService) ByLocation(_ context.Context, location string) (*domain.WeatherReport, error) {
	s.gotLoc = location
	return s.report, s.err
}

func TestWeatherHandler_London(t *testing.T) {
	e := echo.New()
	stub := &stubWeatherService{report: &domain.WeatherReport{
		Location:    "London",
		Country:     "GB",
		Description: "light rain",
		Temperature: 12.3,
		FeelsLike:   11.1,
		Humidity:    81,
		WindSpeed:   4.6,
	}}
	h := NewWeatherHandler(stub, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/weather/london", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &token.Claims{Sub: "1", Username: "testuser"})

	if err := h.London(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotLoc != "London,uk" {
		t.Fatalf("unexpected upstream query: %q", stub.gotLoc)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got: %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["location"] != "London" || data["country"] != "GB" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	weather, ok := data["weather"].(map[string]any)
	if !ok || weather["description"] != "light rain" {
		t.Fatalf("unexpected weather payload: %+v", weather)
	}
}

// A protected handler reached without middleware claims fails closed.
func TestWeatherHandler_London_NoClaims(t *testing.T) {
	e := echo.New()
	h := NewWeatherHandler(&stubWeatherService{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/weather/london", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.London(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestWeatherHandler_ByLocation_NotFound(t *testing.T) {
	e := echo.New()
	h := NewWeatherHandler(&stubWeatherService{err: domain.ErrLocationNotFound}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/weather/atlantis", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("location")
	c.SetParamValues("atlantis")

	if err := h.ByLocation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWeatherHandler_ByLocation_UpstreamFailure(t *testing.T) {
	e := echo.New()
	h := NewWeatherHandler(&stubWeatherService{err: context.DeadlineExceeded}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/weather/paris", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("location")
	c.SetParamValues("paris")

	if err := h.ByLocation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
