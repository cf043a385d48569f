// Package weather adapts the OpenWeatherMap HTTP API to the
// ports.WeatherProvider contract.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/weatherhub/weather-api/internal/core/domain"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultTimeout = 10 * time.Second
)

// Config captures the settings for the OpenWeatherMap client. The "demo"
// API key keeps local setups working without registration.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client fetches current conditions from OpenWeatherMap. Stateless and
// safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type apiResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns metric current conditions for the given location name.
// Unknown locations map to domain.ErrLocationNotFound.
func (c *Client) Current(ctx context.Context, location string) (*domain.WeatherReport, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s",
		c.baseURL, url.QueryEscape(location), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrLocationNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch weather: upstream status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	report := &domain.WeatherReport{
		Location:    body.Name,
		Country:     body.Sys.Country,
		Temperature: body.Main.Temp,
		FeelsLike:   body.Main.FeelsLike,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
	}
	if len(body.Weather) > 0 {
		report.Description = body.Weather[0].Description
	}
	return report, nil
}
