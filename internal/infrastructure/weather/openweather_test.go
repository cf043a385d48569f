package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/weatherhub/weather-api/internal/core/domain"
)

const londonFixture = `{
	"name": "London",
	"sys": {"country": "GB"},
	"weather": [{"description": "light rain"}],
	"main": {"temp": 12.3, "feels_like": 11.1, "humidity": 81},
	"wind": {"speed": 4.6}
}`

func TestClient_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "London,uk" || q.Get("units") != "metric" || q.Get("appid") != "demo" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(londonFixture))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "demo", BaseURL: srv.URL})
	report, err := client.Current(context.Background(), "London,uk")
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if report.Location != "London" || report.Country != "GB" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Description != "light rain" || report.Humidity != 81 {
		t.Fatalf("unexpected conditions: %+v", report)
	}
}

func TestClient_Current_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"cod":"404"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "demo", BaseURL: srv.URL})
	if _, err := client.Current(context.Background(), "atlantis"); !errors.Is(err, domain.ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestClient_Current_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "demo", BaseURL: srv.URL})
	if _, err := client.Current(context.Background(), "paris"); err == nil {
		t.Fatalf("expected error for upstream 500")
	}
}

func TestClient_Current_MissingConditions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Paris","sys":{"country":"FR"},"weather":[],"main":{},"wind":{}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "demo", BaseURL: srv.URL})
	report, err := client.Current(context.Background(), "paris")
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if report.Description != "" {
		t.Fatalf("expected empty description, got %q", report.Description)
	}
}
