// Package metrics defines and registers all custom Prometheus metrics for
// the weather API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "weatherapi"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts account-creation attempts.
// Label:
//   - result: "created", "duplicate", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token checks performed by the auth
// middleware. Clients always see a uniform 401; this label is the only
// place the failure kind is recorded.
// Label:
//   - result: "ok", "missing", "malformed", "expired", "bad_signature",
//     "revoked", or "store_failure"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// ── Weather metrics ───────────────────────────────────────────────────────────

// WeatherLookupsTotal counts upstream weather lookups.
// Label:
//   - result: "ok", "not_found", or "error"
var WeatherLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weather_lookups_total",
		Help:      "Total number of weather lookups, by result.",
	},
	[]string{"result"},
)
