package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weatherhub/weather-api/internal/api/metrics"
	"github.com/weatherhub/weather-api/internal/token"
)

// ContextUserKey is the request-scoped key the decoded claims are stored
// under for downstream handlers.
const ContextUserKey = "user"

// All token failures collapse to this one message so responses leak
// nothing about which check failed.
const unauthorizedMessage = "unauthorized"

// Auth gates protected routes behind bearer-token verification. The scheme
// prefix is case-sensitive "Bearer " with a single space. On success the
// decoded claims are injected under ContextUserKey; on any failure the
// request short-circuits with 401 and the downstream handler never runs.
func Auth(verifier *token.Verifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := strings.CutPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				return reject(c, log, token.ErrMissing)
			}

			claims, err := verifier.Verify(c.Request().Context(), raw)
			if err != nil {
				return reject(c, log, err)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

func reject(c echo.Context, log zerolog.Logger, err error) error {
	result := verifyResult(err)
	metrics.TokenVerificationsTotal.WithLabelValues(result).Inc()

	if result == "store_failure" {
		// Denylist lookup failed: not the client's fault, don't claim
		// the token is bad.
		log.Error().Err(err).Str("path", c.Path()).Msg("token verification store failure")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	log.Debug().Err(err).Str("path", c.Path()).Msg("token verification failed")
	return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, token.ErrMissing):
		return "missing"
	case errors.Is(err, token.ErrMalformed):
		return "malformed"
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrInvalidSignature):
		return "bad_signature"
	case errors.Is(err, token.ErrRevoked):
		return "revoked"
	default:
		return "store_failure"
	}
}
