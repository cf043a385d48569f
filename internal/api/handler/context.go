package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weatherhub/weather-api/internal/api/middleware"
	"github.com/weatherhub/weather-api/internal/token"
)

// ctxClaims extracts the claims injected by the Auth middleware. Presence
// proves the middleware ran; a protected handler reached without them is a
// wiring bug and fails closed with 401.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, _ := c.Get(middleware.ContextUserKey).(*token.Claims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
