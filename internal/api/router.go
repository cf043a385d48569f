package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weatherhub/weather-api/internal/api/handler"
	"github.com/weatherhub/weather-api/internal/api/middleware"
	"github.com/weatherhub/weather-api/internal/core/ports"
	"github.com/weatherhub/weather-api/internal/core/service"
	"github.com/weatherhub/weather-api/internal/infrastructure/config"
	mongoauth "github.com/weatherhub/weather-api/internal/infrastructure/db/mongo"
	redisdb "github.com/weatherhub/weather-api/internal/infrastructure/db/redis"
	"github.com/weatherhub/weather-api/internal/infrastructure/weather"
	"github.com/weatherhub/weather-api/internal/password"
	"github.com/weatherhub/weather-api/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the token denylist (and with it effective logout) is only
// active when Redis is configured.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("weatherapi"))

	// --- Dependencies ---
	ttl := time.Duration(cfg.TokenTTLSeconds) * time.Second
	issuer := token.NewIssuer(cfg.JWTSecret, ttl)

	var denylist token.Denylist
	var revoker ports.TokenDenylist
	if rdb != nil {
		d := redisdb.NewTokenDenylist(rdb)
		denylist, revoker = d, d
	}
	verifier := token.NewVerifier(cfg.JWTSecret, denylist)

	authRepo := mongoauth.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, password.New(cfg.PasswordScheme), issuer)
	authHandler := handler.NewAuthHandler(authService, revoker, log)
	authMiddleware := middleware.Auth(verifier, log)

	weatherProvider := weather.NewClient(weather.Config{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
	})
	weatherService := service.NewWeatherService(weatherProvider)
	weatherHandler := handler.NewWeatherHandler(weatherService, log)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Weather routes ---
	// The protected fixed route must be registered alongside the dynamic
	// one; echo matches static segments first, so /weather/london never
	// falls through to :location.
	e.GET("/weather/london", weatherHandler.London, authMiddleware)
	e.GET("/weather/:location", weatherHandler.ByLocation)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
