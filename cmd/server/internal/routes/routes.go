package routes

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	servermiddleware "github.com/clubpulse/survey-api/cmd/server/internal/middleware"
	"github.com/clubpulse/survey-api/internal/config"
	"github.com/clubpulse/survey-api/internal/validator"
)

// ReceivedAtKey is where the Time middleware stashes the authoritative
// request receive time on the echo context.
const ReceivedAtKey = "received_at"

func BuildEcho(logger *slog.Logger, cfg *config.Config) (*echo.Echo, error) {
	e := echo.New()

	validate := validator.Create()
	e.Validator = &validate

	e.Pre(middleware.AddTrailingSlash())

	corsOrigins := []string{"http://localhost:8080", "http://127.0.0.1:8080"}
	if cfg.CORS != nil && len(cfg.CORS.AllowedOrigins) > 0 {
		corsOrigins = cfg.CORS.AllowedOrigins
	}

	e.Use(
		otelecho.Middleware("survey-api"),
		slogecho.NewWithConfig(logger, slogecho.Config{}),
		middleware.SecureWithConfig(middleware.SecureConfig{
			XSSProtection:         "1; mode=block",
			ContentTypeNosniff:    "nosniff",
			XFrameOptions:         "DENY",
			HSTSMaxAge:            31536000,
			ContentSecurityPolicy: "default-src 'self'",
		}),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType},
			MaxAge:       3600,
		}),
		servermiddleware.Time(ReceivedAtKey),
	)

	return e, nil
}
