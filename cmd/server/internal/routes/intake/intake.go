// Package intake holds the handlers for the single write endpoint and the
// two constant-cost read-only endpoints.
package intake

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/clubpulse/survey-api/cmd/server/internal/ratelimit"
	"github.com/clubpulse/survey-api/cmd/server/internal/store"
	"github.com/clubpulse/survey-api/internal/config"
	"github.com/clubpulse/survey-api/internal/logger"
	"github.com/clubpulse/survey-api/internal/types"
)

const name = "github.com/clubpulse/survey-api/cmd/server/internal/routes/intake"

var tracer = otel.Tracer(name)

type Handler struct {
	store  *store.Store
	config *config.Config
}

func NewHandler(st *store.Store, cfg *config.Config) Handler {
	return Handler{
		store:  st,
		config: cfg,
	}
}

// NewSubmitLimiter builds the rate-limiter middleware config for the submit
// route. The limiter keys on the client network address and runs before
// parsing and validation, so rejected attempts have no side effects.
func NewSubmitLimiter(ctx context.Context, cfg *config.RateLimitConfig) middleware.RateLimiterConfig {
	l := logger.Logger
	var limiterStore middleware.RateLimiterStore

	if cfg.RedisHost != "" {
		redisAddr := cfg.RedisHost + ":6379"
		l.Debug("Setting up rate limiter with Redis", "redis", redisAddr)
		rdb := redis.NewClient(&redis.Options{
			Addr: redisAddr,
		})

		limiterStore = ratelimit.NewRedisStore(ratelimit.RedisStoreConfig{
			RedisClient: rdb,
			LimiterKey:  "submit",
			PerWindow:   cfg.SubmitPerWindow,
			Window:      cfg.Window(),
			FailOpen:    cfg.FailOpen,
		})
	} else {
		l.Debug("Setting up in-memory rate limiter")
		memStore := ratelimit.NewMemoryStore(ratelimit.MemoryStoreConfig{
			Limit:  int(cfg.SubmitPerWindow),
			Window: cfg.Window(),
		})
		memStore.StartJanitor(ctx, 2*time.Minute)
		limiterStore = memStore
	}

	return middleware.RateLimiterConfig{
		Store: limiterStore,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return c.JSON(http.StatusForbidden, nil)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(
				http.StatusTooManyRequests,
				types.StringError("Rate limit exceeded. Please try again later."),
			)
		},
	}
}

func (h *Handler) AddRoutes(ctx context.Context, e *echo.Echo) {
	l := logger.Logger

	e.GET("/", h.Banner)
	e.GET("/health/", h.Health)

	submitGroup := e.Group("/submit")

	if h.config.RateLimit != nil && h.config.RateLimit.SubmitPerWindow > 0 {
		submitGroup.Use(
			middleware.RateLimiterWithConfig(NewSubmitLimiter(ctx, h.config.RateLimit)),
		)
	} else {
		l.Warn("not configured to have a submit rate limit")
	}

	submitGroup.POST("/", h.SubmitSurvey)
}
