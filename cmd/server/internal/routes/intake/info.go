package intake

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/codes"

	"github.com/clubpulse/survey-api/internal/types"
)

const version = "1.0.0"

// Banner and Health are constant-cost and never touch the store.

func (h *Handler) Banner(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Banner")
	defer span.End()

	span.AddEvent("received banner request")

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "")
	return c.JSON(http.StatusOK, types.BannerResponse{
		Message: "Welcome to the Survey API",
		Version: version,
		Endpoints: map[string]string{
			"submit": "/submit",
			"health": "/health",
		},
	})
}

func (h *Handler) Health(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Health")
	defer span.End()

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "")
	return c.JSON(http.StatusOK, types.HealthResponse{
		Status:  "healthy",
		Service: "survey-api",
	})
}
