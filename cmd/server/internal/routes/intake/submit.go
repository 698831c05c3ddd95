package intake

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	srverr "github.com/clubpulse/survey-api/cmd/server/internal/error"
	"github.com/clubpulse/survey-api/cmd/server/internal/models"
	"github.com/clubpulse/survey-api/cmd/server/internal/response"
	"github.com/clubpulse/survey-api/cmd/server/internal/routes"
	"github.com/clubpulse/survey-api/cmd/server/internal/store"
	"github.com/clubpulse/survey-api/internal/logger"
	"github.com/clubpulse/survey-api/internal/types"
)

// SubmitSurvey runs the intake pipeline: parse, validate, durable write. The
// only side effect is the single insert on the success path; every failure
// leaves storage untouched.
func (h *Handler) SubmitSurvey(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "SubmitSurvey")
	defer span.End()

	receivedAt, ok := c.Get(routes.ReceivedAtKey).(time.Time)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("received_at: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	clientIP := c.RealIP()

	span.SetAttributes(
		attribute.String("client.ip", clientIP),
		attribute.Int64("request.timestamp_ms", receivedAt.UnixMilli()),
	)

	logger.Logger.InfoContext(ctx, "survey submission attempt", "client_ip", clientIP)

	var submission types.SurveySubmission

	span.AddEvent("parsing request body")
	err := c.Bind(&submission)
	if err != nil {
		span.SetStatus(codes.Ok, "failed to parse request data")
		span.RecordError(err)
		return echo.NewHTTPError(
			http.StatusBadRequest,
			types.StringError("failed to parse request data"),
		)
	}

	span.AddEvent("validating request body")
	err = c.Validate(submission)
	if err != nil {
		span.SetStatus(codes.Ok, "failed to validate request data")
		span.RecordError(err)
		return echo.NewHTTPError(http.StatusBadRequest, types.ValidationError(err))
	}

	span.AddEvent("inserting into database")
	responseID, err := h.store.Create(ctx, models.NewSurveyResponse(submission))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			span.SetStatus(codes.Ok, "duplicate email")
			logger.Logger.WarnContext(
				ctx,
				"duplicate survey submission",
				"client_ip", clientIP,
			)
			return echo.NewHTTPError(
				http.StatusBadRequest,
				types.StringError(
					"This email address has already been used to submit a survey. Each email can only be used once.",
				),
			)
		}

		span.SetStatus(codes.Error, "failed to insert")
		span.RecordError(err)
		logger.Logger.ErrorContext(
			ctx,
			"error processing survey submission",
			"client_ip", clientIP,
			"error", err,
		)
		return response.InternalServerError
	}

	span.SetAttributes(attribute.Int64("survey_response.id", responseID))
	logger.Logger.InfoContext(
		ctx,
		"survey submitted successfully",
		"response_id", responseID,
		"client_ip", clientIP,
	)

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "")

	return c.JSON(http.StatusOK, types.SubmitResponse{
		Message:    "Survey submitted successfully!",
		ResponseID: responseID,
	})
}
