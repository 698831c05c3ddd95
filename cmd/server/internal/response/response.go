package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubpulse/survey-api/internal/types"
)

var InternalServerError = echo.NewHTTPError(
	http.StatusInternalServerError,
	types.StringError(
		"An error occurred while processing your submission. Please try again later.",
	),
)
