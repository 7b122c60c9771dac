package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/opencourses/course-api/internal/core/domain"
)

// errorBody is the envelope rendered for every failure that reaches the
// global handler. The empty error object mirrors the public API contract.
type errorBody struct {
	Message string   `json:"message"`
	Error   struct{} `json:"error"`
}

// validationBody renders repository validation failures: one message per
// violated rule.
type validationBody struct {
	Errors []string `json:"errors"`
}

// ownershipBody renders authorization denials.
type ownershipBody struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns the single terminal stage for request failures:
//   - Unmatched routes become 404 {"message":"Route Not Found"}.
//   - Known domain errors map to deterministic statuses.
//   - Anything else becomes a 500 with a generic message; the real cause is
//     logged only when logErrors is set, and never leaks to the client.
//
// Expected business outcomes (validation failures, ownership denials) are
// resolved inside the handlers and normally never reach this stage, but the
// translator still renders them correctly should one propagate.
func NewHTTPErrorHandler(log zerolog.Logger, logErrors bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationBody{Errors: ve.Messages})
			return
		}

		var oe *domain.OwnershipError
		if errors.As(err, &oe) {
			_ = c.JSON(http.StatusForbidden, ownershipBody{Error: oe.Message})
			return
		}

		code, msg := resolveError(err, log, logErrors, c)
		_ = c.JSON(code, errorBody{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, logErrors bool, c echo.Context) (int, string) {
	// Echo's own errors: unmatched routes, method mismatches, bind failures.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if errors.Is(err, echo.ErrNotFound) {
			return http.StatusNotFound, "Route Not Found"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusNotFound, "Course Not Found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User Not Found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Access Denied"
	}

	// Unexpected error: optionally log the real cause, return a generic message.
	if logErrors {
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
	}

	return http.StatusInternalServerError, "Internal Server Error"
}
