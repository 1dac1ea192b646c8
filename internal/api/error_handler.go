package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// statusBySentinel maps each domain sentinel to its HTTP status. The sentinel
// text is what the client sees, never the wrapped cause.
var statusBySentinel = []struct {
	err  error
	code int
}{
	{domain.ErrUserExists, http.StatusBadRequest},
	{domain.ErrInvalidCredentials, http.StatusBadRequest},
	{domain.ErrIncorrectPassword, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrNotOwner, http.StatusUnauthorized},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrProductNotFound, http.StatusNotFound},
	{domain.ErrInvalidResetToken, http.StatusNotFound},
	{domain.ErrRateLimited, http.StatusTooManyRequests},
	{domain.ErrEmailDelivery, http.StatusInternalServerError},
	{domain.ErrUpload, http.StatusInternalServerError},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Validation errors carry their own client-facing message.
	if errors.Is(err, domain.ErrValidation) {
		return http.StatusBadRequest, err.Error()
	}

	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			if s.code >= http.StatusInternalServerError {
				log.Error().
					Err(err).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Msg("downstream failure")
			}
			return s.code, s.err.Error()
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
