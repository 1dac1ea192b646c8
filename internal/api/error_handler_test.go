package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", domain.Invalid("please fill in all required fields"), http.StatusBadRequest, "please fill in all required fields"},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"bad login", domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid email or password"},
		{"bad old password", domain.ErrIncorrectPassword, http.StatusBadRequest, "old password is incorrect"},
		{"no session", domain.ErrUnauthorized, http.StatusUnauthorized, "not authorized, please login"},
		{"not owner", domain.ErrNotOwner, http.StatusUnauthorized, "user not allowed to access this product"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{"reset token", domain.ErrInvalidResetToken, http.StatusNotFound, "invalid or expired token"},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
		{"email wrapped", fmt.Errorf("%w: %w", domain.ErrEmailDelivery, errors.New("dial tcp: refused")), http.StatusInternalServerError, "email not sent, please try again"},
		{"upload wrapped", fmt.Errorf("%w: %w", domain.ErrUpload, errors.New("bucket gone")), http.StatusInternalServerError, "image could not be uploaded"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, "method not allowed"},
		{"unknown", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tt.message {
				t.Fatalf("expected %q, got %q", tt.message, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_DoesNotLeakCause(t *testing.T) {
	var logs bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/users/forgotpassword", nil), rec)

	cause := errors.New("smtp: 535 authentication failed for secret-user")
	NewHTTPErrorHandler(zerolog.New(&logs))(fmt.Errorf("%w: %w", domain.ErrEmailDelivery, cause), c)

	if strings.Contains(rec.Body.String(), "secret-user") {
		t.Fatalf("cause leaked to client: %s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "secret-user") {
		t.Fatalf("cause not logged: %s", logs.String())
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrUserNotFound, c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response was overwritten: %d %q", rec.Code, rec.Body.String())
	}
}
