package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "token"
	// UserIDKey is the echo context key holding the authenticated user id.
	UserIDKey = "user_id"
)

// Auth validates the session token and injects the user id into context.
// The cookie wins over an Authorization: Bearer header.
func Auth(verifier ports.SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := SessionToken(c)
			if token == "" {
				return domain.ErrUnauthorized
			}

			userID, err := verifier.VerifySessionToken(token)
			if err != nil {
				return domain.ErrUnauthorized
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

// SessionToken returns the raw session token from the cookie or bearer
// header, or "" when neither is present.
func SessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
