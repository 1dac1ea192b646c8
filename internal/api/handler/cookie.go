package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/j88moja/inventory-system/internal/api/middleware"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

// setSessionCookie stores the session token in an HTTP-only cookie that the
// frontend on another origin can still send.
func setSessionCookie(c echo.Context, s *ports.Session) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
