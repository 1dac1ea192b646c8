package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/j88moja/inventory-system/internal/api/middleware"
	"github.com/j88moja/inventory-system/internal/core/domain"
)

// ctxUserID returns the user id injected by the Auth middleware. An empty
// value means the route was mounted without it.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", domain.ErrUnauthorized
	}
	return userID, nil
}
