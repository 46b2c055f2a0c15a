package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/taxdesk/practice-api/internal/api/middleware"
)

// actorID returns the authenticated user id injected by the Auth middleware,
// or "" on routes that run without it.
func actorID(c echo.Context) string {
	id, _ := c.Get(middleware.UserIDKey).(string)
	return id
}
