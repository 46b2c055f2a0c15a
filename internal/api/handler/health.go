package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers the liveness probe. The store is in-process, so a
// live process is a ready process.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
