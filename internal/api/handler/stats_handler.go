package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taxdesk/practice-api/internal/core/ports"
)

// StatsHandler serves the dashboard counters.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get computes the practice statistics at call time.
//
// @Summary      Practice statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Stats
// @Failure      401  {object}  map[string]string
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	stats, err := h.service.GetStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
