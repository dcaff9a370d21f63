package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/garageworks/garage-service/internal/core/ports"
)

// StatsHandler serves the manager's aggregate views.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// WorkerDetails handles GET /worker-details.
//
// @Summary      Per-worker statistics
// @Tags         manager
// @Produce      json
// @Success      200  {array}  workerStatsResponse
// @Router       /worker-details [get]
func (h *StatsHandler) WorkerDetails(c echo.Context) error {
	stats, err := h.service.WorkerStats(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]workerStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, toWorkerStatsResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

// CustomerDetails handles GET /customer-details.
//
// @Summary      Customer name and license number list
// @Tags         manager
// @Produce      json
// @Success      200  {array}  customerDetailResponse
// @Router       /customer-details [get]
func (h *StatsHandler) CustomerDetails(c echo.Context) error {
	details, err := h.service.CustomerDetails(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]customerDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, customerDetailResponse{Name: d.Name, LicenseNumber: d.LicenseNumber})
	}
	return c.JSON(http.StatusOK, out)
}
