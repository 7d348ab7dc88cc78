package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

type StatisticHandler struct {
	service ports.StatisticService
}

func NewStatisticHandler(service ports.StatisticService) *StatisticHandler {
	return &StatisticHandler{service: service}
}

// Diagram returns the users-per-department grouping.
//
// @Summary      Get grouped statistics
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.DiagramRow
// @Router       /statistic [get]
func (h *StatisticHandler) Diagram(c echo.Context) error {
	rows, err := h.service.Diagram(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// Counts returns the header totals, optionally scoped by project.
//
// @Summary      Get count statistics
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query     string  false  "Scope the user count to one project"
// @Success      200         {object}  domain.HeaderCounts
// @Failure      404         {object}  errorResponse
// @Router       /statistic/count [get]
func (h *StatisticHandler) Counts(c echo.Context) error {
	counts, err := h.service.Counts(c.Request().Context(), c.QueryParam("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}
