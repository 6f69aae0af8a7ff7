package handler

import (
	"net/http"

	"engistore/internal/service"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.dashboardService.Overview(ctx, c.QueryParam("sales_period"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
