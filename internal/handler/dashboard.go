package handler

import (
	"github.com/deppfellow/timesheet/internal/model/dashboard"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	Handler
	dashboardService *service.DashboardService
}

func NewDashboardHandler(s *server.Server, dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		Handler:          NewHandler(s),
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) GetStats(c echo.Context, query *dashboard.Query) (*dashboard.StatsResponse, error) {
	return h.dashboardService.Stats(c.Request().Context(), query.DeveloperID())
}

func (h *DashboardHandler) GetChartData(c echo.Context, query *dashboard.Query) (*dashboard.ChartDataResponse, error) {
	return h.dashboardService.ChartData(c.Request().Context(), query.DeveloperID())
}
