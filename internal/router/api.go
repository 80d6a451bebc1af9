package router

import (
	"net/http"

	"github.com/deppfellow/timesheet/internal/handler"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/model/dashboard"
	"github.com/deppfellow/timesheet/internal/model/developer"
	"github.com/deppfellow/timesheet/internal/model/project"
	"github.com/deppfellow/timesheet/internal/model/timeentry"
	"github.com/labstack/echo/v4"
)

func registerAPIRoutes(api *echo.Group, h *handler.Handlers) {
	registerDeveloperRoutes(api.Group("/developers"), h.Developer)
	registerProjectRoutes(api.Group("/projects"), h.Project)
	registerTimeEntryRoutes(api.Group("/time-entries"), h.TimeEntry)
	registerDashboardRoutes(api.Group("/dashboard"), h.Dashboard)
}

func registerDeveloperRoutes(r *echo.Group, h *handler.DeveloperHandler) {
	r.GET("", handler.Handle(h.Handler, h.ListDevelopers, http.StatusOK, &model.NoParams{}))
	r.POST("", handler.Handle(h.Handler, h.CreateDeveloper, http.StatusCreated, &developer.CreateDeveloperRequest{}))
	r.GET("/:id", handler.Handle(h.Handler, h.GetDeveloper, http.StatusOK, &developer.GetDeveloperRequest{}))
	r.PUT("/:id", handler.Handle(h.Handler, h.UpdateDeveloper, http.StatusOK, &developer.UpdateDeveloperRequest{}))
	r.DELETE("/:id", handler.Handle(h.Handler, h.DeleteDeveloper, http.StatusOK, &developer.DeleteDeveloperRequest{}))
}

func registerProjectRoutes(r *echo.Group, h *handler.ProjectHandler) {
	r.GET("", handler.Handle(h.Handler, h.ListProjects, http.StatusOK, &model.NoParams{}))
	r.POST("", handler.Handle(h.Handler, h.CreateProject, http.StatusCreated, &project.CreateProjectRequest{}))
	r.GET("/:id", handler.Handle(h.Handler, h.GetProject, http.StatusOK, &project.GetProjectRequest{}))
	r.PUT("/:id", handler.Handle(h.Handler, h.UpdateProject, http.StatusOK, &project.UpdateProjectRequest{}))
	r.DELETE("/:id", handler.Handle(h.Handler, h.DeleteProject, http.StatusOK, &project.DeleteProjectRequest{}))
}

// The by-developer and by-project routes are static prefixes, so echo
// matches them before /:id.
func registerTimeEntryRoutes(r *echo.Group, h *handler.TimeEntryHandler) {
	r.GET("", handler.Handle(h.Handler, h.ListTimeEntries, http.StatusOK, &model.NoParams{}))
	r.POST("", handler.Handle(h.Handler, h.CreateTimeEntry, http.StatusCreated, &timeentry.CreateTimeEntryRequest{}))
	r.GET("/by-developer/:id", handler.Handle(h.Handler, h.ListByDeveloper, http.StatusOK, &timeentry.ListByDeveloperRequest{}))
	r.GET("/by-project/:id", handler.Handle(h.Handler, h.ListByProject, http.StatusOK, &timeentry.ListByProjectRequest{}))
	r.GET("/:id", handler.Handle(h.Handler, h.GetTimeEntry, http.StatusOK, &timeentry.GetTimeEntryRequest{}))
	r.PUT("/:id", handler.Handle(h.Handler, h.UpdateTimeEntry, http.StatusOK, &timeentry.UpdateTimeEntryRequest{}))
	r.DELETE("/:id", handler.Handle(h.Handler, h.DeleteTimeEntry, http.StatusOK, &timeentry.DeleteTimeEntryRequest{}))
}

func registerDashboardRoutes(r *echo.Group, h *handler.DashboardHandler) {
	r.GET("/stats", handler.Handle(h.Handler, h.GetStats, http.StatusOK, &dashboard.Query{}))
	r.GET("/chart-data", handler.Handle(h.Handler, h.GetChartData, http.StatusOK, &dashboard.Query{}))
}
