package handler

import (
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Developer *DeveloperHandler
	Project   *ProjectHandler
	TimeEntry *TimeEntryHandler
	Dashboard *DashboardHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Developer: NewDeveloperHandler(s, services.Developer),
		Project:   NewProjectHandler(s, services.Project),
		TimeEntry: NewTimeEntryHandler(s, services.TimeEntry),
		Dashboard: NewDashboardHandler(s, services.Dashboard),
	}
}
