package handler

import (
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/model/project"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	Handler
	projectService *service.ProjectService
}

func NewProjectHandler(s *server.Server, projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		Handler:        NewHandler(s),
		projectService: projectService,
	}
}

func (h *ProjectHandler) ListProjects(c echo.Context, _ *model.NoParams) ([]project.Response, error) {
	return h.projectService.List(c.Request().Context())
}

func (h *ProjectHandler) CreateProject(c echo.Context, payload *project.CreateProjectRequest) (*project.Response, error) {
	return h.projectService.Create(c.Request().Context(), payload)
}

func (h *ProjectHandler) GetProject(c echo.Context, payload *project.GetProjectRequest) (*project.Response, error) {
	return h.projectService.Get(c.Request().Context(), payload.ID)
}

func (h *ProjectHandler) UpdateProject(c echo.Context, payload *project.UpdateProjectRequest) (*project.Response, error) {
	return h.projectService.Update(c.Request().Context(), payload)
}

func (h *ProjectHandler) DeleteProject(c echo.Context, payload *project.DeleteProjectRequest) (*model.MessageResponse, error) {
	if err := h.projectService.Delete(c.Request().Context(), payload.ID); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: "Project deleted successfully"}, nil
}
