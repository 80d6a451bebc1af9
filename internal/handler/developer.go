package handler

import (
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/model/developer"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/labstack/echo/v4"
)

type DeveloperHandler struct {
	Handler
	developerService *service.DeveloperService
}

func NewDeveloperHandler(s *server.Server, developerService *service.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{
		Handler:          NewHandler(s),
		developerService: developerService,
	}
}

func (h *DeveloperHandler) ListDevelopers(c echo.Context, _ *model.NoParams) ([]developer.Response, error) {
	return h.developerService.List(c.Request().Context())
}

func (h *DeveloperHandler) CreateDeveloper(c echo.Context, payload *developer.CreateDeveloperRequest) (*developer.Response, error) {
	return h.developerService.Create(c.Request().Context(), payload)
}

func (h *DeveloperHandler) GetDeveloper(c echo.Context, payload *developer.GetDeveloperRequest) (*developer.Response, error) {
	return h.developerService.Get(c.Request().Context(), payload.ID)
}

func (h *DeveloperHandler) UpdateDeveloper(c echo.Context, payload *developer.UpdateDeveloperRequest) (*developer.Response, error) {
	return h.developerService.Update(c.Request().Context(), payload)
}

// DeleteDeveloper also removes the developer's time entries.
func (h *DeveloperHandler) DeleteDeveloper(c echo.Context, payload *developer.DeleteDeveloperRequest) (*model.MessageResponse, error) {
	if err := h.developerService.Delete(c.Request().Context(), payload.ID); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: "Developer deleted successfully"}, nil
}
