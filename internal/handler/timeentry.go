package handler

import (
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/model/timeentry"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/labstack/echo/v4"
)

type TimeEntryHandler struct {
	Handler
	timeEntryService *service.TimeEntryService
}

func NewTimeEntryHandler(s *server.Server, timeEntryService *service.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{
		Handler:          NewHandler(s),
		timeEntryService: timeEntryService,
	}
}

func (h *TimeEntryHandler) ListTimeEntries(c echo.Context, _ *model.NoParams) ([]timeentry.Response, error) {
	return h.timeEntryService.List(c.Request().Context())
}

func (h *TimeEntryHandler) ListByDeveloper(c echo.Context, payload *timeentry.ListByDeveloperRequest) ([]timeentry.Response, error) {
	return h.timeEntryService.ListByDeveloper(c.Request().Context(), payload.ID)
}

func (h *TimeEntryHandler) ListByProject(c echo.Context, payload *timeentry.ListByProjectRequest) ([]timeentry.Response, error) {
	return h.timeEntryService.ListByProject(c.Request().Context(), payload.ID)
}

func (h *TimeEntryHandler) CreateTimeEntry(c echo.Context, payload *timeentry.CreateTimeEntryRequest) (*timeentry.Response, error) {
	return h.timeEntryService.Create(c.Request().Context(), payload)
}

func (h *TimeEntryHandler) GetTimeEntry(c echo.Context, payload *timeentry.GetTimeEntryRequest) (*timeentry.Response, error) {
	return h.timeEntryService.Get(c.Request().Context(), payload.ID)
}

func (h *TimeEntryHandler) UpdateTimeEntry(c echo.Context, payload *timeentry.UpdateTimeEntryRequest) (*timeentry.Response, error) {
	return h.timeEntryService.Update(c.Request().Context(), payload)
}

func (h *TimeEntryHandler) DeleteTimeEntry(c echo.Context, payload *timeentry.DeleteTimeEntryRequest) (*model.MessageResponse, error) {
	if err := h.timeEntryService.Delete(c.Request().Context(), payload.ID); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: "Time entry deleted successfully"}, nil
}
