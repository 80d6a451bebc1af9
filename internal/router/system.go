package router

import (
	"github.com/deppfellow/timesheet/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the API: health,
// docs UI and the static files behind it.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", h.OpenAPI.StaticFS())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
