// Package router builds the echo router: it installs the middleware chain
// and maps the API and system routes onto their handlers.
package router

import (
	"github.com/deppfellow/timesheet/internal/handler"
	"github.com/deppfellow/timesheet/internal/middleware"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the fully wired router.
//
// Request ids come first so every later middleware can log them; the New
// Relic transaction must exist before the context logger reads its trace
// ids. The rate limiter only guards /api.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api", middlewares.RateLimit.Limit())
	registerAPIRoutes(api, h)

	return router
}
