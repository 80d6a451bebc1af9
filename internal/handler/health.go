package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/timesheet/internal/middleware"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var errNotConfigured = errors.New("not configured")

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type dependencyCheck struct {
	name string
	ping func(ctx context.Context) error
}

// checks lists the dependency checks enabled in observability.health_checks.
// A required dependency that was never connected fails its check.
func (h *HealthHandler) checks() []dependencyCheck {
	obs := h.server.Config.Observability
	if obs == nil {
		return nil
	}

	var checks []dependencyCheck

	if obs.HealthCheckEnabled("database") {
		checks = append(checks, dependencyCheck{
			name: "database",
			ping: func(ctx context.Context) error {
				if h.server.DB == nil || h.server.DB.Pool == nil {
					return errNotConfigured
				}
				return h.server.DB.Pool.Ping(ctx)
			},
		})
	}

	if obs.HealthCheckEnabled("redis") && h.server.Redis != nil {
		checks = append(checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error {
				return h.server.Redis.Ping(ctx).Err()
			},
		})
	}

	return checks
}

func (h *HealthHandler) checkTimeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return 5 * time.Second
}

func (h *HealthHandler) recordHealthCheckError(attributes map[string]any) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attributes)
	}
}

func (h *HealthHandler) runCheck(ctx context.Context, logger zerolog.Logger, check dependencyCheck) (map[string]any, bool) {
	ctx, cancel := context.WithTimeout(ctx, h.checkTimeout())
	defer cancel()

	start := time.Now()
	err := check.ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", check.name)

		h.recordHealthCheckError(map[string]any{
			"check_type":       check.name,
			"operation":        "health_check",
			"error_type":       check.name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}, false
	}

	logger.Info().
		Dur("response_time", elapsed).
		Msgf("%s health check passed", check.name)

	return map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}, true
}

// CheckHealth reports 200 when every enabled check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true
	for _, check := range h.checks() {
		result, ok := h.runCheck(c.Request().Context(), logger, check)
		checks[check.name] = result
		if !ok {
			isHealthy = false
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
