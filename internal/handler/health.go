package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// DefaultHealthCheckTimeout bounds each dependency ping when the config sets none.
const DefaultHealthCheckTimeout = 5 * time.Second

// healthCheck pings one dependency.
type healthCheck struct {
	name string
	// required checks turn the overall status unhealthy when they fail.
	required bool
	ping     func(ctx context.Context) error
}

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks  []healthCheck
	timeout time.Duration
}

// NewHealthHandler probes the database and Redis, filtered by the
// observability health_checks config when it is enabled.
func NewHealthHandler(s *server.Server) *HealthHandler {
	var checks []healthCheck

	obs := s.Config.Observability
	enabled := func(name string) bool {
		return obs == nil || !obs.HealthChecks.Enabled || obs.HealthCheckEnabled(name)
	}

	if s.DB != nil && enabled("database") {
		checks = append(checks, healthCheck{
			name:     "database",
			required: true,
			ping:     s.DB.Pool.Ping,
		})
	}
	if s.Redis != nil && enabled("redis") {
		checks = append(checks, healthCheck{
			name: "redis",
			ping: func(ctx context.Context) error { return s.Redis.Ping(ctx).Err() },
		})
	}

	timeout := DefaultHealthCheckTimeout
	if obs != nil && obs.HealthChecks.Timeout > 0 {
		timeout = obs.HealthChecks.Timeout
	}

	return &HealthHandler{
		Handler: NewHandler(s),
		checks:  checks,
		timeout: timeout,
	}
}

// CheckHealth returns 200 when every required dependency answers and 503
// otherwise. Redis is reported but not required.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{}, len(h.checks))
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		cancel()

		if err != nil {
			checks[check.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(checkStart).String(),
				"error":         err.Error(),
			}
			if check.required {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", time.Since(checkStart)).
				Msg("health check failed")

			h.recordHealthCheckError(map[string]interface{}{
				"check_type":       check.name,
				"operation":        "health_check",
				"error_type":       check.name + "_unhealthy",
				"response_time_ms": time.Since(checkStart).Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[check.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}

		logger.Info().
			Str("check", check.name).
			Dur("response_time", time.Since(checkStart)).
			Msg("health check passed")
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]interface{}{
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

func (h *HealthHandler) recordHealthCheckError(attrs map[string]interface{}) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
	}
}
