package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/lib/utils"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/middleware"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	checkDatabase = "database"
	checkRedis    = "redis"

	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthHandler exposes GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports the service status and the configured dependency checks.
//
// It returns:
//   - 200 OK when the database is reachable
//   - 503 Service Unavailable when it is not
//
// Redis only carries notifications, so a failing redis is reported but does
// not flip the overall status.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checksConfig := h.server.Config.Observability.HealthChecks

	response := map[string]interface{}{
		"status":      statusHealthy,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	if checksConfig.Enabled {
		ctx, cancel := context.WithTimeout(c.Request().Context(), checksConfig.Timeout)
		defer cancel()

		if checksConfig.Has(checkDatabase) {
			result, err := h.runCheck(ctx, &logger, checkDatabase, h.server.DB.Ping)
			checks[checkDatabase] = result
			if err != nil {
				isHealthy = false
			}
		}

		if checksConfig.Has(checkRedis) && h.server.Redis != nil {
			result, _ := h.runCheck(ctx, &logger, checkRedis, func(ctx context.Context) error {
				return h.server.Redis.Ping(ctx).Err()
			})
			checks[checkRedis] = result
		}
	}

	if !isHealthy {
		response["status"] = statusUnhealthy

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthEvent(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return utils.WriteJSON(c, http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := utils.WriteJSON(c, http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// runCheck pings one dependency and returns its entry for the checks map.
func (h *HealthHandler) runCheck(
	ctx context.Context,
	logger *zerolog.Logger,
	name string,
	ping func(ctx context.Context) error,
) (map[string]interface{}, error) {
	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.recordHealthEvent(map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return map[string]interface{}{
			"status":        statusUnhealthy,
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}, err
	}

	logger.Debug().
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("health check passed")

	return map[string]interface{}{
		"status":        statusHealthy,
		"response_time": elapsed.String(),
	}, nil
}

func (h *HealthHandler) recordHealthEvent(params map[string]interface{}) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", params)
	}
}
