package handlers

import (
	"net/http"
	"strconv"
	"time"

	"hirelens/internal/background"
	"hirelens/internal/llm"
	"hirelens/internal/logging"
	"hirelens/internal/store"
	"hirelens/pkg/models"
	"hirelens/pkg/utils"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. Readiness reflects the
// LLM provider and metrics store because analysis requests cannot be served
// without them.
func ReadinessHandler(llmManager *llm.Manager, metrics *store.RedisMetricsStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{
			"api": "ok",
		}
		status := "ready"
		httpStatus := http.StatusOK

		if llmManager != nil {
			if llmManager.IsHealthy() {
				checks["llm"] = "ok"
			} else {
				checks["llm"] = "unavailable"
				status = "degraded"
			}
		}

		if metrics != nil {
			if err := metrics.Ping(c.Request().Context()); err != nil {
				checks["metrics_store"] = "unavailable"
				status = "degraded"
			} else {
				checks["metrics_store"] = "ok"
			}
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(httpStatus, response)
	}
}

// StatusHandler provides detailed service status
func StatusHandler(llmManager *llm.Manager, metrics *store.RedisMetricsStore, taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Status check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{
			"api": "operational",
		}
		status := "operational"

		if llmManager != nil {
			if llmManager.IsHealthy() {
				checks["llm"] = "operational"
			} else {
				checks["llm"] = "unavailable"
				status = "degraded"
			}
		}

		if metrics != nil {
			if metrics.IsHealthy(c.Request().Context()) == nil {
				checks["metrics_store"] = "operational"
			} else {
				checks["metrics_store"] = "unavailable"
				status = "degraded"
			}
		}

		if taskManager != nil {
			if taskManager.IsHealthy() {
				checks["background_tasks"] = "operational"
				if tasks, err := taskManager.ListTasks(c.Request().Context()); err == nil {
					checks["active_tasks"] = strconv.Itoa(len(tasks))
				}
			} else {
				checks["background_tasks"] = "unavailable"
				status = "degraded"
			}
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Liveness check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}
