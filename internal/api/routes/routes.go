package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"hirelens/internal/api/handlers"
	"hirelens/internal/api/middleware"
	"hirelens/internal/background"
	"hirelens/internal/config"
	"hirelens/internal/generation"
	"hirelens/internal/llm"
	"hirelens/internal/match"
	"hirelens/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, analyzer *match.Analyzer, genService *generation.Service, llmManager *llm.Manager, metrics *store.RedisMetricsStore, taskManager background.TaskManager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Analysis and generation endpoints get the longer LLM timeout
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, cfg.Matcher.AnalysisTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, metrics))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Detailed service status
	e.GET("/status", handlers.StatusHandler(llmManager, metrics, taskManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Match analysis routes
		matchGroup := v1.Group("/match")
		{
			matchGroup.POST("/analyze", handlers.AnalyzeMatchHandler(cfg, analyzer, metrics))
			matchGroup.POST("/analyze/async", handlers.AnalyzeMatchAsyncHandler(cfg, analyzer, metrics, taskManager))
			matchGroup.GET("/results/:jobId/:applicationId", handlers.MatchResultHandler(metrics))
		}

		// Content generation routes
		generate := v1.Group("/generate")
		{
			generate.POST("/cover-letter", handlers.CoverLetterHandler(cfg, genService))
			generate.POST("/cover-letter/async", handlers.CoverLetterAsyncHandler(cfg, genService, taskManager))
			generate.POST("/job-description", handlers.JobDescriptionHandler(cfg, genService))
		}

		// Background task routes
		v1.GET("/tasks/:processId", handlers.TaskStatusHandler(taskManager))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "HireLens Match Engine",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
