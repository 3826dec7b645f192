package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"hirelens/internal/background"
	"hirelens/internal/config"
	"hirelens/internal/logging"
	"hirelens/internal/match"
	"hirelens/internal/store"
	"hirelens/pkg/models"
	"hirelens/pkg/utils"
)

var validate = validator.New()

// AnalyzeMatchHandler handles synchronous match analysis requests
func AnalyzeMatchHandler(cfg *config.Config, analyzer *match.Analyzer, metrics store.MetricsStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.AnalyzeMatchRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind analyze request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Analyze request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Processing match analysis request", map[string]interface{}{
			"job_id":         req.JobID,
			"application_id": req.ApplicationID,
		})

		ctx := c.Request().Context()
		result, err := analyzer.AnalyzeCandidateMatch(ctx, req.JobID, req.ApplicationID)
		if err != nil {
			return matchErrorResponse(c, requestID, err)
		}

		if metrics != nil {
			if err := metrics.UpsertMatchResult(ctx, result); err != nil {
				logger.Warn("Failed to persist match result", map[string]interface{}{
					"job_id":         req.JobID,
					"application_id": req.ApplicationID,
					"error":          err.Error(),
				})
			}
		}

		logger.Info("Match analysis completed", map[string]interface{}{
			"job_id":          req.JobID,
			"application_id":  req.ApplicationID,
			"overall_score":   result.OverallScore,
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.AnalyzeMatchResponse{
			Success:        true,
			Result:         result,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// AnalyzeMatchAsyncHandler handles async match analysis requests, returning
// a process ID immediately and running the analysis in the background.
func AnalyzeMatchAsyncHandler(cfg *config.Config, analyzer *match.Analyzer, metrics store.MetricsStore, taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.AnalyzeMatchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.AsyncErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.AsyncErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				Timestamp: time.Now(),
			})
		}

		processID := utils.GenerateProcessID()

		if err := taskManager.SubmitMatchAnalysisTask(c.Request().Context(), processID, req, analyzer, metrics); err != nil {
			logger.Error("Failed to submit match analysis task", map[string]interface{}{
				"process_id": processID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusServiceUnavailable, models.AsyncErrorResponse{
				Error:     "task_submission_failed",
				Message:   fmt.Sprintf("Failed to submit analysis task: %v", err),
				ProcessID: processID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Match analysis task accepted", map[string]interface{}{
			"process_id":     processID,
			"job_id":         req.JobID,
			"application_id": req.ApplicationID,
		})

		return c.JSON(http.StatusAccepted, models.CreateAsyncAnalyzeResponse(processID))
	}
}

// TaskStatusHandler returns the status and result of a background task
func TaskStatusHandler(taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		processID := c.Param("processId")

		result, err := taskManager.GetTaskResult(c.Request().Context(), processID)
		if err != nil {
			return c.JSON(http.StatusNotFound, models.AsyncErrorResponse{
				Error:     "task_not_found",
				Message:   fmt.Sprintf("No task found for process ID %s", processID),
				ProcessID: processID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.AsyncTaskStatusResponse{
			ProcessID:      result.ProcessID,
			Status:         models.AsyncStatus(result.Status),
			Data:           result.Data,
			Error:          result.Error,
			CreatedAt:      result.CreatedAt,
			CompletedAt:    result.CompletedAt,
			ProcessingTime: result.ProcessingTime,
		})
	}
}

// MatchResultHandler returns the persisted analysis for a job/application pair
func MatchResultHandler(metrics store.MetricsStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		jobID := c.Param("jobId")
		applicationID := c.Param("applicationId")

		result, err := metrics.GetMatchResult(c.Request().Context(), jobID, applicationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "result_not_found",
					Message:   fmt.Sprintf("No stored analysis for job %s and application %s", jobID, applicationID),
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "result_lookup_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.AnalyzeMatchResponse{
			Success:   true,
			Result:    result,
			RequestID: requestID,
		})
	}
}

// matchErrorResponse maps analyzer errors to HTTP responses
func matchErrorResponse(c echo.Context, requestID string, err error) error {
	var notFound *match.NotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:     "record_not_found",
			Message:   notFound.Error(),
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	var analysisErr *match.AnalysisError
	if errors.As(err, &analysisErr) {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:     "analysis_failed",
			Message:   analysisErr.Error(),
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	var custom *utils.CustomError
	if errors.As(err, &custom) {
		return c.JSON(custom.Code, models.ErrorResponse{
			Error:     "platform_error",
			Message:   custom.Error(),
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:     "internal_error",
		Message:   err.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
