package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hirelens/internal/background"
	"hirelens/internal/config"
	"hirelens/internal/generation"
	"hirelens/internal/logging"
	"hirelens/internal/store"
	"hirelens/pkg/models"
	"hirelens/pkg/utils"
)

// CoverLetterHandler handles cover letter generation requests
func CoverLetterHandler(cfg *config.Config, svc *generation.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.GenerateCoverLetterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		letter, fallback, err := svc.GenerateCoverLetter(c.Request().Context(), &req)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "record_not_found",
					Message:   err.Error(),
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			logger.Error("Cover letter generation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:     "generation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.GenerateCoverLetterResponse{
			Success:     true,
			CoverLetter: letter,
			Fallback:    fallback,
			RequestID:   requestID,
		})
	}
}

// CoverLetterAsyncHandler submits cover letter generation as a background
// task and returns a process ID immediately.
func CoverLetterAsyncHandler(cfg *config.Config, svc *generation.Service, taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.GenerateCoverLetterRequest
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

		if err := taskManager.SubmitCoverLetterTask(c.Request().Context(), processID, req, svc); err != nil {
			logger.Error("Failed to submit cover letter task", map[string]interface{}{
				"process_id": processID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusServiceUnavailable, models.AsyncErrorResponse{
				Error:     "task_submission_failed",
				Message:   fmt.Sprintf("Failed to submit generation task: %v", err),
				ProcessID: processID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Cover letter task accepted", map[string]interface{}{
			"process_id":   processID,
			"job_id":       req.JobID,
			"candidate_id": req.CandidateID,
		})

		return c.JSON(http.StatusAccepted, models.CreateAsyncGenerateResponse(processID))
	}
}

// JobDescriptionHandler handles job description generation requests
func JobDescriptionHandler(cfg *config.Config, svc *generation.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.GenerateJobDescriptionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		desc, fallback, err := svc.GenerateJobDescription(c.Request().Context(), &req)
		if err != nil {
			logger.Error("Job description generation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:     "generation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.GenerateJobDescriptionResponse{
			Success:        true,
			JobDescription: desc,
			Fallback:       fallback,
			RequestID:      requestID,
		})
	}
}
