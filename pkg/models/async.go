package models

import "time"

// AsyncStatus represents the status of an async operation
type AsyncStatus string

const (
	AsyncStatusAccepted   AsyncStatus = "ACCEPTED"
	AsyncStatusProcessing AsyncStatus = "PROCESSING"
	AsyncStatusSuccess    AsyncStatus = "SUCCESS"
	AsyncStatusFailure    AsyncStatus = "FAILURE"
)

// AsyncAnalyzeResponse represents the immediate response from the async
// analyze endpoint.
type AsyncAnalyzeResponse struct {
	ProcessID string      `json:"processId"`
	Status    AsyncStatus `json:"status"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

// AsyncTaskStatusResponse represents the response for task status queries
type AsyncTaskStatusResponse struct {
	ProcessID      string         `json:"processId"`
	Status         AsyncStatus    `json:"status"`
	Data           interface{}    `json:"data,omitempty"`
	Error          string         `json:"error,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
	ProcessingTime *time.Duration `json:"processingTime,omitempty"`
}

// AsyncErrorResponse represents an error response for async operations
type AsyncErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	ProcessID string    `json:"processId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateAsyncAnalyzeResponse creates a successful async analyze response
func CreateAsyncAnalyzeResponse(processID string) *AsyncAnalyzeResponse {
	return &AsyncAnalyzeResponse{
		ProcessID: processID,
		Status:    AsyncStatusAccepted,
		Message:   "Match analysis accepted for background processing",
		Timestamp: time.Now(),
	}
}

// CreateAsyncGenerateResponse creates a successful async generation response
func CreateAsyncGenerateResponse(processID string) *AsyncAnalyzeResponse {
	return &AsyncAnalyzeResponse{
		ProcessID: processID,
		Status:    AsyncStatusAccepted,
		Message:   "Generation accepted for background processing",
		Timestamp: time.Now(),
	}
}

// IsCompleted checks if the async task has completed (success or failure)
func (r *AsyncTaskStatusResponse) IsCompleted() bool {
	return r.Status == AsyncStatusSuccess || r.Status == AsyncStatusFailure
}
