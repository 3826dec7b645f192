package match

import "fmt"

// Analysis stages reported by AnalysisError.
const (
	StageKeywordExtraction = "keyword-extraction"
	StageFullAnalysis      = "full-analysis"
)

// Record kinds reported by NotFoundError.
const (
	RecordJob         = "job"
	RecordApplication = "application"
	RecordCandidate   = "candidate"
)

// NotFoundError means a record required for the analysis is absent.
// The analysis is not retried; the caller gets a terminal failure.
type NotFoundError struct {
	Which string
	ID    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Which, e.ID)
}

// AnalysisError means a generative-model stage failed in a way the repair
// passes could not recover. The orchestrator never substitutes zeroed
// defaults here: a defaulted zero score would be indistinguishable from a
// genuinely poor match.
type AnalysisError struct {
	Stage string
	Cause error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("match analysis failed at %s: %v", e.Stage, e.Cause)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
