// Package store is the engine's boundary to the recruiting platform: record
// reads go through the platform's REST API, and serialized match results go
// to Redis. All mapping from wire shapes to the engine's value types happens
// here, so scoring code never needs defensive field access.
package store

import (
	"context"
	"errors"

	"hirelens/pkg/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store reads the records a match analysis needs.
type Store interface {
	GetJob(ctx context.Context, id string) (*models.JobPosting, error)
	GetApplication(ctx context.Context, id string) (*models.Application, error)
	GetCandidate(ctx context.Context, id string) (*models.CandidateProfile, error)
}

// MetricsStore persists serialized match results. Writes are upserts keyed
// by job and application id: a re-analysis overwrites the previous blob,
// last-write-wins, which also makes double-submits harmless.
type MetricsStore interface {
	UpsertMatchResult(ctx context.Context, result *models.MatchResult) error
	GetMatchResult(ctx context.Context, jobID, applicationID string) (*models.MatchResult, error)
}
