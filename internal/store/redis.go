package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hirelens/internal/config"
	"hirelens/internal/logging"
	"hirelens/pkg/models"
)

// matchResultTTL bounds how long a stored analysis stays queryable.
const matchResultTTL = 30 * 24 * time.Hour

// RedisMetricsStore persists match results in Redis keyed by job and
// application id. Repeated analyses of the same pair overwrite each other.
type RedisMetricsStore struct {
	client *redis.Client
	logger logging.Logger
}

// NewRedisMetricsStore creates a metrics store from configuration.
func NewRedisMetricsStore(cfg *config.Config) *RedisMetricsStore {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &RedisMetricsStore{
		client: redis.NewClient(opts),
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection.
func (s *RedisMetricsStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisMetricsStore) Close() error {
	return s.client.Close()
}

// UpsertMatchResult stores a match result, replacing any previous analysis
// of the same job/application pair.
func (s *RedisMetricsStore) UpsertMatchResult(ctx context.Context, result *models.MatchResult) error {
	key := matchResultKey(result.JobID, result.ApplicationID)

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}

	if err := s.client.Set(ctx, key, payload, matchResultTTL).Err(); err != nil {
		s.logger.Error("Failed to persist match result", map[string]interface{}{
			"job_id":         result.JobID,
			"application_id": result.ApplicationID,
			"error":          err.Error(),
		})
		return fmt.Errorf("failed to persist match result: %w", err)
	}

	return nil
}

// GetMatchResult retrieves the stored analysis for a job/application pair.
// Returns ErrNotFound when no analysis has been persisted.
func (s *RedisMetricsStore) GetMatchResult(ctx context.Context, jobID, applicationID string) (*models.MatchResult, error) {
	key := matchResultKey(jobID, applicationID)

	payload, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	var result models.MatchResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}

	return &result, nil
}

// IsHealthy checks if Redis is connected and healthy.
func (s *RedisMetricsStore) IsHealthy(ctx context.Context) error {
	return s.Ping(ctx)
}

func matchResultKey(jobID, applicationID string) string {
	return fmt.Sprintf("match:metrics:%s:%s", jobID, applicationID)
}
