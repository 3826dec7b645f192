package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"hirelens/internal/config"
)

// RequestLimiter throttles outbound LLM calls so concurrent analyses
// cannot exhaust the provider's rate limit.
type RequestLimiter struct {
	limiter *rate.Limiter
}

// NewRequestLimiter creates a limiter from the configured requests-per-minute
// rate and burst size.
func NewRequestLimiter(cfg *config.Config) *RequestLimiter {
	// Rate limit: requests per minute converted to requests per second
	rps := rate.Limit(float64(cfg.LLM.RateLimit) / 60.0)
	burst := cfg.LLM.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &RequestLimiter{
		limiter: rate.NewLimiter(rps, burst),
	}
}

// Wait blocks until a request slot is available or the context expires.
func (l *RequestLimiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

// Limit returns the configured requests-per-second rate.
func (l *RequestLimiter) Limit() rate.Limit {
	return l.limiter.Limit()
}

// Burst returns the configured burst size.
func (l *RequestLimiter) Burst() int {
	return l.limiter.Burst()
}
