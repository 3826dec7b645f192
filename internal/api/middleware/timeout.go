package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SelectiveTimeoutConfig applies a longer timeout to LLM-backed endpoints
// and the default timeout everywhere else.
func SelectiveTimeoutConfig(defaultTimeout, analysisTimeout time.Duration) echo.MiddlewareFunc {
	slowPrefixes := []string{"/api/v1/match", "/api/v1/generate"}

	standard := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
	})
	slow := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: analysisTimeout,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		standardNext := standard(next)
		slowNext := slow(next)

		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range slowPrefixes {
				if strings.HasPrefix(path, prefix) {
					return slowNext(c)
				}
			}
			return standardNext(c)
		}
	}
}
