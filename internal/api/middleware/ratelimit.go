package middleware

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

// Limiter decides whether subject may make another request.
type Limiter interface {
	Allow(ctx context.Context, subject string) (bool, time.Duration, error)
}

// RateLimitConfig wires a limiter into RateLimit.
type RateLimitConfig struct {
	Limiter Limiter
	Logger  zerolog.Logger
	// OnLimited runs for every rejected request.
	OnLimited func()
}

// RateLimit throttles requests per client IP. When the limiter itself fails
// the request is let through.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}

			allowed, retryAfter, err := cfg.Limiter.Allow(c.Request().Context(), ip)
			if err != nil {
				cfg.Logger.Warn().Err(err).Str("ip", ip).Str("path", c.Path()).Msg("rate limiter unavailable")
				return next(c)
			}
			if !allowed {
				secs := int(math.Ceil(retryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				if cfg.OnLimited != nil {
					cfg.OnLimited()
				}
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}
