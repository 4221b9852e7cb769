package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-admin/internal/api/metrics"
)

// AttemptLimiter records one attempt for a client and reports whether it is
// still within the allowed rate.
type AttemptLimiter interface {
	Allow(ctx context.Context, client string) (bool, time.Duration, error)
}

// LoginRateLimit limits login attempts per client IP. When the limiter itself
// fails the request is let through and a warning is logged.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			ip := c.RealIP()
			allowed, retryAfter, err := limiter.Allow(c.Request().Context(), ip)
			if err != nil {
				metrics.LoginLimiterErrorsTotal.Inc()
				log.Warn().Err(err).Str("ip", ip).Msg("login rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
			}
			return next(c)
		}
	}
}
