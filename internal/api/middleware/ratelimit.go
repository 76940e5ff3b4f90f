package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/HafizMudassirHusain/AL-Backend/internal/api/metrics"
)

// AttemptLimiter is the interface the login throttle uses; the Redis-backed
// implementation lives in infrastructure/db/redis.
type AttemptLimiter interface {
	Allow(ctx context.Context, ip string) (bool, error)
}

// LoginRateLimit throttles the login route per client IP. The limiter fails
// open: when the backing store is unreachable the request proceeds and the
// failure is logged.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("login rate limiter unavailable")
				return next(c)
			}
			if !ok {
				metrics.LoginThrottledTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts, try again later")
			}
			return next(c)
		}
	}
}
