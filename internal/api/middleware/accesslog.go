package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/todo-system/internal/api/metrics"
)

// AccessLog records an audit line before each admin-sensitive handler runs:
// who (principal id), when, and what path. Observation only: it never
// blocks, denies, or mutates the request, and a missing principal is logged
// with a placeholder rather than failing the call.
func AccessLog(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := "-"
			if p, ok := Principal(c); ok {
				userID = p.UserID
			}

			log.Info().
				Str("user_id", userID).
				Str("access_time", time.Now().UTC().Format(time.RFC3339)).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("admin access")

			metrics.AdminAccessesTotal.WithLabelValues(c.Path()).Inc()

			return next(c)
		}
	}
}
