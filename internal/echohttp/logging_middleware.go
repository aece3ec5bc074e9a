package echohttp

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/conformo/conformo/internal/monitoring"
	"github.com/labstack/echo/v4"
)

// custom echo middleware used for request logging
func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()

			err := next(c)

			monitoring.HTTPRequestsTotal.WithLabelValues(c.Request().Method, strconv.Itoa(c.Response().Status)).Inc()
			monitoring.HTTPRequestDuration.Observe(time.Since(now).Seconds())

			slog.Info("handled request", "method", c.Request().Method, "url", c.Request().URL, "status", c.Response().Status, "duration", time.Since(now))
			return err
		}
	}
}
