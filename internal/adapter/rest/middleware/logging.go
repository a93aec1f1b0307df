package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

// Logging records one line per request with method, path, status and
// duration.
func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}
			duration := time.Since(start)

			if err != nil {
				log.Error("http request failed",
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"status", status,
					"duration", duration.String(),
					"error", err.Error())
			} else {
				log.Info("http request completed",
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"status", status,
					"duration", duration.String())
			}
			return err
		}
	}
}
