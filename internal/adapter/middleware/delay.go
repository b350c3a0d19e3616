package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Delay holds every request for d before calling next. A cancelled request
// returns early with the context error.
func Delay(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if d <= 0 {
			return next
		}
		return func(c echo.Context) error {
			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-t.C:
				return next(c)
			case <-c.Request().Context().Done():
				return c.Request().Context().Err()
			}
		}
	}
}
