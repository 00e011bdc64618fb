package middleware

import (
	"booking-service/prometheus"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request count and duration per route
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}

		prometheus.ObserveHTTPRequest(c.Request().Method, c.Path(), strconv.Itoa(status), time.Since(start))

		return err
	}
}
