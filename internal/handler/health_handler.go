package handler

import (
	"booking-service/prometheus"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home answers the root path with a plain-text liveness message
func (h *Handler) Home(c echo.Context) error {
	return c.String(http.StatusOK, "Booking API is running")
}

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"service": "booking-service",
	})
}

// MetricsHandler exposes Prometheus metrics
func MetricsHandler(c echo.Context) error {
	prometheus.GetPrometheusHandler().ServeHTTP(c.Response(), c.Request())
	return nil
}
