package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestIDKey is the header carrying the request ID.
const RequestIDKey = "X-Request-ID"

const loggerKey = "logger"

// FromContext retrieves the request-scoped logger from the echo context,
// falling back to the global logger tagged with the request ID.
func FromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get(loggerKey).(*zap.Logger); ok {
		return l
	}

	requestID := c.Request().Header.Get(RequestIDKey)
	if requestID == "" {
		requestID = "unknown"
	}
	return GetLogger().With(zap.String("request_id", requestID))
}

// WithLogger stores l as the request-scoped logger.
func WithLogger(c echo.Context, l *zap.Logger) {
	c.Set(loggerKey, l)
}
