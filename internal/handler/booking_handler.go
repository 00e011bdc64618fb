package handler

import (
	"booking-service/internal/middleware"
	"booking-service/pkg/logger"
	"booking-service/prometheus"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CreateBooking stores a booking as submitted. It does not check the
// property, overlapping stays or the caller's identity.
func (h *Handler) CreateBooking(c echo.Context) error {
	log := logger.FromContext(c)
	if claims, ok := middleware.CurrentUser(c); ok {
		log = log.With(zap.Uint("user_id", claims.UserID))
	}

	// Parse request
	var input BookingInput
	if err := c.Bind(&input); err != nil {
		log.Warn("Invalid booking data", zap.Error(err))
		if fieldTypeError(err) {
			return serverError(c, "Error creating booking", err)
		}
		return invalidBody(c)
	}

	if err := c.Validate(&input); err != nil {
		log.Warn("Booking rejected", zap.Error(err))
		return serverError(c, "Error creating booking", err)
	}

	booking := input.Booking()
	if err := h.bookings.Create(c.Request().Context(), booking); err != nil {
		log.Error("Failed to create booking", zap.Error(err))
		return serverError(c, "Error creating booking", err)
	}

	prometheus.RecordBookingCreated(string(booking.Status))
	log.Info("Booking created successfully",
		zap.Uint("booking_id", booking.ID),
		zap.String("status", string(booking.Status)))
	return c.JSON(http.StatusCreated, booking)
}
