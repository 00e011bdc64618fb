package store

import (
	"booking-service/internal/model"
	"booking-service/prometheus"
	"context"
	"time"

	"gorm.io/gorm"
)

// BookingRepository is the GORM-backed BookingStore
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a BookingRepository over db
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts booking, defaulting an empty status to pending
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}
	return r.db.WithContext(ctx).Create(booking).Error
}
