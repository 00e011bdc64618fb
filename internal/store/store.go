package store

import (
	"booking-service/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the lookup, update or delete
var ErrNotFound = errors.New("record not found")

// UserStore persists users
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// PropertyStore persists properties
type PropertyStore interface {
	List(ctx context.Context) ([]model.Property, error)
	Get(ctx context.Context, id uint) (*model.Property, error)
	Create(ctx context.Context, property *model.Property) error
	// Update applies changes (column -> value) to the row with the given id
	// and returns the updated row. Zero affected rows yields ErrNotFound.
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Property, error)
	Delete(ctx context.Context, id uint) error
}

// BookingStore persists bookings
type BookingStore interface {
	Create(ctx context.Context, booking *model.Booking) error
}

// Stores groups the repositories sharing one connection
type Stores struct {
	Users      UserStore
	Properties PropertyStore
	Bookings   BookingStore
}

// New builds all repositories over db
func New(db *gorm.DB) *Stores {
	return &Stores{
		Users:      NewUserRepository(db),
		Properties: NewPropertyRepository(db),
		Bookings:   NewBookingRepository(db),
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
