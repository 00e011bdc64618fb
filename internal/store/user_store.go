package store

import (
	"booking-service/internal/model"
	"booking-service/prometheus"
	"context"
	"time"

	"gorm.io/gorm"
)

// UserRepository is the GORM-backed UserStore
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository over db
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the user with the given email or ErrNotFound
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Create inserts user; the model's BeforeCreate hook hashes the password.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return r.db.WithContext(ctx).Create(user).Error
}
