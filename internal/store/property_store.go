package store

import (
	"booking-service/internal/model"
	"booking-service/prometheus"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PropertyRepository is the GORM-backed PropertyStore
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a PropertyRepository over db
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// List returns every property
func (r *PropertyRepository) List(ctx context.Context) ([]model.Property, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	properties := []model.Property{}
	if err := r.db.WithContext(ctx).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Get returns the property with the given id or ErrNotFound
func (r *PropertyRepository) Get(ctx context.Context, id uint) (*model.Property, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var property model.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, translate(err)
	}
	return &property, nil
}

// Create inserts property and fills in its generated id
func (r *PropertyRepository) Create(ctx context.Context, property *model.Property) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return r.db.WithContext(ctx).Create(property).Error
}

// Update issues a single UPDATE ... RETURNING. An empty change set never
// reaches the database and counts as zero affected rows.
func (r *PropertyRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Property, error) {
	if len(changes) == 0 {
		return nil, ErrNotFound
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	var updated []model.Property
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, ErrNotFound
	}
	return &updated[0], nil
}

// Delete removes the row with the given id. No matching row is ErrNotFound.
func (r *PropertyRepository) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).Delete(&model.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
