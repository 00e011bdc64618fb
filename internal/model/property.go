package model

import (
	"time"

	"github.com/lib/pq"
)

// Property represents a listing guests can book. It has no owner column.
type Property struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"type:varchar(255)"`
	Description string         `json:"description" gorm:"type:text"`
	Type        string         `json:"type" gorm:"type:varchar(255)"`
	Location    string         `json:"location" gorm:"type:varchar(255)"`
	Price       float64        `json:"price"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Bedrooms    int            `json:"bedrooms"`
	Beds        int            `json:"beds"`
	Bathrooms   int            `json:"bathrooms"`
	MaxGuests   int            `json:"maxGuests"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Rating      float64        `json:"rating"`
	IsBooked    bool           `json:"isBooked"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
