package model

import "time"

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the known statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Booking is a free-standing reservation record. It is not linked to a
// property or user row.
type Booking struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	CheckIn    time.Time     `json:"checkIn" gorm:"not null"`
	CheckOut   time.Time     `json:"checkOut" gorm:"not null"`
	Guests     int           `json:"guests" gorm:"not null"`
	TotalPrice float64       `json:"totalPrice" gorm:"not null"`
	Status     BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','confirmed','cancelled','completed')"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
