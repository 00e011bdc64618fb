package handler

import (
	"booking-service/internal/model"
	"encoding/json"
	"fmt"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp accepts RFC 3339 timestamps as well as bare dates
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	var err error
	for _, layout := range timestampLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q: %w", s, err)
}

// BookingInput is the allowlist of booking fields with their constraints
type BookingInput struct {
	CheckIn    *Timestamp           `json:"checkIn" validate:"required"`
	CheckOut   *Timestamp           `json:"checkOut" validate:"required"`
	Guests     *int                 `json:"guests" validate:"required"`
	TotalPrice *float64             `json:"totalPrice" validate:"required"`
	Status     *model.BookingStatus `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

// Booking builds the record; call only after validation succeeded
func (in *BookingInput) Booking() *model.Booking {
	status := model.BookingStatusPending
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}
	return &model.Booking{
		CheckIn:    in.CheckIn.Time,
		CheckOut:   in.CheckOut.Time,
		Guests:     *in.Guests,
		TotalPrice: *in.TotalPrice,
		Status:     status,
	}
}
