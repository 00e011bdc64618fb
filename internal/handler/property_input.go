package handler

import (
	"booking-service/internal/model"

	"github.com/lib/pq"
)

// PropertyInput is the allowlist of writable property fields. Fields left out
// of the request body stay nil and are not written; unknown fields are ignored.
type PropertyInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Type        *string   `json:"type"`
	Location    *string   `json:"location"`
	Price       *float64  `json:"price"`
	Images      *[]string `json:"images"`
	Bedrooms    *int      `json:"bedrooms"`
	Beds        *int      `json:"beds"`
	Bathrooms   *int      `json:"bathrooms"`
	MaxGuests   *int      `json:"maxGuests"`
	Amenities   *[]string `json:"amenities"`
	Rating      *float64  `json:"rating"`
	IsBooked    *bool     `json:"isBooked"`
}

// Property builds a new record from the supplied fields
func (in *PropertyInput) Property() *model.Property {
	p := &model.Property{}
	applyChanges(p, in.Changes())
	return p
}

// applyChanges copies column values produced by Changes onto p
func applyChanges(p *model.Property, changes map[string]interface{}) {
	for column, value := range changes {
		switch column {
		case "title":
			p.Title = value.(string)
		case "description":
			p.Description = value.(string)
		case "type":
			p.Type = value.(string)
		case "location":
			p.Location = value.(string)
		case "price":
			p.Price = value.(float64)
		case "images":
			p.Images = value.(pq.StringArray)
		case "bedrooms":
			p.Bedrooms = value.(int)
		case "beds":
			p.Beds = value.(int)
		case "bathrooms":
			p.Bathrooms = value.(int)
		case "max_guests":
			p.MaxGuests = value.(int)
		case "amenities":
			p.Amenities = value.(pq.StringArray)
		case "rating":
			p.Rating = value.(float64)
		case "is_booked":
			p.IsBooked = value.(bool)
		}
	}
}

// Changes maps each supplied field to its column
func (in *PropertyInput) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Type != nil {
		changes["type"] = *in.Type
	}
	if in.Location != nil {
		changes["location"] = *in.Location
	}
	if in.Price != nil {
		changes["price"] = *in.Price
	}
	if in.Images != nil {
		changes["images"] = pq.StringArray(*in.Images)
	}
	if in.Bedrooms != nil {
		changes["bedrooms"] = *in.Bedrooms
	}
	if in.Beds != nil {
		changes["beds"] = *in.Beds
	}
	if in.Bathrooms != nil {
		changes["bathrooms"] = *in.Bathrooms
	}
	if in.MaxGuests != nil {
		changes["max_guests"] = *in.MaxGuests
	}
	if in.Amenities != nil {
		changes["amenities"] = pq.StringArray(*in.Amenities)
	}
	if in.Rating != nil {
		changes["rating"] = *in.Rating
	}
	if in.IsBooked != nil {
		changes["is_booked"] = *in.IsBooked
	}
	return changes
}
