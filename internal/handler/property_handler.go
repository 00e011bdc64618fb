package handler

import (
	"booking-service/internal/store"
	"booking-service/pkg/logger"
	"booking-service/prometheus"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func propertyNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"message": "Property not found"})
}

// ListProperties returns every property, unfiltered
func (h *Handler) ListProperties(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPropertyOperation("list")

	properties, err := h.properties.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list properties", zap.Error(err))
		return serverError(c, "Error fetching properties", err)
	}

	log.Info("Properties retrieved successfully", zap.Int("count", len(properties)))
	return c.JSON(http.StatusOK, properties)
}

// GetProperty handles retrieving a single property by ID
func (h *Handler) GetProperty(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPropertyOperation("get")

	id, ok := parseID(c)
	if !ok {
		log.Warn("Invalid property ID", zap.String("property_id", c.Param("id")))
		return propertyNotFound(c)
	}

	property, err := h.properties.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("Property not found", zap.Uint("property_id", id))
		return propertyNotFound(c)
	}
	if err != nil {
		log.Error("Failed to get property", zap.Uint("property_id", id), zap.Error(err))
		return serverError(c, "Error fetching property", err)
	}

	return c.JSON(http.StatusOK, property)
}

// CreateProperty handles creating a property from the allowed fields
func (h *Handler) CreateProperty(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPropertyOperation("create")

	// Parse request
	var input PropertyInput
	if err := c.Bind(&input); err != nil {
		log.Warn("Invalid property data", zap.Error(err))
		if fieldTypeError(err) {
			return serverError(c, "Error creating property", err)
		}
		return invalidBody(c)
	}

	property := input.Property()
	if err := h.properties.Create(c.Request().Context(), property); err != nil {
		log.Error("Failed to create property", zap.Error(err))
		return serverError(c, "Error creating property", err)
	}

	log.Info("Property created successfully",
		zap.Uint("property_id", property.ID),
		zap.String("title", property.Title))
	return c.JSON(http.StatusCreated, property)
}

// UpdateProperty applies a partial update. When nothing is updated the
// response is 404, even if the row exists.
func (h *Handler) UpdateProperty(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPropertyOperation("update")

	id, ok := parseID(c)
	if !ok {
		log.Warn("Invalid property ID", zap.String("property_id", c.Param("id")))
		return propertyNotFound(c)
	}

	// Parse request
	var input PropertyInput
	if err := c.Bind(&input); err != nil {
		log.Warn("Invalid property data", zap.Uint("property_id", id), zap.Error(err))
		if fieldTypeError(err) {
			return serverError(c, "Error updating property", err)
		}
		return invalidBody(c)
	}

	changes := input.Changes()
	property, err := h.properties.Update(c.Request().Context(), id, changes)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("Property not updated",
			zap.Uint("property_id", id),
			zap.Int("fields", len(changes)))
		return propertyNotFound(c)
	}
	if err != nil {
		log.Error("Failed to update property", zap.Uint("property_id", id), zap.Error(err))
		return serverError(c, "Error updating property", err)
	}

	log.Info("Property updated successfully",
		zap.Uint("property_id", id),
		zap.Int("fields", len(changes)))
	return c.JSON(http.StatusOK, property)
}

// DeleteProperty handles removing a property by ID
func (h *Handler) DeleteProperty(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPropertyOperation("delete")

	id, ok := parseID(c)
	if !ok {
		log.Warn("Invalid property ID", zap.String("property_id", c.Param("id")))
		return propertyNotFound(c)
	}

	err := h.properties.Delete(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("Property not found for deletion", zap.Uint("property_id", id))
		return propertyNotFound(c)
	}
	if err != nil {
		log.Error("Failed to delete property", zap.Uint("property_id", id), zap.Error(err))
		return serverError(c, "Error deleting property", err)
	}

	log.Info("Property deleted successfully", zap.Uint("property_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Property deleted successfully"})
}
