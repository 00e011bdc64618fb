package handler

import (
	"booking-service/internal/store"
	"booking-service/pkg/jwtutil"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves the HTTP API. It holds no per-request state; every
// dependency is constructed once at startup and injected here.
type Handler struct {
	users      store.UserStore
	properties store.PropertyStore
	bookings   store.BookingStore
	jwt        *jwtutil.JWTUtil
}

// New creates a Handler over the given stores and token utility
func New(stores *store.Stores, jwt *jwtutil.JWTUtil) *Handler {
	return &Handler{
		users:      stores.Users,
		properties: stores.Properties,
		bookings:   stores.Bookings,
		jwt:        jwt,
	}
}

// serverError writes a 500 that echoes the underlying error text
func serverError(c echo.Context, message string, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
}

// fieldTypeError reports whether a bind failure came from a well-formed body
// carrying a value that does not fit its field, such as a string price or an
// unparseable date.
func fieldTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	var parseErr *time.ParseError
	return errors.As(err, &typeErr) || errors.As(err, &parseErr)
}

// parseID reads the :id path parameter. A malformed id can never match a row.
func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
