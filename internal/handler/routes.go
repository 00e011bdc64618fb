package handler

import (
	"github.com/labstack/echo/v4"
)

// Register mounts every API route on e. Routes that mutate data go through auth.
func (h *Handler) Register(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/", h.Home)

	users := e.Group("/api/users")
	users.POST("/register", h.RegisterUser)
	users.POST("/login", h.Login)

	properties := e.Group("/api/properties")
	properties.GET("", h.ListProperties)
	properties.GET("/:id", h.GetProperty)
	properties.POST("", h.CreateProperty, auth)
	properties.PUT("/:id", h.UpdateProperty, auth)
	properties.DELETE("/:id", h.DeleteProperty, auth)

	bookings := e.Group("/api/bookings", auth)
	bookings.POST("", h.CreateBooking)
}
