package handler

import (
	"booking-service/internal/model"
	"booking-service/internal/store"
	"booking-service/pkg/logger"
	"booking-service/prometheus"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RegisterRequest lists the fields accepted at registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IsHost   bool   `json:"isHost"`
}

// LoginRequest lists the fields accepted at login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by a successful register or login
type AuthResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    model.UserView `json:"user"`
}

// RegisterUser handles creating a new account and returns a token for it
func (h *Handler) RegisterUser(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()
	ctx := c.Request().Context()

	// Parse request
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		if fieldTypeError(err) {
			return registrationError(c, err)
		}
		return invalidBody(c)
	}

	// Check if email already exists
	existing, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("Failed to look up user", zap.String("email", req.Email), zap.Error(err))
		return registrationError(c, err)
	}
	if existing != nil {
		log.Warn("User already exists", zap.String("email", req.Email))
		prometheus.RecordAuthError("email_already_exists")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "User already exists",
		})
	}

	// Field constraints are enforced at creation, so a bad email is a create failure.
	if err := c.Validate(&req); err != nil {
		log.Warn("Invalid registration data", zap.String("email", req.Email), zap.Error(err))
		return registrationError(c, err)
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsHost:   req.IsHost,
	}
	if err := h.users.Create(ctx, &user); err != nil {
		log.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return registrationError(c, err)
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email, user.IsHost)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return registrationError(c, err)
	}

	log.Info("User registered", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    user.View(),
	})
}

// Login handles user authentication and returns a fresh token
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()
	ctx := c.Request().Context()

	// Parse request
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return invalidBody(c)
	}

	user, err := h.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("Login failed", zap.String("email", req.Email))
		return invalidCredentials(c)
	}
	if err != nil {
		log.Error("Failed to look up user", zap.String("email", req.Email), zap.Error(err))
		return loginError(c, err)
	}

	// Verify password
	if !user.CheckPassword(req.Password) {
		log.Warn("Login failed", zap.String("email", req.Email))
		return invalidCredentials(c)
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email, user.IsHost)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return loginError(c, err)
	}

	log.Info("User logged in", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "User logged in successfully",
		Token:   token,
		User:    user.View(),
	})
}

// invalidCredentials does not say whether the email or the password was wrong
func invalidCredentials(c echo.Context) error {
	prometheus.RecordAuthError("invalid_credentials")
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false,
		"message": "Invalid credentials",
	})
}

func registrationError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"success": false,
		"message": "Server error during registration",
		"error":   err.Error(),
	})
}

func loginError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"success": false,
		"message": "Server error during login",
		"error":   err.Error(),
	})
}
