package main

import (
	"booking-service/internal/handler"
	"booking-service/internal/middleware"
	"booking-service/internal/store"
	"booking-service/pkg/config"
	"booking-service/pkg/database"
	"booking-service/pkg/jwtutil"
	"booking-service/pkg/logger"
	"booking-service/pkg/validator"
	"booking-service/prometheus"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()
	log.Info("Starting booking service...", cfg.LogConfig()...)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})
	prometheus.SetVersion(version)

	h := handler.New(store.New(db), jwt)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
	}))
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(middleware.MetricsMiddleware)

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)
	h.Register(e, middleware.AuthMiddleware(jwt))

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server forced to shut down", zap.Error(err))
	}
	log.Info("Server stopped")
}
