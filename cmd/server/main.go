package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Freeeeeet/studio_booking/internal/app"
	"github.com/Freeeeeet/studio_booking/internal/config"
	"github.com/Freeeeeet/studio_booking/internal/controller"
	"github.com/Freeeeeet/studio_booking/internal/repository"
	"github.com/Freeeeeet/studio_booking/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	coachRepo := repository.NewCoachRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	availRepo := repository.NewAvailabilityRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	coachService := service.NewCoachService(coachRepo, availRepo, logger)
	availService := service.NewAvailabilityService(coachRepo, availRepo, bookingRepo, logger)
	bookingService := service.NewBookingService(coachRepo, studentRepo, availRepo, bookingRepo, logger)
	calendarService := service.NewCalendarService(coachRepo, availRepo, bookingRepo, logger)

	fiberApp := fiber.New(fiber.Config{
		AppName:      "studio_booking",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	router := controller.NewRouter(coachService, availService, bookingService, calendarService, logger)
	router.Register(fiberApp)

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
		)
		if err := fiberApp.Listen(cfg.HTTPAddr); err != nil {
			logger.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	if err := fiberApp.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
