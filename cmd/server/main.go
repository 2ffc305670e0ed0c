package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/mykweza/kweza-backend/internal/config"
	"github.com/mykweza/kweza-backend/internal/database"
	"github.com/mykweza/kweza-backend/internal/handlers"
	"github.com/mykweza/kweza-backend/internal/logging"
	"github.com/mykweza/kweza-backend/internal/metrics"
	"github.com/mykweza/kweza-backend/internal/middleware"
	"github.com/mykweza/kweza-backend/internal/routes"
	"github.com/mykweza/kweza-backend/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	m := metrics.Registry("kweza")

	// Services
	notificationService := services.NewNotificationService(database.DB, m)
	authService := services.NewAuthService(database.DB, cfg)
	settingsService := services.NewSettingsService(database.DB)
	userService := services.NewUserService(database.DB)
	payoutService := services.NewPayoutService(database.DB)
	revenueService := services.NewRevenueService(database.DB, settingsService)
	withdrawalService := services.NewWithdrawalService(database.DB, notificationService, m)
	complaintService := services.NewComplaintService(database.DB, notificationService)
	reportService := services.NewReportService(database.DB, notificationService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	profileHandler := handlers.NewProfileHandler(authService)
	payoutHandler := handlers.NewPayoutHandler(payoutService)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(revenueService, userService)
	superHandler := handlers.NewSuperHandler(userService, payoutService, revenueService, settingsService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	healthHandler := handlers.NewHealthHandler(database.DB)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})
	app.Use(middleware.Metrics(m))

	// Routes
	routes.Setup(app, cfg,
		authHandler, profileHandler, payoutHandler, withdrawalHandler,
		complaintHandler, reportHandler, adminHandler, superHandler,
		notificationHandler, healthHandler)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Never leak server error details to clients
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
