package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"starterkit/internal/config"
	"starterkit/internal/database"
	handlers "starterkit/internal/http/handler"
	"starterkit/internal/http/middleware"
	"starterkit/internal/logging"
	"starterkit/internal/model"
	"starterkit/internal/otel"
	"starterkit/internal/repository/gormdb"
	"starterkit/internal/service"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.SecretKey == "" {
		logger.Warn("SECRET_KEY is not set; set it before exposing this service")
	}

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_* is configured)
	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(ctx) }()

	// Open the database and bring the schema up to date
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db, logger, model.All()...); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get raw DB connection", zap.Error(err))
	}

	// Initialize repositories and services
	noteRepo := gormdb.NewNoteGorm(db)
	noteSvc := service.NewNoteService(noteRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// Structured request logs
	app.Use(middleware.Logger(logger))
	// Trace spans per request
	app.Use(otelfiber.Middleware())

	// Request metrics plus the /metrics scrape endpoint
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, sqlDB, noteSvc)

	addr := ":" + cfg.Port
	logger.Info("server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.String("db_driver", cfg.Database.Driver),
	)

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
