package main

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hvsrweb/docs"
	"hvsrweb/internal/config"
	handlers "hvsrweb/internal/http/handler"
	"hvsrweb/internal/http/middleware"
	"hvsrweb/internal/hvsr"
	"hvsrweb/internal/logging"
	"hvsrweb/internal/otel"
	"hvsrweb/internal/service"
	"hvsrweb/internal/session"
)

// @title HVSR Web API
// @version 0.2.0
// @description Browser front end for horizontal-to-vertical spectral ratio processing.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(ctx)

	// The processor owns the HVSR math; this service only talks to it.
	proc := hvsr.NewClient(cfg.Processor)

	// Session-scoped storage for records and calculations.
	store := session.NewMemoryStore(cfg.Session)

	records := service.NewRecordService(store, cfg.Upload, cfg.Demo, logger)
	calcs := service.NewCalculationService(store, proc, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Headroom over the record limit for multipart framing; the
		// per-file limit is enforced in the record service.
		BodyLimit: int(cfg.Upload.MaxBytes) + 1<<20,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	if cfg.MetricsEnabled {
		prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
		if err != nil {
			logger.Fatal("failed to register metrics", zap.Error(err))
		}
		app.Use(prom.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, proc, records, calcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	logger.Info("server starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
