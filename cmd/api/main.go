package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"greetapi/docs"
	"greetapi/internal/config"
	"greetapi/internal/database"
	"greetapi/internal/database/migration"
	handlers "greetapi/internal/http/handler"
	"greetapi/internal/http/middleware"
	otelinit "greetapi/internal/otel"
	"greetapi/internal/repository/postgres"
	"greetapi/internal/service"
)

// @title Greeting API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Initialize tracing; degrades to noop when the exporter is unreachable
	shutdownTracing, err := otelinit.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize repository and service
	visitRepo := postgres.NewVisitPostgres(db)
	greetSvc := service.NewGreetingService(visitRepo)

	app := fiber.New(fiber.Config{
		AppName:           cfg.AppName,
		EnablePrintRoutes: cfg.Debug,
		ErrorHandler:      handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// HTTP server spans
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())

	// Prometheus exposition
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

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

	// Register HTTP routes last: RegisterRoutes installs the /:username
	// catch-all, which must come after every fixed route.
	handlers.RegisterRoutes(app, db, greetSvc, cfg.Welcome)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
