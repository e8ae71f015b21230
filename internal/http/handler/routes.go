package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"greetapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Fixed routes are registered before the /:username catch-all so they are
// never shadowed by it. Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.GreetingService, welcome string) {
	app.Get("/", Index(welcome))

	// Health endpoint: checks DB connectivity only
	app.Get("/health", HealthCheck(db))

	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/visits", ListVisits(svc))
	api.Get("/visits/:username", GetVisit(svc))
	api.Delete("/visits/:username", DeleteVisit(svc))

	// Catch-all greeting route; must stay last.
	app.Get("/:username", GreetUser(svc))
}
