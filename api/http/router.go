package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/roadmap/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, rm *handlers.RoadmapHandler) {
	// Server-rendered form
	app.Get("/", rm.Page)
	app.Post("/", rm.Submit)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/roadmap", rm.Generate)
}
