// @title         roadmap-service API
// @version       1.0
// @description   Generates learning roadmaps (prerequisites, steps, resources) for a technology using a chat-completion model.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/roadmap/docs"

	// internal imports
	"github.com/artem13815/roadmap/api/http"
	"github.com/artem13815/roadmap/api/http/handlers"
	"github.com/artem13815/roadmap/pkg/config"
	"github.com/artem13815/roadmap/pkg/health"
	"github.com/artem13815/roadmap/pkg/health/checkers"
	"github.com/artem13815/roadmap/pkg/llm/openai"
	"github.com/artem13815/roadmap/pkg/logger"
	"github.com/artem13815/roadmap/pkg/roadmap"
)

func main() {
	// Load configuration from env/.env and optional CONFIG_FILE
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()

	app := fiber.New(fiber.Config{AppName: "roadmap-service"})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	// Chat-completion client
	llmClient := openai.New(openai.Options{
		BaseURL:      cfg.LLM.BaseURL,
		Model:        cfg.LLM.Model,
		APIKey:       cfg.LLM.APIKey,
		SystemPrompt: cfg.LLM.SystemPrompt,
		Timeout:      cfg.LLM.Timeout,
		Logger:       lg.With("component", "llm"),
	})
	lg.Info("chat completions configured", llmFields(cfg.LLM, llmClient)...)

	roadmapSvc := roadmap.NewService(llmClient,
		roadmap.WithLogger(lg.With("component", "roadmap")),
		roadmap.WithDebugLog(cfg.LLM.DebugLog),
	)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapSvc, lg.With("component", "http"))

	readiness := health.NewService(checkers.NewCompletionChecker(llmClient.Endpoint(), llmClient.Model))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	http.Register(app, healthHandler, roadmapHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	lg.Info("HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", "error", err)
	}
}

// llmFields describes the completion client for the startup log without the API key.
func llmFields(cfg config.LLM, c *openai.Client) []interface{} {
	return []interface{}{
		"endpoint", c.Endpoint(),
		"model", c.Model,
		"auth_configured", cfg.APIKey != "",
		"timeout", cfg.Timeout.String(),
		"debug_log", cfg.DebugLog,
	}
}
