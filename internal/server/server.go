// Package server exposes the task API over HTTP with fiber.
package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/logging"
)

type Server struct {
	app  *fiber.App
	addr string
}

// New builds the fiber app with middleware and routes wired to taskAPI
func New(cfg *config.Config, taskAPI api.API) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "task-tracker",
		ErrorHandler:          ErrorHandler(),
		BodyLimit:             cfg.Server.BodyLimit,
		ReadTimeout:           cfg.Server.ReadTimeout,
		DisableStartupMessage: true,
		Immutable:             true,
	})

	// order matters: the request id must exist before the access log runs
	app.Use(RequestIDMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(recover.New())
	app.Use(CorsMiddleware(cfg.Server.CORSOrigins))

	SetupRoutes(app,
		NewTaskHandler(taskAPI),
		NewHealthHandler(taskAPI, cfg.Storage.Driver),
		cfg.Server.APIPrefix,
	)

	return &Server{
		app:  app,
		addr: cfg.Address(),
	}
}

// App exposes the underlying fiber app, mainly for app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens until the server is shut down
func (s *Server) Start() error {
	logging.GetLogger().Info("server starting", "addr", s.addr)
	if err := s.app.Listen(s.addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	logging.GetLogger().Info("server stopped")
	return nil
}
