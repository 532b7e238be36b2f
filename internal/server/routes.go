package server

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the task routes at /tasks and, when prefix is set, again under prefix
func SetupRoutes(app *fiber.App, tasks *TaskHandler, health *HealthHandler, prefix string) {
	app.Get("/health", health.Health)

	SetupTaskRoutes(app, tasks)
	if prefix != "" && prefix != "/" {
		SetupTaskRoutes(app.Group(prefix), tasks)
	}
}

func SetupTaskRoutes(router fiber.Router, h *TaskHandler) {
	router.Get("/tasks", h.ListTasks)
	router.Post("/tasks", h.CreateTask)
	router.Get("/tasks/:id", h.GetTask)
	router.Put("/tasks/:id", h.UpdateTask)
	router.Delete("/tasks/:id", h.DeleteTask)
}
