package server

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker/internal/api"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

type TaskHandler struct {
	taskAPI api.API
}

func NewTaskHandler(taskAPI api.API) *TaskHandler {
	return &TaskHandler{
		taskAPI: taskAPI,
	}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.taskAPI.ListTasks(c.UserContext())
	if err != nil {
		return err
	}
	return SuccessResponse(c, tasks)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskAPI.GetTask(c.UserContext(), id)
	if err != nil {
		return err
	}
	return SuccessResponse(c, task)
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	fields, err := decodeTaskFields(c.Body())
	if err != nil {
		logging.WarnContext(ctx, "invalid request body", "error", err)
		return err
	}

	var title, description string
	if fields.Title != nil {
		title = *fields.Title
	}
	if fields.Description != nil {
		description = *fields.Description
	}

	task, err := h.taskAPI.CreateTask(ctx, title, description)
	if err != nil {
		return err
	}
	return CreatedResponse(c, task)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := taskID(c)
	if err != nil {
		return err
	}

	fields, err := decodeTaskFields(c.Body())
	if err != nil {
		logging.WarnContext(ctx, "invalid request body", "error", err)
		return err
	}

	task, err := h.taskAPI.UpdateTask(ctx, id, fields.Patch())
	if err != nil {
		return err
	}
	return SuccessResponse(c, task)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	removed, err := h.taskAPI.DeleteTask(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.NewNotFoundError("task", id)
	}
	return SuccessResponse(c, DeleteResponse{Message: "task deleted", ID: id})
}

type HealthHandler struct {
	taskAPI api.API
	storage string
}

func NewHealthHandler(taskAPI api.API, storage string) *HealthHandler {
	return &HealthHandler{
		taskAPI: taskAPI,
		storage: storage,
	}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	count, err := h.taskAPI.CountTasks(c.UserContext())
	if err != nil {
		return err
	}
	return SuccessResponse(c, HealthResponse{Status: "ok", Storage: h.storage, Tasks: count})
}
