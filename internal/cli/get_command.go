package cli

import (
	"context"

	"task-tracker/internal/errors"
)

// GetCommand handles the get command
type GetCommand struct {
	app *App
}

// NewGetCommand creates a new get command handler
func NewGetCommand(app *App) *GetCommand {
	return &GetCommand{app: app}
}

// Execute prints the task with the given id
func (c *GetCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "usage: tasks get <id>")
	}

	task, err := c.app.tasks.Get(ctx, args[0])
	if err != nil {
		return NewErrorHandler().Handle("get task", err)
	}
	return c.app.printer.PrintTask(task)
}
