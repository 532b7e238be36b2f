package cli

import (
	"context"
	"strings"

	"task-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app         *App
	description string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, description string) *AddCommand {
	return &AddCommand{app: app, description: description}
}

// Execute creates a task whose title is the arguments joined by spaces
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("title", "", "usage: tasks add <title...>")
	}

	task, err := c.app.tasks.Create(ctx, strings.Join(args, " "), c.description)
	if err != nil {
		return NewErrorHandler().Handle("add task", err)
	}
	return c.app.printer.PrintTask(task)
}
