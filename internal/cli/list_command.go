package cli

import (
	"context"

	"task-tracker/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints every task in creation order
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("args", args, "list takes no arguments")
	}

	tasks, err := c.app.tasks.List(ctx)
	if err != nil {
		return NewErrorHandler().Handle("list tasks", err)
	}
	return c.app.printer.PrintTasks(tasks)
}
