package cli

import (
	"context"

	"task-tracker/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute deletes every id given; it stops at the first failure
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("id", "", "usage: tasks delete <id...>")
	}

	for _, id := range args {
		if err := c.app.tasks.Delete(ctx, id); err != nil {
			return NewErrorHandler().Handle("delete task", err)
		}
		if err := c.app.printer.PrintMessage("Deleted task", id); err != nil {
			return err
		}
	}
	return nil
}
