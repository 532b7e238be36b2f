package cli

import (
	"context"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// EditOptions carries only the fields the user asked to change
type EditOptions struct {
	Title       *string
	Description *string
	Completed   *bool
}

// EditCommand handles the edit command
type EditCommand struct {
	app  *App
	opts EditOptions
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App, opts EditOptions) *EditCommand {
	return &EditCommand{app: app, opts: opts}
}

// Execute sends a partial update for the task with the given id
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "usage: tasks edit <id> [--title t] [--description d] [--completed]")
	}

	patch := domain.TaskPatch{
		Title:       c.opts.Title,
		Description: c.opts.Description,
		Completed:   c.opts.Completed,
	}
	if patch.IsEmpty() {
		return errors.NewInvalidInputError("flags", nil, "nothing to change; set --title, --description or --completed")
	}

	task, err := c.app.tasks.Update(ctx, args[0], patch)
	if err != nil {
		return NewErrorHandler().Handle("edit task", err)
	}
	return c.app.printer.PrintTask(task)
}
