package cli

import (
	"context"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// CompleteCommand marks a task completed or pending
type CompleteCommand struct {
	app       *App
	completed bool
}

// NewCompleteCommand creates a handler setting completed on the target task
func NewCompleteCommand(app *App, completed bool) *CompleteCommand {
	return &CompleteCommand{app: app, completed: completed}
}

// Execute toggles the task with the given id
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "exactly one task id is required")
	}

	task, err := c.app.tasks.Update(ctx, args[0], domain.TaskPatch{Completed: domain.BoolPtr(c.completed)})
	if err != nil {
		operation := "complete task"
		if !c.completed {
			operation = "reopen task"
		}
		return NewErrorHandler().Handle(operation, err)
	}
	return c.app.printer.PrintTask(task)
}
