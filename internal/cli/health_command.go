package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/client"
	"task-tracker/internal/errors"
)

// HealthChecker is implemented by services that can check server health
type HealthChecker interface {
	Health(ctx context.Context) (*client.HealthStatus, error)
}

// HealthCommand handles the health command
type HealthCommand struct {
	app *App
}

// NewHealthCommand creates a new health command handler
func NewHealthCommand(app *App) *HealthCommand {
	return &HealthCommand{app: app}
}

// Execute prints the server status, storage driver and task count
func (c *HealthCommand) Execute(ctx context.Context, args []string) error {
	checker, ok := c.app.tasks.(HealthChecker)
	if !ok {
		return errors.NewInternalError("task service does not support health checks", nil)
	}

	status, err := checker.Health(ctx)
	if err != nil {
		return NewErrorHandler().Handle("check server health", err)
	}

	if c.app.printer.Format() == FormatJSON {
		return c.app.printer.printJSON(status)
	}
	_, err = fmt.Fprintf(c.app.printer.out, "%s (storage: %s, tasks: %d)\n", status.Status, status.Storage, status.Tasks)
	return err
}
