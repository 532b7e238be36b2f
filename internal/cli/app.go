package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// TaskService is the remote task API the commands drive. *client.Client satisfies it.
type TaskService interface {
	List(ctx context.Context) ([]*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, title, description string) (*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// App represents the main CLI application
type App struct {
	tasks    TaskService
	config   *config.Config
	printer  *Printer
	registry *CommandRegistry
}

// NewApp creates a CLI application printing tables to stdout
func NewApp(tasks TaskService) *App {
	return NewAppWithConfig(tasks, config.NewConfig(), os.Stdout)
}

// NewAppWithConfig creates a CLI application using cfg for output format and timeouts
func NewAppWithConfig(tasks TaskService, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		tasks:   tasks,
		config:  cfg,
		printer: NewPrinter(out, cfg.Client.OutputFormat),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the named command with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

// Printer returns the printer commands write to
func (a *App) Printer() *Printer {
	return a.printer
}
