package cli

import (
	"context"
	"fmt"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository"
	"task-tracker/internal/server"
	"task-tracker/internal/validation"
)

// ServeCommand runs the HTTP task server until SIGINT or SIGTERM
type ServeCommand struct {
	config *config.Config
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(cfg *config.Config) *ServeCommand {
	return &ServeCommand{config: cfg}
}

// Execute builds the stack from configuration and blocks until shutdown
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	logCloser, err := logging.Init(c.config.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logCloser.Close()

	srv, repo, err := BuildServer(c.config)
	if err != nil {
		return err
	}

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.Start()
	}()

	logging.GetLogger().Info("task server ready",
		"addr", c.config.Address(),
		"storage", c.config.Storage.Driver,
		"prefix", c.config.Server.APIPrefix,
	)

	wait := gfshutdown.GracefulShutdown(ctx, c.config.Server.ShutdownTimeout, map[string]gfshutdown.Operation{
		"task-server": ShutdownOperation(srv, repo),
	})

	return waitForExit(listenErr, wait, repo)
}

// waitForExit blocks until the shutdown sequence reports its exit code. A
// listen failure aborts early; a nil listen result only means Shutdown has
// started, so the exit code is still awaited.
func waitForExit(listenErr <-chan error, wait <-chan int, repo repository.Repository) error {
	for {
		select {
		case err := <-listenErr:
			if err != nil {
				repo.Close()
				return err
			}
			listenErr = nil
		case exitCode := <-wait:
			if exitCode != 0 {
				return fmt.Errorf("shutdown finished with exit code %d", exitCode)
			}
			return nil
		}
	}
}

// BuildServer wires storage, the task API and the HTTP server from cfg.
// The caller owns the returned repository.
func BuildServer(cfg *config.Config) (*server.Server, repository.Repository, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	taskAPI := api.New(repo, api.WithValidator(validation.NewTaskValidatorWithConfig(cfg)))
	return server.New(cfg, taskAPI), repo, nil
}

// ShutdownOperation drains the server, then closes storage
func ShutdownOperation(srv *server.Server, repo repository.Repository) gfshutdown.Operation {
	return func(ctx context.Context) error {
		logging.GetLogger().Info("graceful shutdown initiated")
		serverErr := srv.Shutdown(ctx)
		if err := repo.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		return serverErr
	}
}
