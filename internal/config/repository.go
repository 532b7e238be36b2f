package config

import (
	"fmt"

	"task-tracker/internal/repository"
	"task-tracker/internal/repository/memory"
	"task-tracker/internal/repository/sqlite"
)

// CreateRepository creates the task store selected by the storage configuration
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Storage.Driver {
	case DriverMemory, "":
		return memory.New(), nil
	case DriverSQLite:
		repo, err := sqlite.New(config.Storage.DSN, sqlite.WithQueryTimeout(config.Storage.QueryTimeout))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "storage.driver", Message: fmt.Sprintf("unknown storage driver %q", config.Storage.Driver)}
	}
}
