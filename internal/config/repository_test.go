package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/repository/memory"
	"task-tracker/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		dsn     string
		check   func(t *testing.T, repo interface{})
		wantErr bool
	}{
		{
			name:   "memory driver",
			driver: DriverMemory,
			check: func(t *testing.T, repo interface{}) {
				if _, ok := repo.(*memory.MemoryRepository); !ok {
					t.Errorf("CreateRepository() returned %T, want *memory.MemoryRepository", repo)
				}
			},
		},
		{
			name:   "sqlite driver",
			driver: DriverSQLite,
			dsn:    filepath.Join(t.TempDir(), "tasks.db"),
			check: func(t *testing.T, repo interface{}) {
				if _, ok := repo.(*sqlite.SQLiteRepository); !ok {
					t.Errorf("CreateRepository() returned %T, want *sqlite.SQLiteRepository", repo)
				}
			},
		},
		{
			name:    "unknown driver",
			driver:  "postgres",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Storage.Driver = tt.driver
			if tt.dsn != "" {
				cfg.Storage.DSN = tt.dsn
			}

			repo, err := CreateRepository(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateRepository() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			defer repo.Close()
			tt.check(t, repo)

			ctx := context.Background()
			if err := repo.Create(ctx, domain.NewTask("t1", "Test Task", "", time.Now().UTC())); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			count, err := repo.Count(ctx)
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if count != 1 {
				t.Errorf("Count() = %d, want 1", count)
			}
		})
	}
}
