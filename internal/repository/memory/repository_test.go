package memory

import (
	"testing"

	"task-tracker/internal/repository"
	"task-tracker/internal/repository/repositorytest"
)

func TestMemoryRepository_Contract(t *testing.T) {
	repositorytest.RunContractTests(t, func(t *testing.T) repository.Repository {
		return New()
	})
}

func TestMemoryRepository_Close(t *testing.T) {
	repo := New()
	if err := repo.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
