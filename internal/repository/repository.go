// Package repository defines the storage contract for tasks. Implementations
// live in the memory and sqlite subpackages.
package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// Repository defines the interface for task storage. Every method is atomic
// with respect to every other method; callers only ever receive copies.
type Repository interface {
	// Create stores a new task. A duplicate id yields a conflict error.
	Create(ctx context.Context, task domain.Task) error

	// Get returns the task with the given id or a not found error.
	Get(ctx context.Context, id string) (*domain.Task, error)

	// List returns all tasks in creation order, oldest first.
	List(ctx context.Context) ([]*domain.Task, error)

	// Update runs mutate against the stored task and persists the result
	// atomically. If mutate returns an error nothing is written.
	Update(ctx context.Context, id string, mutate func(*domain.Task) error) (*domain.Task, error)

	// Delete removes the task and reports whether anything was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int, error)

	Close() error
}
