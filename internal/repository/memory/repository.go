package memory

import (
	"context"
	"sync"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
)

var _ repository.Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps tasks in process memory. The order slice holds ids in
// creation order; tasks holds the records keyed by id.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
	order []string
}

// New creates an empty in-memory repository
func New() *MemoryRepository {
	return &MemoryRepository{
		tasks: make(map[string]domain.Task),
	}
}

// Create adds a new task
func (r *MemoryRepository) Create(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.ID]; exists {
		return errors.NewConflictError("task", task.ID)
	}
	r.tasks[task.ID] = task
	r.order = append(r.order, task.ID)
	return nil
}

// Get retrieves a task by ID
func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", id)
	}
	return &task, nil
}

// List returns all tasks, oldest first
func (r *MemoryRepository) List(_ context.Context) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(r.order))
	for _, id := range r.order {
		task := r.tasks[id]
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

// Update applies mutate to a copy of the task and stores it if mutate succeeds
func (r *MemoryRepository) Update(_ context.Context, id string, mutate func(*domain.Task) error) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", id)
	}

	updated := current
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	// identity and creation time belong to the store
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	r.tasks[current.ID] = updated
	return &updated, nil
}

// Delete removes a task and reports whether it existed
func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Count returns the number of stored tasks
func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}

// Close releases nothing; it exists to satisfy repository.Repository
func (r *MemoryRepository) Close() error {
	return nil
}
