package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository"
	"task-tracker/internal/validation"
)

// API defines the task operations offered to transports.
type API interface {
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, title, description string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
	CountTasks(ctx context.Context) (int, error)
}

type apiImpl struct {
	repo          repository.Repository
	taskValidator *validation.TaskValidator
	newID         func() string
	now           func() time.Time
}

// Option configures the API
type Option func(*apiImpl)

// WithValidator replaces the default task validator
func WithValidator(v *validation.TaskValidator) Option {
	return func(a *apiImpl) {
		a.taskValidator = v
	}
}

// WithIDGenerator replaces uuid.NewString as the id source
func WithIDGenerator(fn func() string) Option {
	return func(a *apiImpl) {
		a.newID = fn
	}
}

// WithClock replaces time.Now as the creation timestamp source
func WithClock(fn func() time.Time) Option {
	return func(a *apiImpl) {
		a.now = fn
	}
}

// New creates a new API instance.
func New(repo repository.Repository, opts ...Option) API {
	a := &apiImpl{
		repo:          repo,
		taskValidator: validation.NewTaskValidator(),
		newID:         uuid.NewString,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := a.repo.List(ctx)
	if err != nil {
		logging.ErrorContext(ctx, "list tasks failed", "error", err)
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	logging.DebugContext(ctx, "listed tasks", "count", len(tasks))
	return tasks, nil
}

func (a *apiImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := a.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	logging.DebugContext(ctx, "fetched task", "task_id", id)
	return task, nil
}

func (a *apiImpl) CreateTask(ctx context.Context, title, description string) (*domain.Task, error) {
	cleanedTitle, err := a.taskValidator.GetValidTitle(title)
	if err != nil {
		return nil, wrapValidation(err)
	}

	// UTC drops the monotonic reading so stored and returned records compare equal
	task := domain.NewTask(a.newID(), cleanedTitle, description, a.now().UTC())
	if err := a.repo.Create(ctx, task); err != nil {
		logging.ErrorContext(ctx, "create task failed", "error", err)
		return nil, err
	}

	logging.InfoContext(ctx, "task created", "task_id", task.ID)
	return &task, nil
}

func (a *apiImpl) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	patch, err := a.taskValidator.NormalizePatch(patch)
	if err != nil {
		return nil, wrapValidation(err)
	}

	updated, err := a.repo.Update(ctx, id, func(task *domain.Task) error {
		patch.Apply(task)
		return nil
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			logging.ErrorContext(ctx, "update task failed", "task_id", id, "error", err)
		}
		return nil, err
	}

	logging.InfoContext(ctx, "task updated", "task_id", id, "completed", updated.Completed)
	return updated, nil
}

func (a *apiImpl) DeleteTask(ctx context.Context, id string) (bool, error) {
	removed, err := a.repo.Delete(ctx, id)
	if err != nil {
		logging.ErrorContext(ctx, "delete task failed", "task_id", id, "error", err)
		return false, err
	}
	if removed {
		logging.InfoContext(ctx, "task deleted", "task_id", id)
	}
	return removed, nil
}

func (a *apiImpl) CountTasks(ctx context.Context) (int, error) {
	return a.repo.Count(ctx)
}

// wrapValidation lifts a field-level validation failure into an AppError
func wrapValidation(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return errors.NewValidationError(err.Error(), err)
}
