package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"task-tracker/internal/api"
	"task-tracker/internal/client"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/memory"
)

// fakeTaskService drives the real task API over an in-memory store, so
// commands see the same errors they would get from a server.
type fakeTaskService struct {
	api       api.API
	calls     []string
	lastPatch domain.TaskPatch
	err       error
}

func newFakeTaskService(t *testing.T) *fakeTaskService {
	t.Helper()
	return &fakeTaskService{
		api: api.New(memory.New(), api.WithClock(func() time.Time { return fixedTime })),
	}
}

func (f *fakeTaskService) List(ctx context.Context) ([]*domain.Task, error) {
	f.calls = append(f.calls, "list")
	if f.err != nil {
		return nil, f.err
	}
	return f.api.ListTasks(ctx)
}

func (f *fakeTaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	f.calls = append(f.calls, "get "+id)
	if f.err != nil {
		return nil, f.err
	}
	return f.api.GetTask(ctx, id)
}

func (f *fakeTaskService) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	f.calls = append(f.calls, "create "+title)
	if f.err != nil {
		return nil, f.err
	}
	return f.api.CreateTask(ctx, title, description)
}

func (f *fakeTaskService) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	f.calls = append(f.calls, "update "+id)
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return f.api.UpdateTask(ctx, id, patch)
}

func (f *fakeTaskService) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	if f.err != nil {
		return f.err
	}
	removed, err := f.api.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.NewNotFoundError("task", id)
	}
	return nil
}

func (f *fakeTaskService) Health(ctx context.Context) (*client.HealthStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	count, err := f.api.CountTasks(ctx)
	if err != nil {
		return nil, err
	}
	return &client.HealthStatus{Status: "ok", Storage: "memory", Tasks: count}, nil
}

func (f *fakeTaskService) mustCreate(t *testing.T, title string) *domain.Task {
	t.Helper()
	task, err := f.api.CreateTask(context.Background(), title, "")
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return task
}

// setupTestApp returns an app writing to a buffer in the given format
func setupTestApp(t *testing.T, format string) (*App, *fakeTaskService, *bytes.Buffer) {
	t.Helper()
	fake := newFakeTaskService(t)
	cfg := config.NewConfig()
	cfg.Client.OutputFormat = format
	out := &bytes.Buffer{}
	return NewAppWithConfig(fake, cfg, out), fake, out
}

var fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}
