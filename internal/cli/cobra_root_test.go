package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

func clearTaskEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "TASKS_PORT", "TASKS_URL", "TASKS_OUTPUT_FORMAT", "TASKS_STORAGE_DRIVER", "TASKS_CLIENT_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func newTestRoot(t *testing.T, opts ...RootOption) (*RootCommand, *bytes.Buffer) {
	t.Helper()
	clearTaskEnv(t)
	out := &bytes.Buffer{}
	base := []RootOption{
		WithOutput(out),
		WithLoader(config.NewLoader().WithEnvFile("")),
	}
	return NewRootCommand(append(base, opts...)...), out
}

func runRoot(t *testing.T, root *RootCommand, args ...string) error {
	t.Helper()
	root.Command().SetArgs(args)
	return root.Execute()
}

func TestRootCommand_Subcommands(t *testing.T) {
	root, _ := newTestRoot(t)

	var names []string
	for _, cmd := range root.Command().Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"serve", "list", "get", "add", "edit", "done", "undone", "delete", "health"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	fake := newFakeTaskService(t)
	root, _ := newTestRoot(t, WithTaskService(fake))

	err := runRoot(t, root, "list",
		"--url", "http://example.test:8080/",
		"--timeout", "3s",
		"--output", "json",
		"--port", "4000",
		"--storage", "SQLITE",
		"--title-max-length", "40",
	)
	require.NoError(t, err)

	cfg := root.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://example.test:8080", cfg.Client.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "json", cfg.Client.OutputFormat)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, 40, cfg.Validation.TitleMaxLength)
}

func TestRootCommand_UnsetFlagsKeepEnvironment(t *testing.T) {
	fake := newFakeTaskService(t)
	root, _ := newTestRoot(t, WithTaskService(fake))
	t.Setenv("TASKS_OUTPUT_FORMAT", "json")
	t.Setenv("TASKS_PORT", "5050")

	require.NoError(t, runRoot(t, root, "list"))

	assert.Equal(t, "json", root.Config().Client.OutputFormat)
	assert.Equal(t, 5050, root.Config().Server.Port)
}

func TestRootCommand_InvalidOverride(t *testing.T) {
	fake := newFakeTaskService(t)
	root, _ := newTestRoot(t, WithTaskService(fake))

	err := runRoot(t, root, "list", "--output", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output format")
	assert.Empty(t, fake.calls)
}

func TestRootCommand_EditOnlySendsChangedFlags(t *testing.T) {
	fake := newFakeTaskService(t)
	task := fake.mustCreate(t, "Buy milk")
	root, _ := newTestRoot(t, WithTaskService(fake))

	require.NoError(t, runRoot(t, root, "edit", task.ID, "--completed"))

	require.NotNil(t, fake.lastPatch.Completed)
	assert.True(t, *fake.lastPatch.Completed)
	assert.Nil(t, fake.lastPatch.Title)
	assert.Nil(t, fake.lastPatch.Description)
}

func TestRootCommand_EditExplicitFalseAndEmpty(t *testing.T) {
	fake := newFakeTaskService(t)
	task := fake.mustCreate(t, "Buy milk")
	root, _ := newTestRoot(t, WithTaskService(fake))

	require.NoError(t, runRoot(t, root, "edit", task.ID, "--completed=false", "--description", ""))

	require.NotNil(t, fake.lastPatch.Completed)
	assert.False(t, *fake.lastPatch.Completed)
	require.NotNil(t, fake.lastPatch.Description)
	assert.Equal(t, "", *fake.lastPatch.Description)
	assert.Nil(t, fake.lastPatch.Title)
}

func TestRootCommand_AddWithDescription(t *testing.T) {
	fake := newFakeTaskService(t)
	root, out := newTestRoot(t, WithTaskService(fake))

	require.NoError(t, runRoot(t, root, "add", "Buy", "milk", "-d", "two litres", "-o", "json"))

	var task domain.Task
	require.NoError(t, json.Unmarshal(out.Bytes(), &task))
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "two litres", task.Description)
}

func TestRootCommand_ArgumentValidation(t *testing.T) {
	tests := [][]string{
		{"get"},
		{"get", "a", "b"},
		{"add"},
		{"done"},
		{"delete"},
		{"list", "extra"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			fake := newFakeTaskService(t)
			root, _ := newTestRoot(t, WithTaskService(fake))

			assert.Error(t, runRoot(t, root, args...))
			assert.Empty(t, fake.calls)
		})
	}
}

func TestRootCommand_AgainstRunningServer(t *testing.T) {
	cfg := config.NewConfig()
	srv, repo, err := BuildServer(cfg)
	require.NoError(t, err)
	defer repo.Close()

	httpServer := httptest.NewServer(adaptor.FiberApp(srv.App()))
	defer httpServer.Close()

	run := func(args ...string) string {
		t.Helper()
		root, out := newTestRoot(t)
		require.NoError(t, runRoot(t, root, append(args, "--url", httpServer.URL, "-o", "json")...))
		return out.String()
	}

	var created domain.Task
	require.NoError(t, json.Unmarshal([]byte(run("add", "Buy milk")), &created))
	assert.Equal(t, "Buy milk", created.Title)

	var done domain.Task
	require.NoError(t, json.Unmarshal([]byte(run("done", created.ID)), &done))
	assert.True(t, done.Completed)
	assert.Equal(t, created.CreatedAt, done.CreatedAt)

	var listed []domain.Task
	require.NoError(t, json.Unmarshal([]byte(run("list")), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, done, listed[0])

	assert.JSONEq(t, `{"status":"ok","storage":"memory","tasks":1}`, run("health"))

	run("delete", created.ID)

	root, _ := newTestRoot(t)
	err = runRoot(t, root, "get", created.ID, "--url", httpServer.URL)
	require.Error(t, err)
	assert.True(t, NewErrorHandler().IsNotFoundError(err))
}
