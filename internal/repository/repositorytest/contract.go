// Package repositorytest holds the behaviour every repository.Repository
// implementation must share. Store packages call RunContractTests from their tests.
package repositorytest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
)

// Factory returns a fresh, empty repository
type Factory func(t *testing.T) repository.Repository

func newTask(id, title string, createdAt time.Time) domain.Task {
	return domain.NewTask(id, title, "", createdAt)
}

// RunContractTests exercises the shared repository contract against factory
func RunContractTests(t *testing.T, factory Factory) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)

	t.Run("create then get returns an equal record", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()
		task := domain.NewTask("id-1", "Buy milk", "two litres", base)

		require.NoError(t, repo.Create(ctx, task))

		got, err := repo.Get(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, task, *got)
	})

	t.Run("duplicate id is a conflict and leaves the store unchanged", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, newTask("dup", "first", base)))

		err := repo.Create(ctx, newTask("dup", "second", base))
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))

		got, err := repo.Get(ctx, "dup")
		require.NoError(t, err)
		assert.Equal(t, "first", got.Title)
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("get unknown id is not found", func(t *testing.T) {
		repo := factory(t)
		for _, id := range []string{"missing", "", "not a uuid at all", "'; DROP TABLE tasks; --"} {
			_, err := repo.Get(context.Background(), id)
			assert.True(t, errors.IsNotFound(err), "id %q: %v", id, err)
		}
	})

	t.Run("list is empty and non-nil for a new store", func(t *testing.T) {
		repo := factory(t)
		tasks, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("list keeps creation order among survivors", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()
		for i := 0; i < 5; i++ {
			// timestamps deliberately run backwards: order must follow insertion, not createdAt
			created := base.Add(-time.Duration(i) * time.Minute)
			require.NoError(t, repo.Create(ctx, newTask(fmt.Sprintf("t%d", i), fmt.Sprintf("task %d", i), created)))
		}

		removed, err := repo.Delete(ctx, "t1")
		require.NoError(t, err)
		require.True(t, removed)
		removed, err = repo.Delete(ctx, "t3")
		require.NoError(t, err)
		require.True(t, removed)

		tasks, err := repo.List(ctx)
		require.NoError(t, err)
		ids := make([]string, 0, len(tasks))
		for _, task := range tasks {
			ids = append(ids, task.ID)
		}
		assert.Equal(t, []string{"t0", "t2", "t4"}, ids)
	})

	t.Run("update applies mutation and preserves id and createdAt", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, newTask("u1", "Title", base)))

		updated, err := repo.Update(ctx, "u1", func(task *domain.Task) error {
			task.Completed = true
			task.ID = "hijacked"
			task.CreatedAt = base.Add(time.Hour)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "u1", updated.ID)
		assert.Equal(t, base, updated.CreatedAt)
		assert.True(t, updated.Completed)

		got, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, *updated, *got)
	})

	t.Run("update unknown id is not found and never calls mutate", func(t *testing.T) {
		repo := factory(t)
		called := false
		_, err := repo.Update(context.Background(), "nope", func(*domain.Task) error {
			called = true
			return nil
		})
		assert.True(t, errors.IsNotFound(err))
		assert.False(t, called)
	})

	t.Run("failed mutation writes nothing", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, newTask("m1", "Keep me", base)))

		_, err := repo.Update(ctx, "m1", func(task *domain.Task) error {
			task.Title = "Changed"
			return errors.NewValidationError("rejected", nil)
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))

		got, err := repo.Get(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, "Keep me", got.Title)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, newTask("c1", "Original", base)))

		got, err := repo.Get(ctx, "c1")
		require.NoError(t, err)
		got.Title = "mutated by caller"

		listed, err := repo.List(ctx)
		require.NoError(t, err)
		listed[0].Completed = true

		again, err := repo.Get(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Original", again.Title)
		assert.False(t, again.Completed)
	})

	t.Run("delete reports removal once", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, newTask("d1", "Doomed", base)))

		removed, err := repo.Delete(ctx, "d1")
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Delete(ctx, "d1")
		require.NoError(t, err)
		assert.False(t, removed)

		_, err = repo.Get(ctx, "d1")
		assert.True(t, errors.IsNotFound(err))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("concurrent operations are atomic", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, newTask("shared", "Shared", base)))

		const workers = 16
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, repo.Create(ctx, newTask(fmt.Sprintf("w%d", i), "worker", base)))
				_, err := repo.Update(ctx, "shared", func(task *domain.Task) error {
					task.Description += "x"
					return nil
				})
				assert.NoError(t, err)
				_, err = repo.List(ctx)
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, workers+1, count)

		shared, err := repo.Get(ctx, "shared")
		require.NoError(t, err)
		assert.Len(t, shared.Description, workers)
	})
}
