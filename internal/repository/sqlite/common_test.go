package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/errors"
)

type mockResult struct {
	rows int64
	err  error
}

func (m mockResult) LastInsertId() (int64, error) { return 0, nil }
func (m mockResult) RowsAffected() (int64, error) { return m.rows, m.err }

func TestHandleNoRowsError(t *testing.T) {
	err := HandleNoRowsError(sql.ErrNoRows, "task", "abc")
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "task not found: abc")

	other := stderrors.New("boom")
	assert.Equal(t, other, HandleNoRowsError(other, "task", "abc"))
}

func TestRowsAffected(t *testing.T) {
	ok, err := RowsAffected(mockResult{rows: 1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = RowsAffected(mockResult{rows: 0})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = RowsAffected(mockResult{err: stderrors.New("unsupported")})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	fnErr := stderrors.New("abort")

	err := WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		if _, err := Execute(ctx, tx, `INSERT INTO tasks (id, title, created_at) VALUES (?, ?, ?)`, "tx1", "in tx", "2024-01-01T00:00:00Z"); err != nil {
			return err
		}
		return fnErr
	})
	assert.Equal(t, fnErr, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestExecute_WrapsFailures(t *testing.T) {
	repo := setupTestDB(t)
	_, err := Execute(context.Background(), repo.db, `INSERT INTO tasks (id, title, created_at) VALUES (?, ?, ?)`, "blank", "   ", "2024-01-01T00:00:00Z")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}

func TestQuerySingle_NotFound(t *testing.T) {
	repo := setupTestDB(t)
	_, err := QuerySingle(context.Background(), repo.db, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, ScanTask, "task", "nope", "nope")
	assert.True(t, errors.IsNotFound(err))
}
