package sqlite

import (
	"context"
	"database/sql"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
	"task-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const taskColumns = `seq, id, title, description, completed, created_at`

var _ repository.Repository = (*SQLiteRepository)(nil)

// SQLiteRepository implements repository.Repository on top of modernc.org/sqlite.
// The pool is pinned to one connection: an in-memory database exists per
// connection, and a single connection also serialises every statement.
type SQLiteRepository struct {
	db           *sql.DB
	mapper       *TaskMapper
	queryTimeout time.Duration
}

// Option configures a SQLiteRepository
type Option func(*SQLiteRepository)

// WithQueryTimeout bounds every statement issued by the repository
func WithQueryTimeout(d time.Duration) Option {
	return func(r *SQLiteRepository) {
		r.queryTimeout = d
	}
}

// New creates a new SQLite repository instance and runs migrations
func New(dsn string, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	r := &SQLiteRepository{
		db:           db,
		mapper:       NewTaskMapper(),
		queryTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}

	ctx, cancel := r.withTimeout(context.Background())
	defer cancel()

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return r, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// Create inserts a new task
func (r *SQLiteRepository) Create(ctx context.Context, task domain.Task) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.mapper.ToDatabase(task)
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE id = ?`, row.ID).Scan(&exists)
		if err != nil {
			return HandleDatabaseError("check task id", err)
		}
		if exists > 0 {
			return errors.NewConflictError("task", row.ID)
		}

		query := `
		INSERT INTO tasks (id, title, description, completed, created_at)
		VALUES (?, ?, ?, ?, ?)`
		_, err = Execute(ctx, tx, query, row.ID, row.Title, row.Description, FormatBoolForDB(row.Completed), FormatTimeForDB(row.CreatedAt))
		return err
	})
}

// Get retrieves a task by ID
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.get(ctx, r.db, id)
}

func (r *SQLiteRepository) get(ctx context.Context, q Querier, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row, err := QuerySingle(ctx, q, query, ScanTask, "task", id, id)
	if err != nil {
		return nil, err
	}
	task := r.mapper.FromDatabase(*row)
	return &task, nil
}

// List retrieves all tasks in insertion order
func (r *SQLiteRepository) List(ctx context.Context) ([]*domain.Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq ASC`
	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}
	return r.mapper.FromDatabaseSlice(rows), nil
}

// Update reads, mutates and writes the task inside one transaction
func (r *SQLiteRepository) Update(ctx context.Context, id string, mutate func(*domain.Task) error) (*domain.Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var updated *domain.Task
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}

		next := *current
		if err := mutate(&next); err != nil {
			return err
		}
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt

		query := `
		UPDATE tasks
		SET title = ?, description = ?, completed = ?
		WHERE id = ?`
		if _, err := Execute(ctx, tx, query, next.Title, next.Description, FormatBoolForDB(next.Completed), id); err != nil {
			return err
		}

		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete deletes a task by ID and reports whether a row was removed
func (r *SQLiteRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := Execute(ctx, r.db, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return RowsAffected(result)
}

// Count returns the number of stored tasks
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return count, nil
}
