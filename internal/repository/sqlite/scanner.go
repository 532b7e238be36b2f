package sqlite

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row. Columns are expected in
// the order seq, id, title, description, completed, created_at.
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var completed int64
	var createdAt string

	err := scanner.Scan(
		&task.Seq,
		&task.ID,
		&task.Title,
		&task.Description,
		&completed,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	task.Completed = completed != 0
	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := make([]*Task, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
