package sqlite

import (
	"time"

	"task-tracker/internal/domain"
)

// Task is the row shape of the tasks table. Seq is the insertion sequence
// used for creation ordering and never leaves this package.
type Task struct {
	Seq         int64
	ID          string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask domain.Task) Task {
	return Task{
		ID:          domainTask.ID,
		Title:       domainTask.Title,
		Description: domainTask.Description,
		Completed:   domainTask.Completed,
		CreatedAt:   domainTask.CreatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask Task) domain.Task {
	return domain.Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		Completed:   dbTask.Completed,
		CreatedAt:   dbTask.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*Task) []*domain.Task {
	domainTasks := make([]*domain.Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTask := m.FromDatabase(*task)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}
