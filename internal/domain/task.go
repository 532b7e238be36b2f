package domain

import "time"

// Task represents a task in the domain model.
// This is a pure domain model without storage or transport concerns.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTask creates a pending task. Identity and timestamp are assigned by the caller.
func NewTask(id, title, description string, createdAt time.Time) Task {
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   createdAt,
	}
}

// Status returns "completed" or "pending".
func (t Task) Status() string {
	if t.Completed {
		return StatusCompleted
	}
	return StatusPending
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// TaskPatch is a partial update. A nil field was not supplied and leaves the
// stored value untouched; a non-nil field is applied even when it holds the zero value.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether no field was supplied.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// Apply merges the supplied fields into t. ID and CreatedAt are never touched.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// StringPtr and BoolPtr build patch fields inline.
func StringPtr(s string) *string { return &s }

func BoolPtr(b bool) *bool { return &b }
