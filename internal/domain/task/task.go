// Package task holds the Task aggregate: the atomic to-do item with a title,
// optional description, optional task-list membership, and a completion state
// derived from the presence of a completion timestamp.
package task

import (
	"fmt"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
)

// Completion state-transition failures. Both unwrap to domain.ErrConflict.
var (
	ErrAlreadyCompleted = fmt.Errorf("%w: task is already completed", domain.ErrConflict)
	ErrNotCompleted     = fmt.Errorf("%w: task is not completed", domain.ErrConflict)
)

// Task is a mutable aggregate identified by ID. The completion invariant is
// IsCompleted() == (CompletedAt != nil); Complete and Uncomplete are the only
// transitions. CreatedAt is fixed at construction; every mutation bumps
// UpdatedAt.
type Task struct {
	ID          int64
	Title       Title
	Description *string
	CompletedAt *time.Time
	TaskListID  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New creates a not-yet-persisted Task (ID zero) with both timestamps set to
// the current time.
func New(title Title, description *string, taskListID *int64) *Task {
	now := time.Now().UTC()
	return &Task{
		Title:       title,
		Description: description,
		TaskListID:  taskListID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Reconstruct rebuilds a Task from storage without revalidating or touching
// timestamps.
func Reconstruct(id int64, title Title, description *string, completedAt *time.Time,
	taskListID *int64, createdAt, updatedAt time.Time,
) *Task {
	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		CompletedAt: completedAt,
		TaskListID:  taskListID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// IsCompleted reports whether the task has a completion timestamp.
func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// Complete transitions the task to completed, recording the completion time.
// Returns ErrAlreadyCompleted if the task is already completed.
func (t *Task) Complete() error {
	if t.IsCompleted() {
		return ErrAlreadyCompleted
	}
	now := time.Now().UTC()
	t.CompletedAt = &now
	t.UpdatedAt = now
	return nil
}

// Uncomplete clears the completion timestamp. Returns ErrNotCompleted if the
// task is not completed.
func (t *Task) Uncomplete() error {
	if !t.IsCompleted() {
		return ErrNotCompleted
	}
	t.CompletedAt = nil
	t.touch()
	return nil
}

// Rename replaces the title.
func (t *Task) Rename(title Title) {
	t.Title = title
	t.touch()
}

// SetDescription replaces the description. A nil value clears it.
func (t *Task) SetDescription(description *string) {
	t.Description = description
	t.touch()
}

// AssignToList moves the task to the given task list, or clears the
// membership when taskListID is nil.
func (t *Task) AssignToList(taskListID *int64) {
	t.TaskListID = taskListID
	t.touch()
}

func (t *Task) touch() {
	t.UpdatedAt = time.Now().UTC()
}
