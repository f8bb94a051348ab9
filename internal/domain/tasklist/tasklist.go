// Package tasklist holds the TaskList aggregate: a named collection of tasks
// that optionally belongs to a task group. Membership is a weak back-reference
// by ID; tasks are never embedded.
package tasklist

import (
	"strings"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
)

// MaxNameLength is the upper bound on task-list names.
const MaxNameLength = 100

// Typed construction failures for Name. Both unwrap to domain.ErrValidation.
var (
	ErrNameEmpty   = domain.NewFieldError("name", domain.MsgMustNotEmpty)
	ErrNameTooLong = domain.NewFieldError("name", domain.MsgTooLong(MaxNameLength))
)

// Name is the task-list name value object: non-blank, at most MaxNameLength
// characters.
type Name string

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrNameEmpty
	}
	if len([]rune(raw)) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return Name(raw), nil
}

// String implements fmt.Stringer.
func (n Name) String() string {
	return string(n)
}

// TaskList is a mutable aggregate identified by ID. It belongs to at most one
// task group at a time (TaskGroupID nil means ungrouped). Order is the
// sibling sort position used by drag-and-drop. UserID is nil for guest-owned
// lists, which is the only mode the service runs in; the field is persisted
// for schema fidelity.
type TaskList struct {
	ID          int64
	Name        Name
	Description *string
	TaskGroupID *int64
	Order       int
	UserID      *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New creates a not-yet-persisted TaskList with both timestamps set to the
// current time.
func New(name Name, description *string, taskGroupID *int64, order int) *TaskList {
	now := time.Now().UTC()
	return &TaskList{
		Name:        name,
		Description: description,
		TaskGroupID: taskGroupID,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Reconstruct rebuilds a TaskList from storage without revalidating or
// touching timestamps.
func Reconstruct(id int64, name Name, description *string, taskGroupID *int64,
	order int, userID *int64, createdAt, updatedAt time.Time,
) *TaskList {
	return &TaskList{
		ID:          id,
		Name:        name,
		Description: description,
		TaskGroupID: taskGroupID,
		Order:       order,
		UserID:      userID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Rename replaces the name.
func (l *TaskList) Rename(name Name) {
	l.Name = name
	l.touch()
}

// SetDescription replaces the description. A nil value clears it.
func (l *TaskList) SetDescription(description *string) {
	l.Description = description
	l.touch()
}

// AssignToGroup moves the list to the given group at the given sibling
// position, or detaches it when taskGroupID is nil.
func (l *TaskList) AssignToGroup(taskGroupID *int64, order int) {
	l.TaskGroupID = taskGroupID
	l.Order = order
	l.touch()
}

func (l *TaskList) touch() {
	l.UpdatedAt = time.Now().UTC()
}
