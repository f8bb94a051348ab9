// Package taskgroup holds the TaskGroup aggregate: a named collection of task
// lists used for hierarchical organization. Lists reference their group by ID;
// the group never embeds them.
package taskgroup

import (
	"strings"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
)

// MaxNameLength is the upper bound on task-group names.
const MaxNameLength = 100

// Typed construction failures for Name. Both unwrap to domain.ErrValidation.
var (
	ErrNameEmpty   = domain.NewFieldError("name", domain.MsgMustNotEmpty)
	ErrNameTooLong = domain.NewFieldError("name", domain.MsgTooLong(MaxNameLength))
)

// Name is the task-group name value object: non-blank, at most MaxNameLength
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

// TaskGroup is a mutable aggregate identified by ID. IncompleteTaskCount is a
// read-time aggregate summed across member lists by the repository; it is
// never persisted and is zero on entities that were not loaded through a
// listing query.
type TaskGroup struct {
	ID                  int64
	Name                Name
	Order               int
	IncompleteTaskCount int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// New creates a not-yet-persisted TaskGroup with both timestamps set to the
// current time.
func New(name Name, order int) *TaskGroup {
	now := time.Now().UTC()
	return &TaskGroup{
		Name:      name,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reconstruct rebuilds a TaskGroup from storage without revalidating or
// touching timestamps.
func Reconstruct(id int64, name Name, order int, createdAt, updatedAt time.Time) *TaskGroup {
	return &TaskGroup{
		ID:        id,
		Name:      name,
		Order:     order,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Rename replaces the name.
func (g *TaskGroup) Rename(name Name) {
	g.Name = name
	g.touch()
}

func (g *TaskGroup) touch() {
	g.UpdatedAt = time.Now().UTC()
}
