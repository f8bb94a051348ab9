package ports

import (
	"context"

	"github.com/taskboard/taskboard/internal/domain/task"
	"github.com/taskboard/taskboard/internal/domain/tasklist"
	"github.com/taskboard/taskboard/internal/domain/taskgroup"
)

// TaskRepository is the persistence port for the Task aggregate.
// Implementations filter soft-deleted rows out of every read.
type TaskRepository interface {
	// Create persists a new task and returns it with the assigned ID.
	Create(ctx context.Context, t *task.Task) (*task.Task, error)

	// GetByID returns a single active task.
	// Returns domain.ErrNotFound if the task does not exist or is deleted.
	GetByID(ctx context.Context, id int64) (*task.Task, error)

	// List returns active tasks matching the filter, ordered by creation
	// time, windowed by limit and offset. A limit <= 0 means no limit.
	List(ctx context.Context, filter task.Filter, limit, offset int) ([]task.Task, error)

	// Count returns the total number of active tasks matching the filter,
	// independent of the List window.
	Count(ctx context.Context, filter task.Filter) (int64, error)

	// Update persists all mutable fields of the task.
	// Returns domain.ErrNotFound if the task does not exist or is deleted.
	Update(ctx context.Context, t *task.Task) (*task.Task, error)

	// SoftDelete marks the task deleted without removing the row.
	// Returns domain.ErrNotFound if the task does not exist or is deleted.
	SoftDelete(ctx context.Context, id int64) error

	// ExistsByID reports whether an active task with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// TaskListRepository is the persistence port for the TaskList aggregate.
type TaskListRepository interface {
	// Create persists a new task list and returns it with the assigned ID.
	Create(ctx context.Context, l *tasklist.TaskList) (*tasklist.TaskList, error)

	// GetByID returns a single active task list.
	// Returns domain.ErrNotFound if the list does not exist or is deleted.
	GetByID(ctx context.Context, id int64) (*tasklist.TaskList, error)

	// List returns all active task lists ordered by their sort position.
	List(ctx context.Context) ([]tasklist.TaskList, error)

	// Update persists all mutable fields of the task list.
	// Returns domain.ErrNotFound if the list does not exist or is deleted.
	Update(ctx context.Context, l *tasklist.TaskList) (*tasklist.TaskList, error)

	// SoftDelete orphans the list's member tasks (task_list_id cleared, tasks
	// kept) and marks the list deleted. Both writes run in one transaction.
	// Returns domain.ErrNotFound if the list does not exist or is deleted.
	SoftDelete(ctx context.Context, id int64) error

	// UpdateOrder sets the sibling sort position of a single list.
	// Returns domain.ErrNotFound if the list does not exist or is deleted.
	UpdateOrder(ctx context.Context, id int64, order int) error

	// Move reassigns the list to the given group (nil detaches it) and sets
	// its sort position in one write.
	// Returns domain.ErrNotFound if the list does not exist or is deleted.
	Move(ctx context.Context, id int64, taskGroupID *int64, order int) error

	// ExistsByID reports whether an active task list with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// TaskGroupRepository is the persistence port for the TaskGroup aggregate.
type TaskGroupRepository interface {
	// Create persists a new task group and returns it with the assigned ID.
	Create(ctx context.Context, g *taskgroup.TaskGroup) (*taskgroup.TaskGroup, error)

	// GetByID returns a single active task group with IncompleteTaskCount
	// populated.
	// Returns domain.ErrNotFound if the group does not exist or is deleted.
	GetByID(ctx context.Context, id int64) (*taskgroup.TaskGroup, error)

	// List returns all active task groups ordered by their sort position,
	// with IncompleteTaskCount populated from a single aggregate query over
	// member lists' incomplete tasks.
	List(ctx context.Context) ([]taskgroup.TaskGroup, error)

	// Update persists all mutable fields of the task group.
	// Returns domain.ErrNotFound if the group does not exist or is deleted.
	Update(ctx context.Context, g *taskgroup.TaskGroup) (*taskgroup.TaskGroup, error)

	// SoftDelete unassigns the group's member lists (task_group_id cleared,
	// lists kept) and marks the group deleted. Both writes run in one
	// transaction.
	// Returns domain.ErrNotFound if the group does not exist or is deleted.
	SoftDelete(ctx context.Context, id int64) error

	// UpdateOrder sets the sibling sort position of a single group.
	// Returns domain.ErrNotFound if the group does not exist or is deleted.
	UpdateOrder(ctx context.Context, id int64, order int) error

	// ExistsByID reports whether an active task group with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
