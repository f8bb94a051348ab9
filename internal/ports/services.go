package ports

import (
	"context"

	"github.com/taskboard/taskboard/internal/domain/task"
	"github.com/taskboard/taskboard/internal/domain/tasklist"
	"github.com/taskboard/taskboard/internal/domain/taskgroup"
)

// CreateTaskInput carries the raw fields for creating a task. The service
// constructs the value objects, so invalid fields surface as
// domain.ErrValidation from here rather than from the transport layer.
type CreateTaskInput struct {
	Title       string
	Description *string
	TaskListID  *int64
}

// Optional is a partial-update field for nullable entity attributes. It
// distinguishes the three states a PATCH body can express: absent
// (Set false, leave unchanged), explicit null (Set true, Value nil, clear
// the field), and a new value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UpdateTaskInput carries partial-update fields for a task. A nil Title
// means "do not change"; the Optional fields additionally support an
// explicit clear.
type UpdateTaskInput struct {
	Title       *string
	Description Optional[string]
	TaskListID  Optional[int64]
}

// TaskPage is one window of a filtered task listing. Total is the full
// filtered count, not the page size.
type TaskPage struct {
	Tasks  []task.Task
	Total  int64
	Limit  int
	Offset int
}

// TaskService defines the service port for task operations.
type TaskService interface {
	// ListTasks returns one page of tasks matching the filter along with the
	// true filtered total.
	ListTasks(ctx context.Context, filter task.Filter, limit, offset int) (*TaskPage, error)

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*task.Task, error)

	// CreateTask validates the input, creates the task, and returns it with
	// server-assigned fields. When TaskListID is set the referenced list
	// must exist. Returns domain.ErrValidation or domain.ErrNotFound
	// accordingly.
	CreateTask(ctx context.Context, in CreateTaskInput) (*task.Task, error)

	// UpdateTask applies the fields present in in to an existing task;
	// Optional fields that carry an explicit null clear the attribute.
	// Returns domain.ErrNotFound if the task, or a newly referenced list,
	// does not exist and domain.ErrValidation on invalid field values.
	UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) (*task.Task, error)

	// DeleteTask soft-deletes a task.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error

	// CompleteTask transitions a task to completed.
	// Returns domain.ErrNotFound if the task does not exist and
	// task.ErrAlreadyCompleted if it is already completed.
	CompleteTask(ctx context.Context, id int64) (*task.Task, error)

	// UncompleteTask clears a task's completion.
	// Returns domain.ErrNotFound if the task does not exist and
	// task.ErrNotCompleted if it is not completed.
	UncompleteTask(ctx context.Context, id int64) (*task.Task, error)
}

// CreateTaskListInput carries the raw fields for creating a task list.
type CreateTaskListInput struct {
	Name        string
	Description *string
	TaskGroupID *int64
	Order       int
}

// UpdateTaskListInput carries partial-update fields for a task list. A nil
// Name means "do not change"; Description additionally supports an explicit
// clear.
type UpdateTaskListInput struct {
	Name        *string
	Description Optional[string]
}

// OrderUpdate pairs an entity ID with its new sibling sort position for bulk
// reorder operations.
type OrderUpdate struct {
	ID    int64
	Order int
}

// ReorderError records a single failed row update within a reorder operation.
type ReorderError struct {
	ID  int64
	Err error
}

// ReorderResult holds the outcomes of a bulk reorder. Each row update
// succeeds or fails independently; Applied lists the IDs whose order was
// written, Errors the per-row failures.
type ReorderResult struct {
	Applied []int64
	Errors  []ReorderError
}

// TaskListService defines the service port for task-list operations.
type TaskListService interface {
	// ListTaskLists returns all task lists ordered by sort position.
	ListTaskLists(ctx context.Context) ([]tasklist.TaskList, error)

	// GetTaskList returns a single task list by ID.
	// Returns domain.ErrNotFound if the list does not exist.
	GetTaskList(ctx context.Context, id int64) (*tasklist.TaskList, error)

	// CreateTaskList validates the input and creates the list. When
	// TaskGroupID is set the referenced group must exist.
	// Returns domain.ErrValidation or domain.ErrNotFound accordingly.
	CreateTaskList(ctx context.Context, in CreateTaskListInput) (*tasklist.TaskList, error)

	// UpdateTaskList applies the non-nil fields of in to an existing list.
	UpdateTaskList(ctx context.Context, id int64, in UpdateTaskListInput) (*tasklist.TaskList, error)

	// DeleteTaskList orphans the list's member tasks and soft-deletes the
	// list. Returns domain.ErrNotFound if the list does not exist.
	DeleteTaskList(ctx context.Context, id int64) error

	// MoveTaskList reassigns the list to the given group (nil detaches it)
	// at the given position. Returns domain.ErrNotFound if the list, or a
	// non-nil target group, does not exist.
	MoveTaskList(ctx context.Context, id int64, taskGroupID *int64, order int) (*tasklist.TaskList, error)

	// ReorderTaskLists bulk-applies sibling sort positions with per-row
	// partial-success semantics.
	ReorderTaskLists(ctx context.Context, updates []OrderUpdate) (*ReorderResult, error)
}

// CreateTaskGroupInput carries the raw fields for creating a task group.
type CreateTaskGroupInput struct {
	Name  string
	Order int
}

// UpdateTaskGroupInput carries partial-update fields for a task group.
type UpdateTaskGroupInput struct {
	Name *string
}

// TaskGroupService defines the service port for task-group operations.
type TaskGroupService interface {
	// ListTaskGroups returns all task groups ordered by sort position, with
	// derived incomplete-task counts populated.
	ListTaskGroups(ctx context.Context) ([]taskgroup.TaskGroup, error)

	// GetTaskGroup returns a single task group by ID.
	// Returns domain.ErrNotFound if the group does not exist.
	GetTaskGroup(ctx context.Context, id int64) (*taskgroup.TaskGroup, error)

	// CreateTaskGroup validates the input and creates the group.
	CreateTaskGroup(ctx context.Context, in CreateTaskGroupInput) (*taskgroup.TaskGroup, error)

	// UpdateTaskGroup applies the non-nil fields of in to an existing group.
	UpdateTaskGroup(ctx context.Context, id int64, in UpdateTaskGroupInput) (*taskgroup.TaskGroup, error)

	// DeleteTaskGroup unassigns the group's member lists and soft-deletes
	// the group. Returns domain.ErrNotFound if the group does not exist.
	DeleteTaskGroup(ctx context.Context, id int64) error

	// ReorderTaskGroups bulk-applies sibling sort positions with per-row
	// partial-success semantics.
	ReorderTaskGroups(ctx context.Context, updates []OrderUpdate) (*ReorderResult, error)
}
