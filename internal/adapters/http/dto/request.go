package dto

import (
	"fmt"
	"strings"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/domain/task"
	"github.com/taskboard/taskboard/internal/domain/taskgroup"
	"github.com/taskboard/taskboard/internal/domain/tasklist"
	"github.com/taskboard/taskboard/internal/ports"
)

// CreateTaskRequest represents the JSON body for creating a new task.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	TaskListID  *int64  `json:"task_list_id,omitempty"`
}

// Validate checks that required fields are present and references are
// plausible. Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	} else if len([]rune(r.Title)) > task.MaxTitleLength {
		fields["title"] = domain.MsgTooLong(task.MaxTitleLength)
	}
	if r.TaskListID != nil && *r.TaskListID <= 0 {
		fields["task_list_id"] = msgPositiveID(*r.TaskListID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTaskRequest represents the JSON body for updating an existing task.
// All fields are optional; an absent field is left unchanged, while an
// explicit null on a Nullable field clears the attribute.
type UpdateTaskRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description Nullable[string] `json:"description,omitzero"`
	TaskListID  Nullable[int64]  `json:"task_list_id,omitzero"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			fields["title"] = domain.MsgMustNotEmpty
		} else if len([]rune(*r.Title)) > task.MaxTitleLength {
			fields["title"] = domain.MsgTooLong(task.MaxTitleLength)
		}
	}
	if r.TaskListID.Value != nil && *r.TaskListID.Value <= 0 {
		fields["task_list_id"] = msgPositiveID(*r.TaskListID.Value)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToInput converts the request to the service-layer input.
func (r *UpdateTaskRequest) ToInput() ports.UpdateTaskInput {
	return ports.UpdateTaskInput{
		Title:       r.Title,
		Description: r.Description.optional(),
		TaskListID:  r.TaskListID.optional(),
	}
}

// CreateTaskListRequest represents the JSON body for creating a new task list.
type CreateTaskListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	TaskGroupID *int64  `json:"task_group_id,omitempty"`
	Order       int     `json:"order"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskListRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	} else if len([]rune(r.Name)) > tasklist.MaxNameLength {
		fields["name"] = domain.MsgTooLong(tasklist.MaxNameLength)
	}
	if r.TaskGroupID != nil && *r.TaskGroupID <= 0 {
		fields["task_group_id"] = msgPositiveID(*r.TaskGroupID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTaskListRequest represents the JSON body for updating an existing
// task list. All fields are optional; an absent field is left unchanged,
// while an explicit null description clears it.
type UpdateTaskListRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description Nullable[string] `json:"description,omitzero"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskListRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			fields["name"] = domain.MsgMustNotEmpty
		} else if len([]rune(*r.Name)) > tasklist.MaxNameLength {
			fields["name"] = domain.MsgTooLong(tasklist.MaxNameLength)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToInput converts the request to the service-layer input.
func (r *UpdateTaskListRequest) ToInput() ports.UpdateTaskListInput {
	return ports.UpdateTaskListInput{
		Name:        r.Name,
		Description: r.Description.optional(),
	}
}

// MoveTaskListRequest represents the JSON body for moving a task list into a
// group (or out of all groups when task_group_id is null) at a position.
type MoveTaskListRequest struct {
	TaskGroupID *int64 `json:"task_group_id"`
	Order       int    `json:"order"`
}

// Validate checks the group reference and target position.
// Returns a *domain.ValidationError if any checks fail.
func (r *MoveTaskListRequest) Validate() error {
	fields := make(map[string]string)

	if r.TaskGroupID != nil && *r.TaskGroupID <= 0 {
		fields["task_group_id"] = msgPositiveID(*r.TaskGroupID)
	}
	if r.Order < 0 {
		fields["order"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateTaskGroupRequest represents the JSON body for creating a new task group.
type CreateTaskGroupRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskGroupRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	} else if len([]rune(r.Name)) > taskgroup.MaxNameLength {
		fields["name"] = domain.MsgTooLong(taskgroup.MaxNameLength)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTaskGroupRequest represents the JSON body for updating an existing
// task group.
type UpdateTaskGroupRequest struct {
	Name *string `json:"name,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskGroupRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			fields["name"] = domain.MsgMustNotEmpty
		} else if len([]rune(*r.Name)) > taskgroup.MaxNameLength {
			fields["name"] = domain.MsgTooLong(taskgroup.MaxNameLength)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ReorderItem is one (id, order) pair within a bulk reorder request.
type ReorderItem struct {
	ID    int64 `json:"id"`
	Order int   `json:"order"`
}

// ReorderRequest represents the JSON body for bulk-updating sibling sort
// positions. Items are applied independently; per-item failures do not abort
// the batch.
type ReorderRequest struct {
	Items []ReorderItem `json:"items"`
}

// Validate checks that the batch is non-empty and each entry is well formed.
// Returns a *domain.ValidationError if any checks fail.
func (r *ReorderRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Items) == 0 {
		fields["items"] = domain.MsgMustNotEmpty
	}
	for i, item := range r.Items {
		if item.ID <= 0 {
			fields[fmt.Sprintf("items[%d].id", i)] = msgPositiveID(item.ID)
		}
		if item.Order < 0 {
			fields[fmt.Sprintf("items[%d].order", i)] = "must not be negative"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToOrderUpdates converts the request items to service-layer order updates.
func (r *ReorderRequest) ToOrderUpdates() []ports.OrderUpdate {
	updates := make([]ports.OrderUpdate, len(r.Items))
	for i, item := range r.Items {
		updates[i] = ports.OrderUpdate{ID: item.ID, Order: item.Order}
	}
	return updates
}

func msgPositiveID(got int64) string {
	return fmt.Sprintf("must be a positive ID, got %d", got)
}
