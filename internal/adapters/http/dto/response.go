// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/taskboard/taskboard/internal/domain/task"
	"github.com/taskboard/taskboard/internal/domain/taskgroup"
	"github.com/taskboard/taskboard/internal/domain/tasklist"
	"github.com/taskboard/taskboard/internal/ports"
)

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at,omitempty"`
	TaskListID  *int64  `json:"task_list_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToTaskResponse converts a domain Task entity to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title.String(),
		Description: t.Description,
		Completed:   t.IsCompleted(),
		TaskListID:  t.TaskListID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.CompletedAt != nil {
		s := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}

// TaskPageResponse represents one page of tasks. Total is the size of the
// full filtered set, independent of the returned window.
type TaskPageResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ToTaskPageResponse converts a ports.TaskPage to an HTTP response DTO.
func ToTaskPageResponse(page *ports.TaskPage) TaskPageResponse {
	items := make([]TaskResponse, len(page.Tasks))
	for i := range page.Tasks {
		items[i] = ToTaskResponse(&page.Tasks[i])
	}
	return TaskPageResponse{
		Tasks:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}

// TaskListResponse represents a single task list in HTTP responses.
type TaskListResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	TaskGroupID *int64  `json:"task_group_id,omitempty"`
	Order       int     `json:"order"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToTaskListResponse converts a domain TaskList entity to an HTTP response DTO.
func ToTaskListResponse(l *tasklist.TaskList) TaskListResponse {
	return TaskListResponse{
		ID:          l.ID,
		Name:        l.Name.String(),
		Description: l.Description,
		TaskGroupID: l.TaskGroupID,
		Order:       l.Order,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   l.UpdatedAt.Format(time.RFC3339),
	}
}

// TaskListCollectionResponse represents all task lists in HTTP responses.
type TaskListCollectionResponse struct {
	TaskLists []TaskListResponse `json:"task_lists"`
	Count     int                `json:"count"`
}

// ToTaskListCollectionResponse converts a slice of domain TaskList entities
// to an HTTP collection response DTO.
func ToTaskListCollectionResponse(lists []tasklist.TaskList) TaskListCollectionResponse {
	items := make([]TaskListResponse, len(lists))
	for i := range lists {
		items[i] = ToTaskListResponse(&lists[i])
	}
	return TaskListCollectionResponse{
		TaskLists: items,
		Count:     len(items),
	}
}

// TaskGroupResponse represents a single task group in HTTP responses.
// IncompleteTaskCount is the number of incomplete tasks across the group's
// member lists, computed at read time.
type TaskGroupResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Order               int    `json:"order"`
	IncompleteTaskCount int64  `json:"incomplete_task_count"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

// ToTaskGroupResponse converts a domain TaskGroup entity to an HTTP response DTO.
func ToTaskGroupResponse(g *taskgroup.TaskGroup) TaskGroupResponse {
	return TaskGroupResponse{
		ID:                  g.ID,
		Name:                g.Name.String(),
		Order:               g.Order,
		IncompleteTaskCount: g.IncompleteTaskCount,
		CreatedAt:           g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           g.UpdatedAt.Format(time.RFC3339),
	}
}

// TaskGroupCollectionResponse represents all task groups in HTTP responses.
type TaskGroupCollectionResponse struct {
	TaskGroups []TaskGroupResponse `json:"task_groups"`
	Count      int                 `json:"count"`
}

// ToTaskGroupCollectionResponse converts a slice of domain TaskGroup entities
// to an HTTP collection response DTO.
func ToTaskGroupCollectionResponse(groups []taskgroup.TaskGroup) TaskGroupCollectionResponse {
	items := make([]TaskGroupResponse, len(groups))
	for i := range groups {
		items[i] = ToTaskGroupResponse(&groups[i])
	}
	return TaskGroupCollectionResponse{
		TaskGroups: items,
		Count:      len(items),
	}
}

// ReorderResponse represents the result of a bulk reorder operation.
// It includes both applied IDs and per-item errors.
type ReorderResponse struct {
	Applied   []int64            `json:"applied"`
	Errors    []ReorderErrorItem `json:"errors"`
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

// ReorderErrorItem represents a single failed update within a bulk reorder.
type ReorderErrorItem struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ToReorderResponse converts a ports.ReorderResult to an HTTP response DTO.
func ToReorderResponse(result *ports.ReorderResult) ReorderResponse {
	applied := result.Applied
	if applied == nil {
		applied = []int64{}
	}

	errs := make([]ReorderErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = ReorderErrorItem{
			ID:      e.ID,
			Message: e.Err.Error(),
		}
	}

	return ReorderResponse{
		Applied:   applied,
		Errors:    errs,
		Total:     len(applied) + len(errs),
		Succeeded: len(applied),
		Failed:    len(errs),
	}
}
