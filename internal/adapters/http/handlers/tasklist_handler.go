package handlers

import (
	"net/http"

	"github.com/taskboard/taskboard/internal/adapters/http/dto"
	"github.com/taskboard/taskboard/internal/ports"
)

// TaskListHandler handles HTTP requests for task-list CRUD, group moves, and
// bulk reordering.
type TaskListHandler struct {
	svc ports.TaskListService
}

// NewTaskListHandler creates a new TaskListHandler with the given service port.
func NewTaskListHandler(svc ports.TaskListService) *TaskListHandler {
	return &TaskListHandler{svc: svc}
}

// ListTaskLists handles GET /api/v1/task-lists.
func (h *TaskListHandler) ListTaskLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListTaskLists(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListCollectionResponse(lists))
}

// CreateTaskList handles POST /api/v1/task-lists.
func (h *TaskListHandler) CreateTaskList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTaskList(r.Context(), ports.CreateTaskListInput{
		Name:        req.Name,
		Description: req.Description,
		TaskGroupID: req.TaskGroupID,
		Order:       req.Order,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskListResponse(created))
}

// GetTaskList handles GET /api/v1/task-lists/{id}.
func (h *TaskListHandler) GetTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.GetTaskList(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(l))
}

// UpdateTaskList handles PATCH /api/v1/task-lists/{id}.
func (h *TaskListHandler) UpdateTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTaskList(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(updated))
}

// DeleteTaskList handles DELETE /api/v1/task-lists/{id}. Member tasks are
// orphaned, not deleted.
func (h *TaskListHandler) DeleteTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTaskList(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveTaskList handles PATCH /api/v1/task-lists/{id}/move.
func (h *TaskListHandler) MoveTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	moved, err := h.svc.MoveTaskList(r.Context(), id, req.TaskGroupID, req.Order)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(moved))
}

// ReorderTaskLists handles PATCH /api/v1/task-lists/reorder.
func (h *TaskListHandler) ReorderTaskLists(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.ReorderTaskLists(r.Context(), req.ToOrderUpdates())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReorderResponse(result))
}
