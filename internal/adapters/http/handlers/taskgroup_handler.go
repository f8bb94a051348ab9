package handlers

import (
	"net/http"

	"github.com/taskboard/taskboard/internal/adapters/http/dto"
	"github.com/taskboard/taskboard/internal/ports"
)

// TaskGroupHandler handles HTTP requests for task-group CRUD and bulk
// reordering.
type TaskGroupHandler struct {
	svc ports.TaskGroupService
}

// NewTaskGroupHandler creates a new TaskGroupHandler with the given service port.
func NewTaskGroupHandler(svc ports.TaskGroupService) *TaskGroupHandler {
	return &TaskGroupHandler{svc: svc}
}

// ListTaskGroups handles GET /api/v1/task-groups.
func (h *TaskGroupHandler) ListTaskGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListTaskGroups(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskGroupCollectionResponse(groups))
}

// CreateTaskGroup handles POST /api/v1/task-groups.
func (h *TaskGroupHandler) CreateTaskGroup(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskGroupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTaskGroup(r.Context(), ports.CreateTaskGroupInput{
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskGroupResponse(created))
}

// GetTaskGroup handles GET /api/v1/task-groups/{id}.
func (h *TaskGroupHandler) GetTaskGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	g, err := h.svc.GetTaskGroup(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskGroupResponse(g))
}

// UpdateTaskGroup handles PATCH /api/v1/task-groups/{id}.
func (h *TaskGroupHandler) UpdateTaskGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskGroupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTaskGroup(r.Context(), id, ports.UpdateTaskGroupInput{
		Name: req.Name,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskGroupResponse(updated))
}

// DeleteTaskGroup handles DELETE /api/v1/task-groups/{id}. Member lists are
// unassigned, not deleted.
func (h *TaskGroupHandler) DeleteTaskGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTaskGroup(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderTaskGroups handles PATCH /api/v1/task-groups/reorder.
func (h *TaskGroupHandler) ReorderTaskGroups(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.ReorderTaskGroups(r.Context(), req.ToOrderUpdates())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReorderResponse(result))
}
