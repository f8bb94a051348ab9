package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/taskboard/taskboard/internal/adapters/http/dto"
	"github.com/taskboard/taskboard/internal/adapters/http/handlers"
	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/domain/taskgroup"
	"github.com/taskboard/taskboard/internal/ports"
	"github.com/taskboard/taskboard/mocks"
)

func newTaskGroupHandler(t *testing.T) (*handlers.TaskGroupHandler, *mocks.MockTaskGroupService) {
	t.Helper()
	svc := mocks.NewMockTaskGroupService(t)
	return handlers.NewTaskGroupHandler(svc), svc
}

// --- ListTaskGroups ---

func TestListTaskGroups_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskGroupHandler(t)

	g := validTaskGroup()
	g.IncompleteTaskCount = 3
	svc.EXPECT().ListTaskGroups(mock.Anything).Return([]taskgroup.TaskGroup{g}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/task-groups", nil)
	h.ListTaskGroups(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskGroupCollectionResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if resp.TaskGroups[0].IncompleteTaskCount != 3 {
		t.Errorf("IncompleteTaskCount = %d, want 3", resp.TaskGroups[0].IncompleteTaskCount)
	}
}

func TestListTaskGroups_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskGroupHandler(t)

	svc.EXPECT().ListTaskGroups(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/task-groups", nil)
	h.ListTaskGroups(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- CreateTaskGroup ---

func TestCreateTaskGroup_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskGroupHandler(t)

	created := validTaskGroup()
	svc.EXPECT().CreateTaskGroup(mock.Anything, ports.CreateTaskGroupInput{Name: "Work", Order: 1}).
		Return(&created, nil)

	body := jsonBody(t, dto.CreateTaskGroupRequest{Name: "Work", Order: 1})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/task-groups", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskGroupResponse](t, rec)
	if resp.Name != "Work" {
		t.Errorf("Name = %q, want %q", resp.Name, "Work")
	}
}

func TestCreateTaskGroup_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTaskGroupHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/task-groups", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.CreateTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestCreateTaskGroup_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newTaskGroupHandler(t)

	body := jsonBody(t, dto.CreateTaskGroupRequest{Name: "   "})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/task-groups", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

// --- GetTaskGroup ---

func TestGetTaskGroup_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskGroupHandler(t)

	found := validTaskGroup()
	svc.EXPECT().GetTaskGroup(mock.Anything, int64(1)).Return(&found, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/task-groups/1", nil), map[string]string{"id": "1"})
	h.GetTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskGroupResponse](t, rec)
	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
}

func TestGetTaskGroup_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskGroupHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/task-groups/abc", nil), map[string]string{"id": "abc"})
	h.GetTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestGetTaskGroup_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskGroupHandler(t)

	svc.EXPECT().GetTaskGroup(mock.Anything, int64(999)).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/task-groups/999", nil), map[string]string{"id": "999"})
	h.GetTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateTaskGroup ---

func TestUpdateTaskGroup_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskGroupHandler(t)

	updated := validTaskGroup()
	updated.Name = testUpdatedValue
	svc.EXPECT().UpdateTaskGroup(mock.Anything, int64(1), mock.AnythingOfType("ports.UpdateTaskGroupInput")).
		Return(&updated, nil)

	name := testUpdatedValue
	body := jsonBody(t, dto.UpdateTaskGroupRequest{Name: &name})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/task-groups/1", body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"id": "1"})
	h.UpdateTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskGroupResponse](t, rec)
	if resp.Name != testUpdatedValue {
		t.Errorf("Name = %q, want %q", resp.Name, testUpdatedValue)
	}
}

func TestUpdateTaskGroup_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newTaskGroupHandler(t)

	empty := ""
	body := jsonBody(t, dto.UpdateTaskGroupRequest{Name: &empty})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/task-groups/1", body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"id": "1"})
	h.UpdateTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

// --- DeleteTaskGroup ---

func TestDeleteTaskGroup_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskGroupHandler(t)

	svc.EXPECT().DeleteTaskGroup(mock.Anything, int64(1)).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/task-groups/1", nil), map[string]string{"id": "1"})
	h.DeleteTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteTaskGroup_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskGroupHandler(t)

	svc.EXPECT().DeleteTaskGroup(mock.Anything, int64(999)).Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/task-groups/999", nil), map[string]string{"id": "999"})
	h.DeleteTaskGroup(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- ReorderTaskGroups ---

func TestReorderTaskGroups_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskGroupHandler(t)

	result := &ports.ReorderResult{Applied: []int64{1, 2, 3}}
	svc.EXPECT().ReorderTaskGroups(mock.Anything, mock.Anything).Return(result, nil)

	body := jsonBody(t, dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: 1, Order: 3}, {ID: 2, Order: 1}, {ID: 3, Order: 2},
	}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/task-groups/reorder", body)
	req.Header.Set("Content-Type", "application/json")
	h.ReorderTaskGroups(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ReorderResponse](t, rec)
	if resp.Succeeded != 3 {
		t.Errorf("Succeeded = %d, want 3", resp.Succeeded)
	}
}

func TestReorderTaskGroups_EmptyBatch(t *testing.T) {
	t.Parallel()
	h, _ := newTaskGroupHandler(t)

	body := jsonBody(t, dto.ReorderRequest{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/task-groups/reorder", body)
	req.Header.Set("Content-Type", "application/json")
	h.ReorderTaskGroups(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}
