package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "github.com/taskboard/taskboard/internal/adapters/http"
	"github.com/taskboard/taskboard/internal/adapters/http/handlers"
	"github.com/taskboard/taskboard/internal/adapters/http/middleware"
	"github.com/taskboard/taskboard/internal/domain/task"
	"github.com/taskboard/taskboard/internal/domain/taskgroup"
	"github.com/taskboard/taskboard/internal/domain/tasklist"
	"github.com/taskboard/taskboard/internal/platform/health"
	"github.com/taskboard/taskboard/internal/ports"
	"github.com/taskboard/taskboard/mocks"
	"github.com/stretchr/testify/mock"
)

var testStamp = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func jsonBodyString(s string) io.Reader { return strings.NewReader(s) }

// newTestRouter wires the router with mocked services so route registration
// can be exercised end to end.
func newTestRouter(t *testing.T) (http.Handler, *mocks.MockTaskService, *mocks.MockTaskListService, *mocks.MockTaskGroupService) {
	t.Helper()

	taskSvc := mocks.NewMockTaskService(t)
	listSvc := mocks.NewMockTaskListService(t)
	groupSvc := mocks.NewMockTaskGroupService(t)

	router := httpadapter.NewRouter(
		handlers.NewTaskHandler(taskSvc),
		handlers.NewTaskListHandler(listSvc),
		handlers.NewTaskGroupHandler(groupSvc),
		handlers.NewHealthHandler(health.New()),
	)
	return router, taskSvc, listSvc, groupSvc
}

func TestRouter_RoutesResolve(t *testing.T) {
	t.Parallel()
	router, taskSvc, listSvc, groupSvc := newTestRouter(t)

	taskSvc.EXPECT().ListTasks(mock.Anything, task.Filter{}, 50, 0).
		Return(&ports.TaskPage{Limit: 50}, nil)
	listSvc.EXPECT().ListTaskLists(mock.Anything).Return([]tasklist.TaskList{}, nil)
	groupSvc.EXPECT().ListTaskGroups(mock.Anything).Return([]taskgroup.TaskGroup{}, nil)
	taskSvc.EXPECT().GetTask(mock.Anything, int64(7)).
		Return(task.Reconstruct(7, "Found", nil, nil, nil, testStamp, testStamp), nil)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health liveness", http.MethodGet, "/health/live", http.StatusOK},
		{"health readiness", http.MethodGet, "/health/ready", http.StatusOK},
		{"list tasks", http.MethodGet, "/api/v1/tasks", http.StatusOK},
		{"get task by id", http.MethodGet, "/api/v1/tasks/7", http.StatusOK},
		{"list task lists", http.MethodGet, "/api/v1/task-lists", http.StatusOK},
		{"list task groups", http.MethodGet, "/api/v1/task-groups", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
		{"wrong method", http.MethodPut, "/api/v1/tasks", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.wantStatus {
			t.Errorf("%s: %s %s = %d, want %d", tt.name, tt.method, tt.path, rec.Code, tt.wantStatus)
		}
	}
}

func TestRouter_ReorderRouteNotShadowedByID(t *testing.T) {
	t.Parallel()
	router, _, listSvc, _ := newTestRouter(t)

	listSvc.EXPECT().ReorderTaskLists(mock.Anything, []ports.OrderUpdate{{ID: 1, Order: 2}}).
		Return(&ports.ReorderResult{Applied: []int64{1}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/task-lists/reorder",
		jsonBodyString(`{"items":[{"id":1,"order":2}]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_ReorderAndMoveUsePatch(t *testing.T) {
	t.Parallel()
	router, _, _, _ := newTestRouter(t)

	// POST on these paths must not resolve; the operations are PATCH-only.
	paths := []string{
		"/api/v1/task-lists/reorder",
		"/api/v1/task-lists/1/move",
		"/api/v1/task-groups/reorder",
	}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, jsonBodyString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("POST %s = %d, want %d", path, rec.Code, http.StatusMethodNotAllowed)
		}
	}
}

func TestRouter_AppliesMiddleware(t *testing.T) {
	t.Parallel()

	router := httpadapter.NewRouter(
		handlers.NewTaskHandler(mocks.NewMockTaskService(t)),
		handlers.NewTaskListHandler(mocks.NewMockTaskListService(t)),
		handlers.NewTaskGroupHandler(mocks.NewMockTaskGroupService(t)),
		handlers.NewHealthHandler(health.New()),
		middleware.RequestID(),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing, middleware not applied")
	}
}
