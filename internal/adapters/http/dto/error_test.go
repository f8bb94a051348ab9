package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskboard/taskboard/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("task 7"), domain.ErrNotFound), http.StatusNotFound},
		{"validation", &domain.ValidationError{Fields: map[string]string{"title": "is required"}}, http.StatusUnprocessableEntity},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"unavailable", domain.ErrUnavailable, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/7", nil)

			resp := NewErrorResponse(req, tt.err)
			if resp.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", resp.Status, tt.wantStatus)
			}
			if resp.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", resp.Title, http.StatusText(tt.wantStatus))
			}
			if resp.Instance != "/api/v1/tasks/7" {
				t.Errorf("Instance = %q, want request URI", resp.Instance)
			}
		})
	}
}

func TestNewErrorResponse_ValidationDetails(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"title":        "is required",
		"task_list_id": "must be a positive ID, got -1",
	}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)

	resp := NewErrorResponse(req, err)
	if len(resp.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(resp.Errors))
	}

	// Details are sorted by location for stable output.
	if resp.Errors[0].Location != "body.task_list_id" {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, "body.task_list_id")
	}
	if resp.Errors[1].Location != "body.title" {
		t.Errorf("Errors[1].Location = %q, want %q", resp.Errors[1].Location, "body.title")
	}
	if resp.Errors[1].Message != "is required" {
		t.Errorf("Errors[1].Message = %q, want %q", resp.Errors[1].Message, "is required")
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/99", nil)

	WriteErrorResponse(rec, req, domain.ErrNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", got, "application/problem+json")
	}

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", body.Type, "about:blank")
	}
	if body.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", body.Status, http.StatusNotFound)
	}
}
