package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskboard/taskboard/internal/adapters/http/handlers"
	"github.com/taskboard/taskboard/internal/platform/health"
)

type stubChecker struct {
	name string
	err  error
}

func (c *stubChecker) Name() string { return c.name }

func (c *stubChecker) HealthCheck(_ context.Context) error { return c.err }

func TestLiveness(t *testing.T) {
	t.Parallel()
	h := handlers.NewHealthHandler(health.New())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()
	registry := health.New()
	registry.Register(&stubChecker{name: "database"})
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "ready" {
		t.Errorf("status = %v, want %q", resp["status"], "ready")
	}
}

func TestReadiness_UnhealthyComponent(t *testing.T) {
	t.Parallel()
	registry := health.New()
	registry.Register(&stubChecker{name: "database", err: errors.New("connection refused")})
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %v, want %q", resp["status"], "not_ready")
	}
}

func TestReadiness_NoCheckers(t *testing.T) {
	t.Parallel()
	h := handlers.NewHealthHandler(health.New())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}
