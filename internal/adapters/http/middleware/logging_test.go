package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taskboard/taskboard/internal/platform/logging"
)

// logLines decodes each JSON log line from the buffer.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			t.Fatalf("failed to decode log line %q: %v", raw, err)
		}
		lines = append(lines, line)
	}
	return lines
}

func TestLogging_EmitsStartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Chain(RequestID(), CorrelationID(), Logging(logger))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/9", nil)
	req.Header.Set("X-Request-ID", "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	lines := logLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2", len(lines))
	}

	started, completed := lines[0], lines[1]
	if started["msg"] != "request started" {
		t.Errorf("first msg = %v, want %q", started["msg"], "request started")
	}
	if started["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want %q", started["request_id"], "req-42")
	}

	if completed["msg"] != "request completed" {
		t.Errorf("second msg = %v, want %q", completed["msg"], "request completed")
	}
	if completed["status"] != float64(http.StatusNotFound) {
		t.Errorf("status = %v, want %d", completed["status"], http.StatusNotFound)
	}
	if completed["path"] != "/api/v1/tasks/9" {
		t.Errorf("path = %v, want request path", completed["path"])
	}
}

func TestLogging_StoresEnrichedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Chain(RequestID(), CorrelationID(), Logging(logger))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "inside handler")
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-77")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var found bool
	for _, line := range logLines(t, &buf) {
		if line["msg"] == "inside handler" {
			found = true
			if line["request_id"] != "req-77" {
				t.Errorf("handler log request_id = %v, want %q", line["request_id"], "req-77")
			}
		}
	}
	if !found {
		t.Error("handler log line not emitted through context logger")
	}
}

func TestLogging_DebugLevelLogsHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var found bool
	for _, line := range logLines(t, &buf) {
		if line["msg"] == "request headers" {
			found = true
			if line["Authorization"] != "[REDACTED]" {
				t.Errorf("Authorization = %v, want %q", line["Authorization"], "[REDACTED]")
			}
		}
	}
	if !found {
		t.Error("header log line not emitted at debug level")
	}
}
