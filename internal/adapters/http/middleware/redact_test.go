package middleware

import (
	"net/http"
	"testing"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("Authorization", "Bearer secret-token")
	headers.Set("Cookie", "session=abc")
	headers.Set("X-Api-Key", "key-123")
	headers.Set("Content-Type", "application/json")
	headers.Add("Accept", "application/json")
	headers.Add("Accept", "text/plain")

	attrs := RedactHeaders(headers)

	got := make(map[string]string, len(attrs))
	for _, a := range attrs {
		got[a.Key] = a.Value.String()
	}

	for _, key := range []string{"Authorization", "Cookie", "X-Api-Key"} {
		if got[key] != "[REDACTED]" {
			t.Errorf("%s = %q, want %q", key, got[key], "[REDACTED]")
		}
	}
	if got["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %q, want passthrough", got["Content-Type"])
	}
	if got["Accept"] != "application/json,text/plain" {
		t.Errorf("Accept = %q, want comma-joined values", got["Accept"])
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	attrs := RedactHeaders(http.Header{})
	if len(attrs) != 0 {
		t.Errorf("len = %d, want 0", len(attrs))
	}
}
