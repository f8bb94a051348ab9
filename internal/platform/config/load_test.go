package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const baseYAML = `
server:
  host: 0.0.0.0
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  idle_timeout: 60s
log:
  level: info
  format: json
database:
  path: data/taskboard.db
  max_open_conns: 5
  busy_timeout: 5s
telemetry:
  enabled: false
  exporter: stdout
  service_name: taskboard
`

const localYAML = `
log:
  level: debug
  format: text
database:
  path: ":memory:"
  max_open_conns: 1
`

// writeConfigDir lays out a config directory with base and profile files.
func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad_LayersProfileOverBase(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml":  baseYAML,
		"local.yaml": localYAML,
	})

	cfg, err := Load("local", WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Profile layer wins where it sets a value.
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want profile override %q", cfg.Log.Level, "debug")
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, ":memory:")
	}

	// Base layer fills in everything the profile leaves alone.
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want base value 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 10s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.BusyTimeout != 5*time.Second {
		t.Errorf("Database.BusyTimeout = %v, want base value 5s", cfg.Database.BusyTimeout)
	}
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml":  baseYAML,
		"local.yaml": localYAML,
	})

	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "30s")

	cfg, err := Load("local", WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want env override %q", cfg.Log.Level, "warn")
	}
	// Keys with internal underscores resolve against known config keys.
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want env override 30s", cfg.Server.ReadTimeout)
	}
}

func TestLoad_MissingProfileFile(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})

	_, err := Load("prod", WithConfigDir(dir))
	if err == nil {
		t.Fatal("Load() error = nil, want missing profile error")
	}
	if !strings.Contains(err.Error(), "prod.yaml") {
		t.Errorf("error = %v, want it to name the missing profile file", err)
	}
}

func TestLoad_InvalidProfileNames(t *testing.T) {
	for _, profile := range []string{"", "  ", "../etc", `foo/bar`, `foo\bar`} {
		if _, err := Load(profile, WithConfigDir(t.TempDir())); err == nil {
			t.Errorf("Load(%q) error = nil, want profile validation error", profile)
		}
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"bad.yaml": `
server:
  port: 0
log:
  level: loud
`,
	})

	_, err := Load("bad", WithConfigDir(dir))
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
	for _, want := range []string{"server.port", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error = %v, want it to mention %q", err, want)
		}
	}
}
