package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/taskboard/taskboard/internal/platform/config"
)

// newTestStore opens a store on a throwaway database file with migrations
// applied. Metrics are nil so recording is a no-op.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		BusyTimeout:  time.Second,
	}
	store, err := Open(cfg, nil, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func TestOpen_RunsMigrations(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	for _, table := range []string{"tasks", "task_lists", "task_groups", "schema_migrations"} {
		var name string
		err := store.db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing after migrations: %v", table, err)
		}
	}
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	cfg := config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		BusyTimeout:  time.Second,
	}

	first, err := Open(cfg, nil, nil)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := Open(cfg, nil, nil)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer second.Close()

	var applied int
	if err := second.db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("counting applied migrations: %v", err)
	}
	if applied == 0 {
		t.Error("schema_migrations is empty, want at least one applied version")
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	if got := store.Name(); got != "database" {
		t.Errorf("Name() = %q, want %q", got, "database")
	}
	if err := store.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}
}

func TestStore_HealthCheck_Closed(t *testing.T) {
	t.Parallel()

	cfg := config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		BusyTimeout:  time.Second,
	}
	store, err := Open(cfg, nil, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := store.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() on closed store = nil, want error")
	}
}
