// Package sqlite provides the SQLite persistence adapter. It implements the
// repository ports over database/sql with the pure-Go modernc.org/sqlite
// driver, stores timestamps as RFC3339 UTC text, and filters soft-deleted
// rows out of every read.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/taskboard/taskboard/internal/platform/config"
	"github.com/taskboard/taskboard/internal/platform/telemetry"
	"github.com/taskboard/taskboard/internal/ports"
)

// Compile-time check that Store can serve readiness probes.
var _ ports.HealthChecker = (*Store)(nil)

// Store owns the database handle shared by the repositories. It also records
// per-query metrics and answers health checks for the readiness endpoint.
type Store struct {
	db      *sql.DB
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open opens (creating if necessary) the SQLite database described by cfg,
// applies connection pragmas, and runs pending migrations. A nil metrics is
// allowed; query metrics are then skipped. A nil logger is replaced with a
// no-op logger.
func Open(cfg config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Info("database opened", slog.String("path", cfg.Path))

	return &Store{db: db, metrics: metrics, logger: logger}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck implements ports.HealthChecker by pinging the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// record reports one query to the DB metric instruments. Called by every
// repository method with the operation label and the method's outcome.
func (s *Store) record(ctx context.Context, operation string, start time.Time, err error) {
	s.metrics.RecordDBQuery(ctx, operation, time.Since(start).Seconds(), err)
}
