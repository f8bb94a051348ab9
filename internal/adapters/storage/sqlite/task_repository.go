package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/domain/task"
	"github.com/taskboard/taskboard/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskRepository = (*TaskRepository)(nil)

// TaskRepository implements ports.TaskRepository over the shared Store.
type TaskRepository struct {
	store *Store
}

// NewTaskRepository creates a TaskRepository backed by the given store.
func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

const taskColumns = "id, title, description, completed_at, task_list_id, created_at, updated_at"

// Create persists a new task and returns it with the assigned ID.
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (_ *task.Task, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task.create", start, err) }()

	res, err := r.store.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, completed_at, task_list_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.Title.String(), t.Description, formatTimePtr(t.CompletedAt), t.TaskListID,
		formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading task insert ID: %w", err)
	}

	created := *t
	created.ID = id
	return &created, nil
}

// GetByID returns a single active task.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (_ *task.Task, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task.get", start, err) }()

	row := r.store.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND deleted_at IS NULL`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task %d: %w", id, err)
	}
	return t, nil
}

// List returns active tasks matching the filter ordered by creation time.
// A limit <= 0 disables the window.
func (r *TaskRepository) List(ctx context.Context, filter task.Filter, limit, offset int) (_ []task.Task, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task.list", start, err) }()

	where, args := taskFilterClauses(filter)
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY created_at, id`
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}

// Count returns the total number of active tasks matching the filter.
func (r *TaskRepository) Count(ctx context.Context, filter task.Filter) (_ int64, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task.count", start, err) }()

	where, args := taskFilterClauses(filter)
	query := `SELECT COUNT(*) FROM tasks WHERE ` + strings.Join(where, " AND ")

	var total int64
	if err := r.store.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return total, nil
}

// Update persists all mutable fields of the task.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) (_ *task.Task, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task.update", start, err) }()

	res, err := r.store.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, completed_at = ?, task_list_id = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		t.Title.String(), t.Description, formatTimePtr(t.CompletedAt), t.TaskListID,
		formatTime(t.UpdatedAt), t.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task %d: %w", t.ID, err)
	}
	if err := requireRowAffected(res, "task", t.ID); err != nil {
		return nil, err
	}

	updated := *t
	return &updated, nil
}

// SoftDelete marks the task deleted without removing the row.
func (r *TaskRepository) SoftDelete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task.soft_delete", start, err) }()

	now := formatTime(time.Now())
	res, err := r.store.db.ExecContext(ctx, `
		UPDATE tasks SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		now, now, id,
	)
	if err != nil {
		return fmt.Errorf("soft-deleting task %d: %w", id, err)
	}
	return requireRowAffected(res, "task", id)
}

// ExistsByID reports whether an active task with the given ID exists.
func (r *TaskRepository) ExistsByID(ctx context.Context, id int64) (_ bool, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task.exists", start, err) }()

	var one int
	err = r.store.db.QueryRowContext(ctx,
		`SELECT 1 FROM tasks WHERE id = ? AND deleted_at IS NULL`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking task %d: %w", id, err)
	}
	return true, nil
}

// taskFilterClauses builds the WHERE clauses for the filter. The active-row
// predicate is always included.
func taskFilterClauses(filter task.Filter) ([]string, []any) {
	where := []string{"deleted_at IS NULL"}
	var args []any

	if filter.TaskListID != nil {
		where = append(where, "task_list_id = ?")
		args = append(args, *filter.TaskListID)
	}
	if filter.Completed != nil {
		if *filter.Completed {
			where = append(where, "completed_at IS NOT NULL")
		} else {
			where = append(where, "completed_at IS NULL")
		}
	}
	return where, args
}

func scanTask(s scanner) (*task.Task, error) {
	var (
		id          int64
		title       string
		description sql.NullString
		completedAt sql.NullString
		taskListID  sql.NullInt64
		createdAt   string
		updatedAt   string
	)
	if err := s.Scan(&id, &title, &description, &completedAt, &taskListID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	completed, err := parseTimePtr(completedAt)
	if err != nil {
		return nil, err
	}
	created, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return task.Reconstruct(id, task.Title(title), stringPtr(description), completed,
		int64Ptr(taskListID), created, updated), nil
}

// requireRowAffected maps a zero-row write to domain.ErrNotFound.
func requireRowAffected(res sql.Result, entity string, id int64) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
