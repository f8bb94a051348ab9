package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/domain/tasklist"
	"github.com/taskboard/taskboard/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskListRepository = (*TaskListRepository)(nil)

// TaskListRepository implements ports.TaskListRepository over the shared Store.
type TaskListRepository struct {
	store *Store
}

// NewTaskListRepository creates a TaskListRepository backed by the given store.
func NewTaskListRepository(store *Store) *TaskListRepository {
	return &TaskListRepository{store: store}
}

const taskListColumns = "id, name, description, task_group_id, sort_order, user_id, created_at, updated_at"

// Create persists a new task list and returns it with the assigned ID.
func (r *TaskListRepository) Create(ctx context.Context, l *tasklist.TaskList) (_ *tasklist.TaskList, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_list.create", start, err) }()

	res, err := r.store.db.ExecContext(ctx, `
		INSERT INTO task_lists (name, description, task_group_id, sort_order, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.Name.String(), l.Description, l.TaskGroupID, l.Order, l.UserID,
		formatTime(l.CreatedAt), formatTime(l.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task list: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading task list insert ID: %w", err)
	}

	created := *l
	created.ID = id
	return &created, nil
}

// GetByID returns a single active task list.
func (r *TaskListRepository) GetByID(ctx context.Context, id int64) (_ *tasklist.TaskList, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_list.get", start, err) }()

	row := r.store.db.QueryRowContext(ctx,
		`SELECT `+taskListColumns+` FROM task_lists WHERE id = ? AND deleted_at IS NULL`, id)

	l, err := scanTaskList(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task list %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task list %d: %w", id, err)
	}
	return l, nil
}

// List returns all active task lists ordered by their sort position.
func (r *TaskListRepository) List(ctx context.Context) (_ []tasklist.TaskList, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_list.list", start, err) }()

	rows, err := r.store.db.QueryContext(ctx,
		`SELECT `+taskListColumns+` FROM task_lists WHERE deleted_at IS NULL ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("querying task lists: %w", err)
	}
	defer rows.Close()

	var lists []tasklist.TaskList
	for rows.Next() {
		l, err := scanTaskList(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task list row: %w", err)
		}
		lists = append(lists, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task list rows: %w", err)
	}
	return lists, nil
}

// Update persists all mutable fields of the task list.
func (r *TaskListRepository) Update(ctx context.Context, l *tasklist.TaskList) (_ *tasklist.TaskList, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_list.update", start, err) }()

	res, err := r.store.db.ExecContext(ctx, `
		UPDATE task_lists
		SET name = ?, description = ?, task_group_id = ?, sort_order = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		l.Name.String(), l.Description, l.TaskGroupID, l.Order, formatTime(l.UpdatedAt), l.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task list %d: %w", l.ID, err)
	}
	if err := requireRowAffected(res, "task list", l.ID); err != nil {
		return nil, err
	}

	updated := *l
	return &updated, nil
}

// SoftDelete orphans the list's member tasks and marks the list deleted.
// Both writes run in one transaction so a failure cannot leave tasks pointing
// at a deleted list.
func (r *TaskListRepository) SoftDelete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_list.soft_delete", start, err) }()

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning task list delete: %w", err)
	}
	defer tx.Rollback()

	now := formatTime(time.Now())

	res, err := tx.ExecContext(ctx, `
		UPDATE task_lists SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		now, now, id,
	)
	if err != nil {
		return fmt.Errorf("soft-deleting task list %d: %w", id, err)
	}
	if err := requireRowAffected(res, "task list", id); err != nil {
		return err
	}

	// Orphan member tasks: clear the membership, keep the rows.
	if _, err := tx.ExecContext(ctx, `
		UPDATE tasks SET task_list_id = NULL, updated_at = ?
		WHERE task_list_id = ? AND deleted_at IS NULL`,
		now, id,
	); err != nil {
		return fmt.Errorf("orphaning tasks of list %d: %w", id, err)
	}

	return tx.Commit()
}

// UpdateOrder sets the sibling sort position of a single list.
func (r *TaskListRepository) UpdateOrder(ctx context.Context, id int64, order int) (err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_list.update_order", start, err) }()

	res, err := r.store.db.ExecContext(ctx, `
		UPDATE task_lists SET sort_order = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		order, formatTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("reordering task list %d: %w", id, err)
	}
	return requireRowAffected(res, "task list", id)
}

// Move reassigns the list to the given group (nil detaches it) and sets its
// sort position in one write.
func (r *TaskListRepository) Move(ctx context.Context, id int64, taskGroupID *int64, order int) (err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_list.move", start, err) }()

	res, err := r.store.db.ExecContext(ctx, `
		UPDATE task_lists SET task_group_id = ?, sort_order = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		taskGroupID, order, formatTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("moving task list %d: %w", id, err)
	}
	return requireRowAffected(res, "task list", id)
}

// ExistsByID reports whether an active task list with the given ID exists.
func (r *TaskListRepository) ExistsByID(ctx context.Context, id int64) (_ bool, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_list.exists", start, err) }()

	var one int
	err = r.store.db.QueryRowContext(ctx,
		`SELECT 1 FROM task_lists WHERE id = ? AND deleted_at IS NULL`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking task list %d: %w", id, err)
	}
	return true, nil
}

func scanTaskList(s scanner) (*tasklist.TaskList, error) {
	var (
		id          int64
		name        string
		description sql.NullString
		taskGroupID sql.NullInt64
		order       int
		userID      sql.NullInt64
		createdAt   string
		updatedAt   string
	)
	if err := s.Scan(&id, &name, &description, &taskGroupID, &order, &userID, &createdAt, &updatedAt); err != nil {
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

	return tasklist.Reconstruct(id, tasklist.Name(name), stringPtr(description),
		int64Ptr(taskGroupID), order, int64Ptr(userID), created, updated), nil
}
