package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/domain/taskgroup"
	"github.com/taskboard/taskboard/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskGroupRepository = (*TaskGroupRepository)(nil)

// TaskGroupRepository implements ports.TaskGroupRepository over the shared Store.
type TaskGroupRepository struct {
	store *Store
}

// NewTaskGroupRepository creates a TaskGroupRepository backed by the given store.
func NewTaskGroupRepository(store *Store) *TaskGroupRepository {
	return &TaskGroupRepository{store: store}
}

// Create persists a new task group and returns it with the assigned ID.
func (r *TaskGroupRepository) Create(ctx context.Context, g *taskgroup.TaskGroup) (_ *taskgroup.TaskGroup, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_group.create", start, err) }()

	res, err := r.store.db.ExecContext(ctx, `
		INSERT INTO task_groups (name, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		g.Name.String(), g.Order, formatTime(g.CreatedAt), formatTime(g.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task group: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading task group insert ID: %w", err)
	}

	created := *g
	created.ID = id
	return &created, nil
}

// taskGroupSelect joins each group against its member lists' incomplete
// tasks so IncompleteTaskCount comes back populated on every read.
const taskGroupSelect = `
	SELECT g.id, g.name, g.sort_order, g.created_at, g.updated_at,
	       COUNT(t.id) AS incomplete_tasks
	FROM task_groups g
	LEFT JOIN task_lists tl ON tl.task_group_id = g.id AND tl.deleted_at IS NULL
	LEFT JOIN tasks t ON t.task_list_id = tl.id
	     AND t.deleted_at IS NULL AND t.completed_at IS NULL`

// GetByID returns a single active task group with its incomplete-task count.
func (r *TaskGroupRepository) GetByID(ctx context.Context, id int64) (_ *taskgroup.TaskGroup, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_group.get", start, err) }()

	row := r.store.db.QueryRowContext(ctx,
		taskGroupSelect+` WHERE g.id = ? AND g.deleted_at IS NULL GROUP BY g.id`, id)

	g, err := scanTaskGroup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task group %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task group %d: %w", id, err)
	}
	return g, nil
}

// List returns all active task groups ordered by their sort position, with
// IncompleteTaskCount summed across member lists in a single aggregate query.
func (r *TaskGroupRepository) List(ctx context.Context) (_ []taskgroup.TaskGroup, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_group.list", start, err) }()

	rows, err := r.store.db.QueryContext(ctx,
		taskGroupSelect+`
		WHERE g.deleted_at IS NULL
		GROUP BY g.id
		ORDER BY g.sort_order, g.id`)
	if err != nil {
		return nil, fmt.Errorf("querying task groups: %w", err)
	}
	defer rows.Close()

	var groups []taskgroup.TaskGroup
	for rows.Next() {
		g, err := scanTaskGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task group row: %w", err)
		}
		groups = append(groups, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task group rows: %w", err)
	}
	return groups, nil
}

// Update persists all mutable fields of the task group.
func (r *TaskGroupRepository) Update(ctx context.Context, g *taskgroup.TaskGroup) (_ *taskgroup.TaskGroup, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_group.update", start, err) }()

	res, err := r.store.db.ExecContext(ctx, `
		UPDATE task_groups SET name = ?, sort_order = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		g.Name.String(), g.Order, formatTime(g.UpdatedAt), g.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task group %d: %w", g.ID, err)
	}
	if err := requireRowAffected(res, "task group", g.ID); err != nil {
		return nil, err
	}

	updated := *g
	return &updated, nil
}

// SoftDelete unassigns the group's member lists and marks the group deleted.
// Both writes run in one transaction.
func (r *TaskGroupRepository) SoftDelete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_group.soft_delete", start, err) }()

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning task group delete: %w", err)
	}
	defer tx.Rollback()

	now := formatTime(time.Now())

	res, err := tx.ExecContext(ctx, `
		UPDATE task_groups SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		now, now, id,
	)
	if err != nil {
		return fmt.Errorf("soft-deleting task group %d: %w", id, err)
	}
	if err := requireRowAffected(res, "task group", id); err != nil {
		return err
	}

	// Unassign member lists: clear the group reference, keep the rows.
	if _, err := tx.ExecContext(ctx, `
		UPDATE task_lists SET task_group_id = NULL, updated_at = ?
		WHERE task_group_id = ? AND deleted_at IS NULL`,
		now, id,
	); err != nil {
		return fmt.Errorf("unassigning lists of group %d: %w", id, err)
	}

	return tx.Commit()
}

// UpdateOrder sets the sibling sort position of a single group.
func (r *TaskGroupRepository) UpdateOrder(ctx context.Context, id int64, order int) (err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_group.update_order", start, err) }()

	res, err := r.store.db.ExecContext(ctx, `
		UPDATE task_groups SET sort_order = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		order, formatTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("reordering task group %d: %w", id, err)
	}
	return requireRowAffected(res, "task group", id)
}

// ExistsByID reports whether an active task group with the given ID exists.
func (r *TaskGroupRepository) ExistsByID(ctx context.Context, id int64) (_ bool, err error) {
	start := time.Now()
	defer func() { r.store.record(ctx, "task_group.exists", start, err) }()

	var one int
	err = r.store.db.QueryRowContext(ctx,
		`SELECT 1 FROM task_groups WHERE id = ? AND deleted_at IS NULL`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking task group %d: %w", id, err)
	}
	return true, nil
}

func scanTaskGroup(s scanner) (*taskgroup.TaskGroup, error) {
	var (
		id         int64
		name       string
		order      int
		createdAt  string
		updatedAt  string
		incomplete int64
	)
	if err := s.Scan(&id, &name, &order, &createdAt, &updatedAt, &incomplete); err != nil {
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

	g := taskgroup.Reconstruct(id, taskgroup.Name(name), order, created, updated)
	g.IncompleteTaskCount = incomplete
	return g, nil
}
