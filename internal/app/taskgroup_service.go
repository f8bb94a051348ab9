package app

import (
	"context"
	"log/slog"

	"github.com/taskboard/taskboard/internal/domain/taskgroup"
	"github.com/taskboard/taskboard/internal/ports"
)

// Compile-time check that TaskGroupService implements ports.TaskGroupService.
var _ ports.TaskGroupService = (*TaskGroupService)(nil)

// TaskGroupService implements ports.TaskGroupService.
type TaskGroupService struct {
	groups ports.TaskGroupRepository
	logger *slog.Logger
}

// NewTaskGroupService creates a TaskGroupService. A nil logger is replaced
// with a no-op logger.
func NewTaskGroupService(groups ports.TaskGroupRepository, logger *slog.Logger) *TaskGroupService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskGroupService{groups: groups, logger: logger}
}

// ListTaskGroups returns all task groups ordered by sort position. The
// repository populates the derived incomplete-task counts at read time.
func (s *TaskGroupService) ListTaskGroups(ctx context.Context) ([]taskgroup.TaskGroup, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list task groups",
			slog.String("operation", "ListTaskGroups"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return groups, nil
}

// GetTaskGroup returns a single task group by ID.
func (s *TaskGroupService) GetTaskGroup(ctx context.Context, id int64) (*taskgroup.TaskGroup, error) {
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task group",
			slog.String("operation", "GetTaskGroup"),
			slog.Int64("task_group_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return g, nil
}

// CreateTaskGroup validates the input and persists the new group.
func (s *TaskGroupService) CreateTaskGroup(ctx context.Context, in ports.CreateTaskGroupInput) (*taskgroup.TaskGroup, error) {
	s.logger.InfoContext(ctx, "creating task group", slog.String("name", in.Name))

	name, err := taskgroup.NewName(in.Name)
	if err != nil {
		return nil, err
	}

	created, err := s.groups.Create(ctx, taskgroup.New(name, in.Order))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task group",
			slog.String("operation", "CreateTaskGroup"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateTaskGroup loads the group and applies only the fields present in the
// input before saving.
func (s *TaskGroupService) UpdateTaskGroup(ctx context.Context, id int64, in ports.UpdateTaskGroupInput) (*taskgroup.TaskGroup, error) {
	s.logger.InfoContext(ctx, "updating task group", slog.Int64("task_group_id", id))

	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := taskgroup.NewName(*in.Name)
		if err != nil {
			return nil, err
		}
		g.Rename(name)
	}

	updated, err := s.groups.Update(ctx, g)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task group",
			slog.String("operation", "UpdateTaskGroup"),
			slog.Int64("task_group_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteTaskGroup unassigns the group's member lists and soft-deletes the
// group. The repository runs both writes in one transaction so a failure
// cannot leave lists pointing at a deleted group.
func (s *TaskGroupService) DeleteTaskGroup(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting task group", slog.Int64("task_group_id", id))

	if err := s.groups.SoftDelete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task group",
			slog.String("operation", "DeleteTaskGroup"),
			slog.Int64("task_group_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ReorderTaskGroups bulk-applies sibling sort positions with per-row
// partial-success semantics.
func (s *TaskGroupService) ReorderTaskGroups(ctx context.Context, updates []ports.OrderUpdate) (*ports.ReorderResult, error) {
	s.logger.InfoContext(ctx, "reordering task groups", slog.Int("count", len(updates)))

	return applyOrderUpdates(ctx, updates, s.groups.UpdateOrder), nil
}
