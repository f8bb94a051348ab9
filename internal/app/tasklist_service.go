package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskboard/taskboard/internal/app/fanout"
	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/domain/tasklist"
	"github.com/taskboard/taskboard/internal/ports"
)

// reorderWorkers bounds the concurrency of per-row order updates during bulk
// reorder operations.
const reorderWorkers = 4

// Compile-time check that TaskListService implements ports.TaskListService.
var _ ports.TaskListService = (*TaskListService)(nil)

// TaskListService implements ports.TaskListService.
type TaskListService struct {
	lists  ports.TaskListRepository
	groups ports.TaskGroupRepository
	logger *slog.Logger
}

// NewTaskListService creates a TaskListService. The group repository is used
// to verify group references on create and move. A nil logger is replaced
// with a no-op logger.
func NewTaskListService(lists ports.TaskListRepository, groups ports.TaskGroupRepository, logger *slog.Logger) *TaskListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskListService{lists: lists, groups: groups, logger: logger}
}

// ListTaskLists returns all task lists ordered by sort position.
func (s *TaskListService) ListTaskLists(ctx context.Context) ([]tasklist.TaskList, error) {
	lists, err := s.lists.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list task lists",
			slog.String("operation", "ListTaskLists"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return lists, nil
}

// GetTaskList returns a single task list by ID.
func (s *TaskListService) GetTaskList(ctx context.Context, id int64) (*tasklist.TaskList, error) {
	l, err := s.lists.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task list",
			slog.String("operation", "GetTaskList"),
			slog.Int64("task_list_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return l, nil
}

// CreateTaskList validates the input, verifies any group reference, and
// persists the new list.
func (s *TaskListService) CreateTaskList(ctx context.Context, in ports.CreateTaskListInput) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "creating task list", slog.String("name", in.Name))

	name, err := tasklist.NewName(in.Name)
	if err != nil {
		return nil, err
	}

	if in.TaskGroupID != nil {
		if err := s.requireGroup(ctx, *in.TaskGroupID); err != nil {
			return nil, err
		}
	}

	created, err := s.lists.Create(ctx, tasklist.New(name, in.Description, in.TaskGroupID, in.Order))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task list",
			slog.String("operation", "CreateTaskList"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateTaskList loads the list and applies only the fields present in the
// input before saving.
func (s *TaskListService) UpdateTaskList(ctx context.Context, id int64, in ports.UpdateTaskListInput) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "updating task list", slog.Int64("task_list_id", id))

	l, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := tasklist.NewName(*in.Name)
		if err != nil {
			return nil, err
		}
		l.Rename(name)
	}
	if in.Description.Set {
		l.SetDescription(in.Description.Value)
	}

	updated, err := s.lists.Update(ctx, l)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task list",
			slog.String("operation", "UpdateTaskList"),
			slog.Int64("task_list_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteTaskList orphans the list's member tasks and soft-deletes the list.
// The repository runs both writes in one transaction.
func (s *TaskListService) DeleteTaskList(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting task list", slog.Int64("task_list_id", id))

	if err := s.lists.SoftDelete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task list",
			slog.String("operation", "DeleteTaskList"),
			slog.Int64("task_list_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// MoveTaskList reassigns the list to the given group at the given position.
// A nil taskGroupID detaches the list from its group.
func (s *TaskListService) MoveTaskList(ctx context.Context, id int64, taskGroupID *int64, order int) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "moving task list",
		slog.Int64("task_list_id", id),
		slog.Any("task_group_id", taskGroupID),
		slog.Int("order", order),
	)

	if taskGroupID != nil {
		if err := s.requireGroup(ctx, *taskGroupID); err != nil {
			return nil, err
		}
	}

	if err := s.lists.Move(ctx, id, taskGroupID, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to move task list",
			slog.String("operation", "MoveTaskList"),
			slog.Int64("task_list_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return s.lists.GetByID(ctx, id)
}

// ReorderTaskLists bulk-applies sibling sort positions. Each row update
// succeeds or fails independently; failures are collected in the result
// rather than aborting the batch.
func (s *TaskListService) ReorderTaskLists(ctx context.Context, updates []ports.OrderUpdate) (*ports.ReorderResult, error) {
	s.logger.InfoContext(ctx, "reordering task lists", slog.Int("count", len(updates)))

	return applyOrderUpdates(ctx, updates, s.lists.UpdateOrder), nil
}

// requireGroup maps a missing group to domain.ErrNotFound with context.
func (s *TaskListService) requireGroup(ctx context.Context, groupID int64) error {
	ok, err := s.groups.ExistsByID(ctx, groupID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to verify task group",
			slog.String("operation", "requireGroup"),
			slog.Int64("task_group_id", groupID),
			slog.Any("error", err),
		)
		return err
	}
	if !ok {
		return fmt.Errorf("task group %d: %w", groupID, domain.ErrNotFound)
	}
	return nil
}

// applyOrderUpdates fans the per-row order writes out with bounded
// concurrency and folds the outcomes into a ReorderResult.
func applyOrderUpdates(ctx context.Context, updates []ports.OrderUpdate, write func(context.Context, int64, int) error) *ports.ReorderResult {
	results := fanout.Run(ctx, reorderWorkers, updates,
		func(ctx context.Context, u ports.OrderUpdate) (int64, error) {
			return u.ID, write(ctx, u.ID, u.Order)
		})

	out := &ports.ReorderResult{}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.ReorderError{ID: updates[i].ID, Err: r.Err})
			continue
		}
		out.Applied = append(out.Applied, r.Value)
	}
	return out
}
