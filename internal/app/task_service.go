// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and persistence through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/domain/task"
	"github.com/taskboard/taskboard/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. It constructs value objects from
// raw input, drives entity state transitions, and persists through the
// repository port. It contains no persistence logic of its own.
type TaskService struct {
	tasks  ports.TaskRepository
	lists  ports.TaskListRepository
	logger *slog.Logger
}

// NewTaskService creates a TaskService. The list repository is used to
// verify list references on create and reassignment. A nil logger is
// replaced with a no-op logger.
func NewTaskService(tasks ports.TaskRepository, lists ports.TaskListRepository, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{tasks: tasks, lists: lists, logger: logger}
}

// ListTasks returns one page of tasks matching the filter. The page total is
// computed with a separate count query so it reflects the full filtered set,
// not the returned window.
func (s *TaskService) ListTasks(ctx context.Context, filter task.Filter, limit, offset int) (*ports.TaskPage, error) {
	tasks, err := s.tasks.List(ctx, filter, limit, offset)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}

	total, err := s.tasks.Count(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.TaskPage{Tasks: tasks, Total: total, Limit: limit, Offset: offset}, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.Int64("task_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// CreateTask constructs the title value object, verifies any list
// reference, creates the task via the entity factory, and persists it.
func (s *TaskService) CreateTask(ctx context.Context, in ports.CreateTaskInput) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("title", in.Title))

	title, err := task.NewTitle(in.Title)
	if err != nil {
		return nil, err
	}

	if in.TaskListID != nil {
		if err := s.requireList(ctx, *in.TaskListID); err != nil {
			return nil, err
		}
	}

	created, err := s.tasks.Create(ctx, task.New(title, in.Description, in.TaskListID))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateTask loads the task and applies only the fields present in the input
// before saving. Optional fields carrying an explicit null clear the
// attribute; reassigning to a list verifies that the list exists.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, in ports.UpdateTaskInput) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.Int64("task_id", id))

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title, err := task.NewTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		t.Rename(title)
	}
	if in.Description.Set {
		t.SetDescription(in.Description.Value)
	}
	if in.TaskListID.Set {
		if in.TaskListID.Value != nil {
			if err := s.requireList(ctx, *in.TaskListID.Value); err != nil {
				return nil, err
			}
		}
		t.AssignToList(in.TaskListID.Value)
	}

	updated, err := s.tasks.Update(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.Int64("task_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteTask soft-deletes a task after verifying it exists.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting task", slog.Int64("task_id", id))

	if err := s.tasks.SoftDelete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.Int64("task_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// CompleteTask drives the Incomplete -> Completed transition and saves.
// The entity's conflict error propagates unchanged when the task is already
// completed.
func (s *TaskService) CompleteTask(ctx context.Context, id int64) (*task.Task, error) {
	s.logger.InfoContext(ctx, "completing task", slog.Int64("task_id", id))
	return s.transition(ctx, "CompleteTask", id, (*task.Task).Complete)
}

// UncompleteTask drives the Completed -> Incomplete transition and saves.
func (s *TaskService) UncompleteTask(ctx context.Context, id int64) (*task.Task, error) {
	s.logger.InfoContext(ctx, "uncompleting task", slog.Int64("task_id", id))
	return s.transition(ctx, "UncompleteTask", id, (*task.Task).Uncomplete)
}

// requireList maps a missing list to domain.ErrNotFound with context.
func (s *TaskService) requireList(ctx context.Context, listID int64) error {
	ok, err := s.lists.ExistsByID(ctx, listID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to verify task list",
			slog.String("operation", "requireList"),
			slog.Int64("task_list_id", listID),
			slog.Any("error", err),
		)
		return err
	}
	if !ok {
		return fmt.Errorf("task list %d: %w", listID, domain.ErrNotFound)
	}
	return nil
}

// transition loads a task, applies a completion state transition, and saves.
func (s *TaskService) transition(ctx context.Context, op string, id int64, apply func(*task.Task) error) (*task.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(t); err != nil {
		return nil, err
	}

	updated, err := s.tasks.Update(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save task transition",
			slog.String("operation", op),
			slog.Int64("task_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}
