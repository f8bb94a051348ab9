package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/domain/task"
	"github.com/taskboard/taskboard/internal/domain/taskgroup"
	"github.com/taskboard/taskboard/internal/domain/tasklist"
	"github.com/taskboard/taskboard/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestToTaskResponse(t *testing.T) {
	t.Parallel()

	t.Run("incomplete task", func(t *testing.T) {
		t.Parallel()
		tk := task.Reconstruct(1, "Buy groceries", strPtr("milk"), nil, int64Ptr(3), testTime, testTime)

		resp := ToTaskResponse(tk)
		if resp.ID != 1 {
			t.Errorf("ID = %d, want 1", resp.ID)
		}
		if resp.Completed {
			t.Error("Completed = true, want false")
		}
		if resp.CompletedAt != nil {
			t.Errorf("CompletedAt = %v, want nil", resp.CompletedAt)
		}
		if resp.CreatedAt != "2026-02-12T15:04:05Z" {
			t.Errorf("CreatedAt = %q, want RFC 3339", resp.CreatedAt)
		}
		if resp.TaskListID == nil || *resp.TaskListID != 3 {
			t.Errorf("TaskListID = %v, want 3", resp.TaskListID)
		}
	})

	t.Run("completed task", func(t *testing.T) {
		t.Parallel()
		completedAt := testTime.Add(time.Hour)
		tk := task.Reconstruct(1, "Buy groceries", nil, &completedAt, nil, testTime, completedAt)

		resp := ToTaskResponse(tk)
		if !resp.Completed {
			t.Error("Completed = false, want true")
		}
		if resp.CompletedAt == nil || *resp.CompletedAt != "2026-02-12T16:04:05Z" {
			t.Errorf("CompletedAt = %v, want RFC 3339 timestamp", resp.CompletedAt)
		}
	})
}

func TestToTaskPageResponse(t *testing.T) {
	t.Parallel()

	page := &ports.TaskPage{
		Tasks: []task.Task{
			*task.Reconstruct(1, "A", nil, nil, nil, testTime, testTime),
			*task.Reconstruct(2, "B", nil, nil, nil, testTime, testTime),
		},
		Total:  42,
		Limit:  2,
		Offset: 4,
	}

	resp := ToTaskPageResponse(page)
	if len(resp.Tasks) != 2 {
		t.Errorf("len(Tasks) = %d, want 2", len(resp.Tasks))
	}
	if resp.Total != 42 || resp.Limit != 2 || resp.Offset != 4 {
		t.Errorf("window = %d/%d/%d, want 42/2/4", resp.Total, resp.Limit, resp.Offset)
	}
}

func TestToTaskListCollectionResponse(t *testing.T) {
	t.Parallel()

	lists := []tasklist.TaskList{
		*tasklist.Reconstruct(1, "Inbox", nil, nil, 1, nil, testTime, testTime),
		*tasklist.Reconstruct(2, "Errands", nil, int64Ptr(3), 2, nil, testTime, testTime),
	}

	resp := ToTaskListCollectionResponse(lists)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	if resp.TaskLists[1].TaskGroupID == nil || *resp.TaskLists[1].TaskGroupID != 3 {
		t.Errorf("TaskLists[1].TaskGroupID = %v, want 3", resp.TaskLists[1].TaskGroupID)
	}
}

func TestToTaskGroupResponse(t *testing.T) {
	t.Parallel()

	g := taskgroup.Reconstruct(1, "Work", 2, testTime, testTime)
	g.IncompleteTaskCount = 7

	resp := ToTaskGroupResponse(g)
	if resp.IncompleteTaskCount != 7 {
		t.Errorf("IncompleteTaskCount = %d, want 7", resp.IncompleteTaskCount)
	}
	if resp.Order != 2 {
		t.Errorf("Order = %d, want 2", resp.Order)
	}
}

func TestToReorderResponse(t *testing.T) {
	t.Parallel()

	t.Run("mixed outcome", func(t *testing.T) {
		t.Parallel()
		result := &ports.ReorderResult{
			Applied: []int64{1, 3},
			Errors:  []ports.ReorderError{{ID: 2, Err: domain.ErrNotFound}},
		}

		resp := ToReorderResponse(result)
		if resp.Total != 3 || resp.Succeeded != 2 || resp.Failed != 1 {
			t.Errorf("counts = %d/%d/%d, want 3/2/1", resp.Total, resp.Succeeded, resp.Failed)
		}
		if len(resp.Errors) != 1 || resp.Errors[0].ID != 2 {
			t.Fatalf("Errors = %+v, want one entry for ID 2", resp.Errors)
		}
		if resp.Errors[0].Message != domain.ErrNotFound.Error() {
			t.Errorf("Errors[0].Message = %q, want %q", resp.Errors[0].Message, domain.ErrNotFound.Error())
		}
	})

	t.Run("all failed keeps applied non-nil", func(t *testing.T) {
		t.Parallel()
		result := &ports.ReorderResult{
			Errors: []ports.ReorderError{{ID: 1, Err: errors.New("boom")}},
		}

		resp := ToReorderResponse(result)
		if resp.Applied == nil {
			t.Error("Applied = nil, want empty slice so it serializes as []")
		}
		if resp.Succeeded != 0 || resp.Failed != 1 {
			t.Errorf("Succeeded/Failed = %d/%d, want 0/1", resp.Succeeded, resp.Failed)
		}
	})
}
