package taskgroup

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
)

func TestNewName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name: "plain name is valid",
			raw:  "Work",
		},
		{
			name: "name at length limit is valid",
			raw:  strings.Repeat("a", MaxNameLength),
		},
		{
			name:    "empty name is invalid",
			raw:     "",
			wantErr: ErrNameEmpty,
		},
		{
			name:    "whitespace-only name is invalid",
			raw:     " \t ",
			wantErr: ErrNameEmpty,
		},
		{
			name:    "overlong name is invalid",
			raw:     strings.Repeat("a", MaxNameLength+1),
			wantErr: ErrNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewName(tt.raw)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewName(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("NewName(%q) error = %v, want ErrValidation", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewName(%q) error = %v, want nil", tt.raw, err)
			}
			if got.String() != tt.raw {
				t.Errorf("NewName(%q) = %q, want input preserved", tt.raw, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	g := New("Work", 3)

	if g.ID != 0 {
		t.Errorf("New().ID = %d, want 0", g.ID)
	}
	if g.Order != 3 {
		t.Errorf("New().Order = %d, want 3", g.Order)
	}
	if g.IncompleteTaskCount != 0 {
		t.Errorf("New().IncompleteTaskCount = %d, want 0", g.IncompleteTaskCount)
	}
	if g.CreatedAt.IsZero() || !g.CreatedAt.Equal(g.UpdatedAt) {
		t.Errorf("New() timestamps = %v / %v, want equal and non-zero", g.CreatedAt, g.UpdatedAt)
	}
}

func TestTaskGroup_Rename(t *testing.T) {
	t.Parallel()

	past := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	g := Reconstruct(1, "Work", 1, past, past)

	g.Rename("Home")
	if g.Name.String() != "Home" {
		t.Errorf("Name = %q, want %q", g.Name, "Home")
	}
	if !g.UpdatedAt.After(past) {
		t.Errorf("UpdatedAt = %v, want after %v", g.UpdatedAt, past)
	}
	if !g.CreatedAt.Equal(past) {
		t.Errorf("CreatedAt = %v, want unchanged", g.CreatedAt)
	}
}
