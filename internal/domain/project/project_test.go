package project

import (
	"testing"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain/audit"
)

func stateList(projectID uuid.UUID, titles ...string) []ProjectState {
	states := make([]ProjectState, len(titles))
	for i, title := range titles {
		states[i] = ProjectState{ID: uuid.New(), Title: title, ProjectID: projectID}
	}
	return states
}

func TestDetectChanges(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("emits one name change", func(t *testing.T) {
		t.Parallel()
		changes := DetectChanges(Project{ID: id, Name: "Old"}, Project{ID: id, Name: "New"})
		want := audit.FieldChange{FieldName: audit.FieldName, OldValue: "Old", NewValue: "New"}
		if len(changes) != 1 {
			t.Fatalf("len(changes) = %d, want 1", len(changes))
		}
		if changes[0] != want {
			t.Errorf("changes[0] = %+v, want %+v", changes[0], want)
		}
	})

	t.Run("emits nothing for identical projects", func(t *testing.T) {
		t.Parallel()
		changes := DetectChanges(Project{ID: id, Name: "Same"}, Project{ID: id, Name: "Same"})
		if len(changes) != 0 {
			t.Errorf("changes = %+v, want none", changes)
		}
	})
}

func TestRenderStateTitles(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()

	t.Run("joins titles with comma separator in slice order", func(t *testing.T) {
		t.Parallel()
		states := stateList(projectID, "To Do", "In Progress", "Done")
		if got := RenderStateTitles(states); got != "To Do, In Progress, Done" {
			t.Errorf("RenderStateTitles() = %q, want %q", got, "To Do, In Progress, Done")
		}
	})

	t.Run("renders empty list as empty string", func(t *testing.T) {
		t.Parallel()
		if got := RenderStateTitles(nil); got != "" {
			t.Errorf("RenderStateTitles(nil) = %q, want empty", got)
		}
	})
}

func TestWithRenamedState(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	states := stateList(projectID, "To Do", "In Progress", "Done")

	renamed := WithRenamedState(states, states[0].ID, "Backlog")

	if got := RenderStateTitles(renamed); got != "Backlog, In Progress, Done" {
		t.Errorf("RenderStateTitles(renamed) = %q, want %q", got, "Backlog, In Progress, Done")
	}
	if got := RenderStateTitles(states); got != "To Do, In Progress, Done" {
		t.Errorf("input slice was modified: %q", got)
	}
	if renamed[0].ID != states[0].ID {
		t.Error("rename must not change the state id")
	}
}

func TestWithoutState(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	states := stateList(projectID, "To Do", "In Progress", "Done")

	remaining := WithoutState(states, states[1].ID)

	if got := RenderStateTitles(remaining); got != "To Do, Done" {
		t.Errorf("RenderStateTitles(remaining) = %q, want %q", got, "To Do, Done")
	}
	if len(states) != 3 {
		t.Errorf("input slice was modified, len = %d", len(states))
	}
}

func TestDefaultStateTitles(t *testing.T) {
	t.Parallel()

	want := []string{"To Do", "In Progress", "Done"}
	got := DefaultStateTitles()
	if len(got) != len(want) {
		t.Fatalf("DefaultStateTitles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DefaultStateTitles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
