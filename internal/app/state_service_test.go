package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/domain/task"
	"github.com/planmate/planmate/mocks"
)

type stateServiceMocks struct {
	states  *mocks.MockProjectStateRepository
	tasks   *mocks.MockTaskRepository
	taskSvc *mocks.MockTaskService
	auditor *mocks.MockAuditRecorder
}

func newStateService(t *testing.T) (*ProjectStateService, stateServiceMocks) {
	m := stateServiceMocks{
		states:  mocks.NewMockProjectStateRepository(t),
		tasks:   mocks.NewMockTaskRepository(t),
		taskSvc: mocks.NewMockTaskService(t),
		auditor: mocks.NewMockAuditRecorder(t),
	}
	svc := NewProjectStateService(m.states, m.tasks, m.taskSvc, m.auditor, discardLogger())
	return svc, m
}

var (
	stateProjectID = uuid.MustParse("7f4b0c1d-2a3e-45f6-8b9c-0d1e2f3a4b5c")
	stateToDoID    = uuid.MustParse("10000000-0000-4000-8000-000000000001")
	stateDoingID   = uuid.MustParse("10000000-0000-4000-8000-000000000002")
	stateDoneID    = uuid.MustParse("10000000-0000-4000-8000-000000000003")
)

func defaultStates() []project.ProjectState {
	return []project.ProjectState{
		{ID: stateToDoID, Title: project.DefaultStateToDo, ProjectID: stateProjectID},
		{ID: stateDoingID, Title: project.DefaultStateInProgress, ProjectID: stateProjectID},
		{ID: stateDoneID, Title: project.DefaultStateDone, ProjectID: stateProjectID},
	}
}

// --- Create ---

func TestProjectStateService_Create(t *testing.T) {
	t.Parallel()

	t.Run("adds state and diffs the rendered title list", func(t *testing.T) {
		t.Parallel()
		svc, m := newStateService(t)

		m.states.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(defaultStates(), nil)
		m.states.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, s project.ProjectState) (project.ProjectState, error) {
				return s, nil
			})
		m.auditor.EXPECT().
			LogUpdate(mock.Anything, audit.EntityProject, stateProjectID, "", audit.FieldChange{
				FieldName: audit.FieldStates,
				OldValue:  "To Do, In Progress, Done",
				NewValue:  "To Do, In Progress, Done, Review",
			}).
			Return(audit.AuditLog{}, nil)

		got, err := svc.Create(context.Background(), stateProjectID, "Review")
		if err != nil {
			t.Fatalf("Create() error = %v, want nil", err)
		}
		if got.Title != "Review" {
			t.Errorf("Create().Title = %q, want %q", got.Title, "Review")
		}
		if got.ProjectID != stateProjectID {
			t.Errorf("Create().ProjectID = %s, want %s", got.ProjectID, stateProjectID)
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		t.Parallel()
		svc, _ := newStateService(t)

		_, err := svc.Create(context.Background(), stateProjectID, " \t ")
		if !errors.Is(err, domain.ErrBlankInput) {
			t.Errorf("Create() error = %v, want ErrBlankInput", err)
		}
	})

	t.Run("propagates storage failure", func(t *testing.T) {
		t.Parallel()
		svc, m := newStateService(t)

		m.states.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(defaultStates(), nil)
		m.states.EXPECT().Create(mock.Anything, mock.Anything).
			Return(project.ProjectState{}, domain.ErrUnavailable)

		_, err := svc.Create(context.Background(), stateProjectID, "Review")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Create() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- Update (rename cascade) ---

func TestProjectStateService_Update(t *testing.T) {
	t.Parallel()

	t.Run("renames state and rewrites the StateName of dependent tasks", func(t *testing.T) {
		t.Parallel()
		svc, m := newStateService(t)

		m.states.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(defaultStates(), nil)
		m.states.EXPECT().
			Update(mock.Anything, project.ProjectState{ID: stateDoingID, Title: "Doing", ProjectID: stateProjectID}).
			Return(project.ProjectState{ID: stateDoingID, Title: "Doing", ProjectID: stateProjectID}, nil)
		m.auditor.EXPECT().
			LogUpdate(mock.Anything, audit.EntityProject, stateProjectID, "", audit.FieldChange{
				FieldName: audit.FieldStates,
				OldValue:  "To Do, In Progress, Done",
				NewValue:  "To Do, Doing, Done",
			}).
			Return(audit.AuditLog{}, nil)

		dependent := []task.Task{
			{ID: uuid.MustParse("20000000-0000-4000-8000-000000000001"), Name: "A", ProjectID: stateProjectID, StateID: stateDoingID, StateName: project.DefaultStateInProgress},
			{ID: uuid.MustParse("20000000-0000-4000-8000-000000000002"), Name: "B", ProjectID: stateProjectID, StateID: stateDoingID, StateName: project.DefaultStateInProgress},
		}
		m.tasks.EXPECT().GetByState(mock.Anything, stateDoingID).Return(dependent, nil)

		var rewritten []string
		m.taskSvc.EXPECT().Update(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, updated task.Task) (task.Task, error) {
				if updated.StateName != "Doing" {
					t.Errorf("cascade rewrote StateName to %q, want %q", updated.StateName, "Doing")
				}
				rewritten = append(rewritten, updated.Name)
				return updated, nil
			}).Times(2)

		if err := svc.Update(context.Background(), stateDoingID, stateProjectID, "Doing"); err != nil {
			t.Fatalf("Update() error = %v, want nil", err)
		}
		if len(rewritten) != 2 {
			t.Errorf("cascade rewrote %d tasks, want 2", len(rewritten))
		}
	})

	t.Run("tolerates an already-current task during the cascade", func(t *testing.T) {
		t.Parallel()
		svc, m := newStateService(t)

		m.states.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(defaultStates(), nil)
		m.states.EXPECT().Update(mock.Anything, mock.Anything).
			Return(project.ProjectState{}, nil)
		m.auditor.EXPECT().
			LogUpdate(mock.Anything, audit.EntityProject, stateProjectID, "", mock.Anything).
			Return(audit.AuditLog{}, nil)

		dependent := []task.Task{
			{ID: uuid.MustParse("20000000-0000-4000-8000-000000000003"), Name: "C", StateID: stateDoingID, StateName: "Doing"},
		}
		m.tasks.EXPECT().GetByState(mock.Anything, stateDoingID).Return(dependent, nil)
		m.taskSvc.EXPECT().Update(mock.Anything, mock.Anything).
			Return(task.Task{}, domain.ErrTaskNotChanged)

		if err := svc.Update(context.Background(), stateDoingID, stateProjectID, "Doing"); err != nil {
			t.Errorf("Update() error = %v, want nil", err)
		}
	})

	t.Run("stops the cascade on a real task failure", func(t *testing.T) {
		t.Parallel()
		svc, m := newStateService(t)

		m.states.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(defaultStates(), nil)
		m.states.EXPECT().Update(mock.Anything, mock.Anything).
			Return(project.ProjectState{}, nil)
		m.auditor.EXPECT().
			LogUpdate(mock.Anything, audit.EntityProject, stateProjectID, "", mock.Anything).
			Return(audit.AuditLog{}, nil)

		dependent := []task.Task{
			{ID: uuid.MustParse("20000000-0000-4000-8000-000000000004"), Name: "D", StateID: stateDoingID},
			{ID: uuid.MustParse("20000000-0000-4000-8000-000000000005"), Name: "E", StateID: stateDoingID},
		}
		m.tasks.EXPECT().GetByState(mock.Anything, stateDoingID).Return(dependent, nil)
		m.taskSvc.EXPECT().Update(mock.Anything, mock.Anything).
			Return(task.Task{}, domain.ErrUnavailable).Once()

		err := svc.Update(context.Background(), stateDoingID, stateProjectID, "Doing")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Update() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("rejects blank title before any write", func(t *testing.T) {
		t.Parallel()
		svc, _ := newStateService(t)

		err := svc.Update(context.Background(), stateDoingID, stateProjectID, "")
		if !errors.Is(err, domain.ErrBlankInput) {
			t.Errorf("Update() error = %v, want ErrBlankInput", err)
		}
	})

	t.Run("propagates missing state", func(t *testing.T) {
		t.Parallel()
		svc, m := newStateService(t)

		m.states.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(defaultStates(), nil)
		m.states.EXPECT().Update(mock.Anything, mock.Anything).
			Return(project.ProjectState{}, domain.ErrProjectStateNotFound)

		err := svc.Update(context.Background(), uuid.New(), stateProjectID, "Doing")
		if !errors.Is(err, domain.ErrProjectStateNotFound) {
			t.Errorf("Update() error = %v, want ErrProjectStateNotFound", err)
		}
	})
}

// --- Delete (delete cascade) ---

func TestProjectStateService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes dependent tasks before the state", func(t *testing.T) {
		t.Parallel()
		svc, m := newStateService(t)

		doomed := []task.Task{
			{ID: uuid.MustParse("30000000-0000-4000-8000-000000000001"), Name: "A", ProjectID: stateProjectID, StateID: stateDoneID},
			{ID: uuid.MustParse("30000000-0000-4000-8000-000000000002"), Name: "B", ProjectID: stateProjectID, StateID: stateToDoID},
			{ID: uuid.MustParse("30000000-0000-4000-8000-000000000003"), Name: "C", ProjectID: stateProjectID, StateID: stateDoneID},
		}
		m.tasks.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(doomed, nil)
		m.tasks.EXPECT().Delete(mock.Anything, doomed[0].ID).Return(nil)
		m.tasks.EXPECT().Delete(mock.Anything, doomed[2].ID).Return(nil)

		m.states.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(defaultStates(), nil)
		m.auditor.EXPECT().
			LogUpdate(mock.Anything, audit.EntityProject, stateProjectID, "", audit.FieldChange{
				FieldName: audit.FieldStates,
				OldValue:  "To Do, In Progress, Done",
				NewValue:  "To Do, In Progress",
			}).
			Return(audit.AuditLog{}, nil)
		m.states.EXPECT().Delete(mock.Anything, stateDoneID).Return(nil)

		if err := svc.Delete(context.Background(), stateDoneID, stateProjectID); err != nil {
			t.Errorf("Delete() error = %v, want nil", err)
		}
	})

	t.Run("keeps the state when a task deletion fails", func(t *testing.T) {
		t.Parallel()
		svc, m := newStateService(t)

		doomed := []task.Task{
			{ID: uuid.MustParse("30000000-0000-4000-8000-000000000004"), Name: "A", ProjectID: stateProjectID, StateID: stateDoneID},
			{ID: uuid.MustParse("30000000-0000-4000-8000-000000000005"), Name: "B", ProjectID: stateProjectID, StateID: stateDoneID},
		}
		m.tasks.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(doomed, nil)
		m.tasks.EXPECT().Delete(mock.Anything, doomed[0].ID).Return(nil)
		m.tasks.EXPECT().Delete(mock.Anything, doomed[1].ID).Return(domain.ErrUnavailable)

		// No states.Delete and no audit record expected: the failed task
		// deletion aborts the operation with the first task already gone.
		err := svc.Delete(context.Background(), stateDoneID, stateProjectID)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Delete() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- GetByProject / GetByID ---

func TestProjectStateService_GetByProject(t *testing.T) {
	t.Parallel()
	svc, m := newStateService(t)

	m.states.EXPECT().GetByProject(mock.Anything, stateProjectID).Return(defaultStates(), nil)

	got, err := svc.GetByProject(context.Background(), stateProjectID)
	if err != nil {
		t.Fatalf("GetByProject() error = %v, want nil", err)
	}
	if len(got) != 3 {
		t.Errorf("GetByProject() len = %d, want 3", len(got))
	}
	if got[0].Title != project.DefaultStateToDo {
		t.Errorf("GetByProject()[0].Title = %q, want %q", got[0].Title, project.DefaultStateToDo)
	}
}

func TestProjectStateService_GetByID(t *testing.T) {
	t.Parallel()
	svc, m := newStateService(t)

	m.states.EXPECT().GetByID(mock.Anything, stateToDoID).
		Return(project.ProjectState{}, domain.ErrProjectStateNotFound)

	_, err := svc.GetByID(context.Background(), stateToDoID)
	if !errors.Is(err, domain.ErrProjectStateNotFound) {
		t.Errorf("GetByID() error = %v, want ErrProjectStateNotFound", err)
	}
}
