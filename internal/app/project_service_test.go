package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/domain/user"
	"github.com/planmate/planmate/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func adminUser() user.User {
	return user.User{
		ID:       uuid.MustParse("6b1b64c6-21da-4f33-b561-b1e0b2f37b7f"),
		Username: "mate",
		Role:     user.RoleAdmin,
	}
}

func memberUser() user.User {
	return user.User{
		ID:       uuid.MustParse("8f14df6a-5a09-4b5e-8a57-7bdfd1a4cd12"),
		Username: "sam",
		Role:     user.RoleUser,
	}
}

func expectUser(m *mocks.MockCurrentUserProvider, u user.User) {
	m.EXPECT().CurrentUser(mock.Anything).Return(u, nil)
}

type projectServiceMocks struct {
	projects *mocks.MockProjectRepository
	states   *mocks.MockProjectStateRepository
	users    *mocks.MockCurrentUserProvider
	auditor  *mocks.MockAuditRecorder
}

func newProjectService(t *testing.T) (*ProjectService, projectServiceMocks) {
	m := projectServiceMocks{
		projects: mocks.NewMockProjectRepository(t),
		states:   mocks.NewMockProjectStateRepository(t),
		users:    mocks.NewMockCurrentUserProvider(t),
		auditor:  mocks.NewMockAuditRecorder(t),
	}
	svc := NewProjectService(m.projects, m.states, m.users, m.auditor, discardLogger())
	return svc, m
}

// --- NewProjectService ---

func TestNewProjectService_NilLogger(t *testing.T) {
	t.Parallel()
	svc := NewProjectService(nil, nil, nil, nil, nil)
	if svc.logger == nil {
		t.Fatal("NewProjectService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Create ---

func TestProjectService_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates project and seeds the three default states in order", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)
		expectUser(m.users, adminUser())

		m.projects.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p project.Project) (project.Project, error) {
				return p, nil
			})
		m.auditor.EXPECT().
			LogCreation(mock.Anything, audit.EntityProject, mock.Anything, "PlanMate").
			Return(audit.AuditLog{}, nil)

		var seeded []string
		m.states.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, s project.ProjectState) (project.ProjectState, error) {
				seeded = append(seeded, s.Title)
				return s, nil
			}).Times(3)

		got, err := svc.Create(context.Background(), "PlanMate")
		if err != nil {
			t.Fatalf("Create() error = %v, want nil", err)
		}
		if got.Name != "PlanMate" {
			t.Errorf("Create().Name = %q, want %q", got.Name, "PlanMate")
		}
		if got.ID == uuid.Nil {
			t.Error("Create().ID is nil, want a generated UUID")
		}
		want := project.DefaultStateTitles()
		if len(seeded) != len(want) {
			t.Fatalf("seeded %d states, want %d", len(seeded), len(want))
		}
		for i := range want {
			if seeded[i] != want[i] {
				t.Errorf("seeded[%d] = %q, want %q", i, seeded[i], want[i])
			}
		}
	})

	t.Run("rejects blank name before any side effect", func(t *testing.T) {
		t.Parallel()
		svc, _ := newProjectService(t)

		_, err := svc.Create(context.Background(), "   ")
		if !errors.Is(err, domain.ErrBlankInput) {
			t.Errorf("Create() error = %v, want ErrBlankInput", err)
		}
	})

	t.Run("rejects name longer than 16 characters", func(t *testing.T) {
		t.Parallel()
		svc, _ := newProjectService(t)

		_, err := svc.Create(context.Background(), "a name that is definitely too long")
		if !errors.Is(err, domain.ErrProjectNameTooLong) {
			t.Errorf("Create() error = %v, want ErrProjectNameTooLong", err)
		}
	})

	t.Run("rejects non-admin caller before any write", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)
		expectUser(m.users, memberUser())

		_, err := svc.Create(context.Background(), "PlanMate")
		if !errors.Is(err, domain.ErrUnauthorizedAccess) {
			t.Errorf("Create() error = %v, want ErrUnauthorizedAccess", err)
		}
	})

	t.Run("propagates missing login", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)
		m.users.EXPECT().CurrentUser(mock.Anything).Return(user.User{}, domain.ErrNoLoggedInUser)

		_, err := svc.Create(context.Background(), "PlanMate")
		if !errors.Is(err, domain.ErrNoLoggedInUser) {
			t.Errorf("Create() error = %v, want ErrNoLoggedInUser", err)
		}
	})

	t.Run("surfaces default state seeding failure", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)
		expectUser(m.users, adminUser())

		m.projects.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p project.Project) (project.Project, error) {
				return p, nil
			})
		m.auditor.EXPECT().
			LogCreation(mock.Anything, audit.EntityProject, mock.Anything, "PlanMate").
			Return(audit.AuditLog{}, nil)
		m.states.EXPECT().Create(mock.Anything, mock.Anything).
			Return(project.ProjectState{}, domain.ErrUnavailable).Once()

		_, err := svc.Create(context.Background(), "PlanMate")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Create() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- Update ---

func TestProjectService_Update(t *testing.T) {
	t.Parallel()

	existing := project.Project{
		ID:   uuid.MustParse("b7f2a8de-90cd-4a1e-9e38-4c6a9f62d101"),
		Name: "Old Name",
	}

	t.Run("renames project and writes one name field change", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)
		expectUser(m.users, adminUser())

		updated := existing
		updated.Name = "New Name"

		m.projects.EXPECT().GetByID(mock.Anything, existing.ID).Return(existing, nil)
		m.projects.EXPECT().Update(mock.Anything, updated).Return(updated, nil)
		m.auditor.EXPECT().
			LogUpdate(mock.Anything, audit.EntityProject, existing.ID, "New Name", audit.FieldChange{
				FieldName: audit.FieldName,
				OldValue:  "Old Name",
				NewValue:  "New Name",
			}).
			Return(audit.AuditLog{}, nil)

		got, err := svc.Update(context.Background(), updated)
		if err != nil {
			t.Fatalf("Update() error = %v, want nil", err)
		}
		if got.Name != "New Name" {
			t.Errorf("Update().Name = %q, want %q", got.Name, "New Name")
		}
	})

	t.Run("rejects identical name before any write", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)

		m.projects.EXPECT().GetByID(mock.Anything, existing.ID).Return(existing, nil)

		_, err := svc.Update(context.Background(), existing)
		if !errors.Is(err, domain.ErrProjectNotChanged) {
			t.Errorf("Update() error = %v, want ErrProjectNotChanged", err)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		t.Parallel()
		svc, _ := newProjectService(t)

		_, err := svc.Update(context.Background(), project.Project{ID: existing.ID, Name: ""})
		if !errors.Is(err, domain.ErrBlankInput) {
			t.Errorf("Update() error = %v, want ErrBlankInput", err)
		}
	})

	t.Run("returns error when project not found", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)

		m.projects.EXPECT().GetByID(mock.Anything, existing.ID).
			Return(project.Project{}, domain.ErrProjectNotFound)

		updated := existing
		updated.Name = "New Name"
		_, err := svc.Update(context.Background(), updated)
		if !errors.Is(err, domain.ErrProjectNotFound) {
			t.Errorf("Update() error = %v, want ErrProjectNotFound", err)
		}
	})

	t.Run("rejects non-admin caller", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)
		expectUser(m.users, memberUser())

		m.projects.EXPECT().GetByID(mock.Anything, existing.ID).Return(existing, nil)

		updated := existing
		updated.Name = "New Name"
		_, err := svc.Update(context.Background(), updated)
		if !errors.Is(err, domain.ErrUnauthorizedAccess) {
			t.Errorf("Update() error = %v, want ErrUnauthorizedAccess", err)
		}
	})
}

// --- Delete ---

func TestProjectService_Delete(t *testing.T) {
	t.Parallel()

	existing := project.Project{
		ID:   uuid.MustParse("d2a90f9a-5c3c-46de-b84e-2e6cbbd71f55"),
		Name: "Doomed",
	}

	t.Run("deletes project and writes a deletion record", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)
		expectUser(m.users, adminUser())

		m.projects.EXPECT().GetByID(mock.Anything, existing.ID).Return(existing, nil)
		m.projects.EXPECT().Delete(mock.Anything, existing.ID).Return(nil)
		m.auditor.EXPECT().
			LogDeletion(mock.Anything, audit.EntityProject, existing.ID, "Doomed").
			Return(audit.AuditLog{}, nil)

		if err := svc.Delete(context.Background(), existing.ID); err != nil {
			t.Errorf("Delete() error = %v, want nil", err)
		}
	})

	t.Run("rejects non-admin caller before the delete", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)
		expectUser(m.users, memberUser())

		m.projects.EXPECT().GetByID(mock.Anything, existing.ID).Return(existing, nil)

		err := svc.Delete(context.Background(), existing.ID)
		if !errors.Is(err, domain.ErrUnauthorizedAccess) {
			t.Errorf("Delete() error = %v, want ErrUnauthorizedAccess", err)
		}
	})

	t.Run("returns error when project not found", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)

		m.projects.EXPECT().GetByID(mock.Anything, existing.ID).
			Return(project.Project{}, domain.ErrProjectNotFound)

		err := svc.Delete(context.Background(), existing.ID)
		if !errors.Is(err, domain.ErrProjectNotFound) {
			t.Errorf("Delete() error = %v, want ErrProjectNotFound", err)
		}
	})
}

// --- GetAll / GetByID ---

func TestProjectService_GetAll(t *testing.T) {
	t.Parallel()

	t.Run("returns projects on success", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)

		want := []project.Project{
			{ID: uuid.MustParse("0a40caca-31cd-4f3c-b9ed-dc7e0ae0c111"), Name: "Alpha"},
			{ID: uuid.MustParse("1b51dbdb-42de-4a4d-8afe-ed8f1bf1d222"), Name: "Beta"},
		}
		m.projects.EXPECT().GetAll(mock.Anything).Return(want, nil)

		got, err := svc.GetAll(context.Background())
		if err != nil {
			t.Fatalf("GetAll() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Errorf("GetAll() len = %d, want 2", len(got))
		}
	})

	t.Run("returns ErrNoProjectsFound when empty", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)

		m.projects.EXPECT().GetAll(mock.Anything).Return([]project.Project{}, nil)

		_, err := svc.GetAll(context.Background())
		if !errors.Is(err, domain.ErrNoProjectsFound) {
			t.Errorf("GetAll() error = %v, want ErrNoProjectsFound", err)
		}
	})

	t.Run("propagates storage failure", func(t *testing.T) {
		t.Parallel()
		svc, m := newProjectService(t)

		m.projects.EXPECT().GetAll(mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.GetAll(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("GetAll() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestProjectService_GetByID(t *testing.T) {
	t.Parallel()
	svc, m := newProjectService(t)

	id := uuid.MustParse("97e54aa1-66ad-4c5a-a7de-55a6ba12ab23")
	m.projects.EXPECT().GetByID(mock.Anything, id).
		Return(project.Project{}, domain.ErrProjectNotFound)

	_, err := svc.GetByID(context.Background(), id)
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("GetByID() error = %v, want ErrProjectNotFound", err)
	}
}
