package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService. Mutations pass through the
// ADMIN authorization gate before any persistence write; every successful
// mutation produces at least one audit record.
type ProjectService struct {
	projects ports.ProjectRepository
	states   ports.ProjectStateRepository
	users    ports.CurrentUserProvider
	auditor  ports.AuditRecorder
	logger   *slog.Logger
}

// NewProjectService creates a ProjectService.
func NewProjectService(
	projects ports.ProjectRepository,
	states ports.ProjectStateRepository,
	users ports.CurrentUserProvider,
	auditor ports.AuditRecorder,
	logger *slog.Logger,
) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		projects: projects,
		states:   states,
		users:    users,
		auditor:  auditor,
		logger:   logger,
	}
}

// Create validates the name, persists a new project, writes a creation audit
// record, and seeds the three default states in order. Seeding failures are
// surfaced, not masked: the project then exists without its complete state
// set, and the caller sees the underlying error.
func (s *ProjectService) Create(ctx context.Context, name string) (project.Project, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("name", name))

	if err := domain.ValidateProjectName(name); err != nil {
		return project.Project{}, err
	}

	created, err := Authorize(ctx, s.users, adminOnly, func(ctx context.Context) (project.Project, error) {
		return s.projects.Create(ctx, project.Project{ID: uuid.New(), Name: name})
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return project.Project{}, err
	}

	if _, err := s.auditor.LogCreation(ctx, audit.EntityProject, created.ID, created.Name); err != nil {
		return project.Project{}, err
	}

	for _, title := range project.DefaultStateTitles() {
		state := project.ProjectState{ID: uuid.New(), Title: title, ProjectID: created.ID}
		if _, err := s.states.Create(ctx, state); err != nil {
			s.logger.ErrorContext(ctx, "failed to seed default state",
				slog.String("operation", "CreateProject"),
				slog.String("project_id", created.ID.String()),
				slog.String("state_title", title),
				slog.Any("error", err),
			)
			return project.Project{}, fmt.Errorf("seeding default state %q: %w", title, err)
		}
	}

	return created, nil
}

// Update renames a project. It fails with domain.ErrProjectNotChanged before
// any write when the name is identical, and writes one "name" field change
// record on success.
func (s *ProjectService) Update(ctx context.Context, updated project.Project) (project.Project, error) {
	s.logger.InfoContext(ctx, "updating project", slog.String("id", updated.ID.String()))

	if err := domain.ValidateNotBlank(updated.Name); err != nil {
		return project.Project{}, err
	}

	original, err := s.projects.GetByID(ctx, updated.ID)
	if err != nil {
		return project.Project{}, err
	}
	if original.Name == updated.Name {
		return project.Project{}, domain.ErrProjectNotChanged
	}

	persisted, err := Authorize(ctx, s.users, adminOnly, func(ctx context.Context) (project.Project, error) {
		return s.projects.Update(ctx, updated)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update project",
			slog.String("operation", "UpdateProject"),
			slog.String("id", updated.ID.String()),
			slog.Any("error", err),
		)
		return project.Project{}, err
	}

	for _, change := range project.DetectChanges(original, persisted) {
		if _, err := s.auditor.LogUpdate(ctx, audit.EntityProject, persisted.ID, persisted.Name, change); err != nil {
			return project.Project{}, err
		}
	}

	return persisted, nil
}

// Delete removes a project and writes a deletion audit record named after
// the project as it existed before the delete.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting project", slog.String("id", id.String()))

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = AuthorizeVoid(ctx, s.users, adminOnly, func(ctx context.Context) error {
		return s.projects.Delete(ctx, id)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete project",
			slog.String("operation", "DeleteProject"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}

	_, err = s.auditor.LogDeletion(ctx, audit.EntityProject, p.ID, p.Name)
	return err
}

// GetAll returns all projects, or domain.ErrNoProjectsFound when none exist.
func (s *ProjectService) GetAll(ctx context.Context) ([]project.Project, error) {
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "GetAllProjects"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if len(projects) == 0 {
		return nil, domain.ErrNoProjectsFound
	}
	return projects, nil
}

// GetByID returns a single project; not-found propagates from the repository.
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	return s.projects.GetByID(ctx, id)
}
