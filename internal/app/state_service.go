package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time check that ProjectStateService implements ports.ProjectStateService.
var _ ports.ProjectStateService = (*ProjectStateService)(nil)

// ProjectStateService implements ports.ProjectStateService. State mutations
// are not role-gated; what makes them non-trivial are the cascades that keep
// dependent tasks consistent with the state list, and the "states" audit
// diffs computed over the rendered title list.
//
// Cascades are not transactional. Partial failure leaves the system in the
// partially-applied state and surfaces the underlying error: if the Nth task
// deletion fails during a state delete, tasks 1..N-1 stay deleted and the
// state is not deleted.
type ProjectStateService struct {
	states  ports.ProjectStateRepository
	tasks   ports.TaskRepository
	taskSvc ports.TaskService
	auditor ports.AuditRecorder
	logger  *slog.Logger
}

// NewProjectStateService creates a ProjectStateService. Task rewrites during
// a rename cascade go through taskSvc so each rewrite is change-detected and
// audited like any other task update.
func NewProjectStateService(
	states ports.ProjectStateRepository,
	tasks ports.TaskRepository,
	taskSvc ports.TaskService,
	auditor ports.AuditRecorder,
	logger *slog.Logger,
) *ProjectStateService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectStateService{
		states:  states,
		tasks:   tasks,
		taskSvc: taskSvc,
		auditor: auditor,
		logger:  logger,
	}
}

// Create adds a state to a project and writes one "states" field change
// whose old value is the previous title list rendering and whose new value
// is that list plus the new title.
func (s *ProjectStateService) Create(ctx context.Context, projectID uuid.UUID, title string) (project.ProjectState, error) {
	s.logger.InfoContext(ctx, "creating project state",
		slog.String("project_id", projectID.String()),
		slog.String("title", title),
	)

	if err := domain.ValidateNotBlank(title); err != nil {
		return project.ProjectState{}, err
	}

	oldStates, err := s.states.GetByProject(ctx, projectID)
	if err != nil {
		return project.ProjectState{}, err
	}

	created, err := s.states.Create(ctx, project.ProjectState{
		ID:        uuid.New(),
		Title:     title,
		ProjectID: projectID,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project state",
			slog.String("operation", "CreateProjectState"),
			slog.String("project_id", projectID.String()),
			slog.Any("error", err),
		)
		return project.ProjectState{}, err
	}

	change := audit.FieldChange{
		FieldName: audit.FieldStates,
		OldValue:  project.RenderStateTitles(oldStates),
		NewValue:  project.RenderStateTitles(append(oldStates, created)),
	}
	if _, err := s.auditor.LogUpdate(ctx, audit.EntityProject, projectID, "", change); err != nil {
		return project.ProjectState{}, err
	}

	return created, nil
}

// Update renames a state, writes one "states" field change, then rewrites
// the denormalized StateName of every task referencing the state, one task
// at a time through the task update path. A task whose only difference was
// already the new title (ErrTaskNotChanged) does not stop the cascade.
func (s *ProjectStateService) Update(ctx context.Context, stateID, projectID uuid.UUID, newTitle string) error {
	s.logger.InfoContext(ctx, "renaming project state",
		slog.String("state_id", stateID.String()),
		slog.String("new_title", newTitle),
	)

	if err := domain.ValidateNotBlank(newTitle); err != nil {
		return err
	}

	oldStates, err := s.states.GetByProject(ctx, projectID)
	if err != nil {
		return err
	}

	_, err = s.states.Update(ctx, project.ProjectState{
		ID:        stateID,
		Title:     newTitle,
		ProjectID: projectID,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to rename project state",
			slog.String("operation", "UpdateProjectState"),
			slog.String("state_id", stateID.String()),
			slog.Any("error", err),
		)
		return err
	}

	change := audit.FieldChange{
		FieldName: audit.FieldStates,
		OldValue:  project.RenderStateTitles(oldStates),
		NewValue:  project.RenderStateTitles(project.WithRenamedState(oldStates, stateID, newTitle)),
	}
	if _, err := s.auditor.LogUpdate(ctx, audit.EntityProject, projectID, "", change); err != nil {
		return err
	}

	tasks, err := s.tasks.GetByState(ctx, stateID)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		t.StateName = newTitle
		if _, err := s.taskSvc.Update(ctx, t); err != nil && !errors.Is(err, domain.ErrTaskNotChanged) {
			s.logger.ErrorContext(ctx, "state rename cascade failed",
				slog.String("operation", "UpdateProjectState"),
				slog.String("task_id", t.ID.String()),
				slog.Any("error", err),
			)
			return fmt.Errorf("cascading rename to task %s: %w", t.ID, err)
		}
	}

	return nil
}

// Delete removes a state. The ordering is load-bearing: every task
// referencing the state is hard-deleted first, so the state never exists
// while referenced by nothing mid-flush; the audit diff is computed from the
// state list captured before the state deletion so its old/new values
// reflect the actual removed title.
func (s *ProjectStateService) Delete(ctx context.Context, stateID, projectID uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting project state",
		slog.String("state_id", stateID.String()),
		slog.String("project_id", projectID.String()),
	)

	projectTasks, err := s.tasks.GetByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for _, t := range projectTasks {
		if t.StateID != stateID {
			continue
		}
		if err := s.tasks.Delete(ctx, t.ID); err != nil {
			s.logger.ErrorContext(ctx, "state delete cascade failed",
				slog.String("operation", "DeleteProjectState"),
				slog.String("task_id", t.ID.String()),
				slog.Any("error", err),
			)
			return fmt.Errorf("deleting task %s before state: %w", t.ID, err)
		}
	}

	oldStates, err := s.states.GetByProject(ctx, projectID)
	if err != nil {
		return err
	}

	change := audit.FieldChange{
		FieldName: audit.FieldStates,
		OldValue:  project.RenderStateTitles(oldStates),
		NewValue:  project.RenderStateTitles(project.WithoutState(oldStates, stateID)),
	}
	if _, err := s.auditor.LogUpdate(ctx, audit.EntityProject, projectID, "", change); err != nil {
		return err
	}

	return s.states.Delete(ctx, stateID)
}

// GetByProject returns a project's states in creation order.
func (s *ProjectStateService) GetByProject(ctx context.Context, projectID uuid.UUID) ([]project.ProjectState, error) {
	return s.states.GetByProject(ctx, projectID)
}

// GetByID returns a single state; not-found propagates from the repository.
func (s *ProjectStateService) GetByID(ctx context.Context, stateID uuid.UUID) (project.ProjectState, error) {
	return s.states.GetByID(ctx, stateID)
}
