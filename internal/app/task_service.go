package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/domain/task"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. Task mutations are not
// role-gated; updates are change-detected so a no-op write is rejected
// before it reaches persistence, and each changed field yields exactly one
// audit record.
type TaskService struct {
	tasks   ports.TaskRepository
	states  ports.ProjectStateRepository
	users   ports.CurrentUserProvider
	auditor ports.AuditRecorder
	logger  *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(
	tasks ports.TaskRepository,
	states ports.ProjectStateRepository,
	users ports.CurrentUserProvider,
	auditor ports.AuditRecorder,
	logger *slog.Logger,
) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		tasks:   tasks,
		states:  states,
		users:   users,
		auditor: auditor,
		logger:  logger,
	}
}

// Create persists a new task under the given project and state. StateName is
// denormalized from the resolved state's title, and the AddedBy fields are
// stamped from the current user at creation time.
func (s *TaskService) Create(ctx context.Context, name string, projectID, stateID uuid.UUID) (task.Task, error) {
	s.logger.InfoContext(ctx, "creating task",
		slog.String("name", name),
		slog.String("project_id", projectID.String()),
	)

	if err := domain.ValidateNotBlank(name); err != nil {
		return task.Task{}, err
	}

	current, err := s.users.CurrentUser(ctx)
	if err != nil {
		return task.Task{}, err
	}

	state, err := s.states.GetByID(ctx, stateID)
	if err != nil {
		return task.Task{}, err
	}

	created, err := s.tasks.Create(ctx, task.Task{
		ID:          uuid.New(),
		Name:        name,
		ProjectID:   projectID,
		StateID:     state.ID,
		StateName:   state.Title,
		AddedByID:   current.ID,
		AddedByName: current.Username,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("project_id", projectID.String()),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	if _, err := s.auditor.LogCreation(ctx, audit.EntityTask, created.ID, created.Name); err != nil {
		return task.Task{}, err
	}

	return created, nil
}

// Update overwrites a task. It fails with domain.ErrTaskNotChanged before
// any write when the updated task is field-for-field identical to the
// existing one, and writes one audit record per changed field on success,
// entity-named from the updated task's name.
func (s *TaskService) Update(ctx context.Context, updated task.Task) (task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.String("id", updated.ID.String()))

	existing, err := s.tasks.GetByID(ctx, updated.ID)
	if err != nil {
		return task.Task{}, err
	}
	if existing.Equal(updated) {
		return task.Task{}, domain.ErrTaskNotChanged
	}

	persisted, err := s.tasks.Update(ctx, updated)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.String("id", updated.ID.String()),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	for _, change := range task.DetectChanges(existing, persisted) {
		if _, err := s.auditor.LogUpdate(ctx, audit.EntityTask, existing.ID, persisted.Name, change); err != nil {
			return task.Task{}, err
		}
	}

	return persisted, nil
}

// Delete removes a task and writes a deletion audit record named after the
// task as it existed at deletion time.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("id", id.String()))

	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}

	_, err = s.auditor.LogDeletion(ctx, audit.EntityTask, existing.ID, existing.Name)
	return err
}

// GetAll returns all tasks, or domain.ErrNoTasksFound when none exist.
func (s *TaskService) GetAll(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.tasks.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, domain.ErrNoTasksFound
	}
	return tasks, nil
}

// GetByID returns a single task; not-found propagates from the repository.
func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (task.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// GetByState returns the tasks referencing a state. An empty slice is a
// valid result.
func (s *TaskService) GetByState(ctx context.Context, stateID uuid.UUID) ([]task.Task, error) {
	return s.tasks.GetByState(ctx, stateID)
}
