package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/domain/task"
	"github.com/planmate/planmate/internal/domain/user"
)

// ProjectRepository is the persistence port for projects. Implementations
// return domain.ErrProjectNotFound for missing entities and
// domain.ErrUnavailable for infrastructure failures; they never retry.
type ProjectRepository interface {
	// Create persists a new project and returns it.
	Create(ctx context.Context, p project.Project) (project.Project, error)

	// Update overwrites an existing project and returns it.
	// Returns domain.ErrProjectNotFound if the project does not exist.
	Update(ctx context.Context, p project.Project) (project.Project, error)

	// Delete removes a project by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByID returns a single project.
	// Returns domain.ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)

	// GetAll returns every project. An empty slice is a valid result;
	// the service layer decides whether emptiness is an error.
	GetAll(ctx context.Context) ([]project.Project, error)
}

// ProjectStateRepository is the persistence port for workflow states.
type ProjectStateRepository interface {
	// Create persists a new state and returns it.
	Create(ctx context.Context, s project.ProjectState) (project.ProjectState, error)

	// Update overwrites an existing state and returns it.
	// Returns domain.ErrProjectStateNotFound if the state does not exist.
	Update(ctx context.Context, s project.ProjectState) (project.ProjectState, error)

	// Delete removes a state by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByID returns a single state.
	// Returns domain.ErrProjectStateNotFound if the state does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (project.ProjectState, error)

	// GetByProject returns the project's states in creation order.
	GetByProject(ctx context.Context, projectID uuid.UUID) ([]project.ProjectState, error)
}

// TaskRepository is the persistence port for tasks.
type TaskRepository interface {
	// Create persists a new task and returns it.
	Create(ctx context.Context, t task.Task) (task.Task, error)

	// Update overwrites an existing task and returns it.
	// Returns domain.ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, t task.Task) (task.Task, error)

	// Delete removes a task by ID. The delete is hard; no tombstone is kept.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByID returns a single task.
	// Returns domain.ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (task.Task, error)

	// GetAll returns every task. An empty slice is a valid result.
	GetAll(ctx context.Context) ([]task.Task, error)

	// GetByProject returns the tasks belonging to a project.
	GetByProject(ctx context.Context, projectID uuid.UUID) ([]task.Task, error)

	// GetByState returns the tasks currently referencing a state.
	// An empty slice is a valid result, not an error.
	GetByState(ctx context.Context, stateID uuid.UUID) ([]task.Task, error)
}

// AuditLogRepository is the persistence port for audit records. The store is
// append-only: there is no update or delete operation.
type AuditLogRepository interface {
	// Create persists a new audit record and returns it.
	Create(ctx context.Context, log audit.AuditLog) (audit.AuditLog, error)

	// GetEntityLogs returns all records for one entity, newest first.
	GetEntityLogs(ctx context.Context, entityID uuid.UUID, entityType audit.EntityType) ([]audit.AuditLog, error)
}

// UserRepository is the persistence port for user accounts.
type UserRepository interface {
	// Create persists a new user and returns it.
	// Returns domain.ErrUsernameTaken if the username already exists.
	Create(ctx context.Context, u user.User) (user.User, error)

	// GetByUsername returns the user with the given username.
	// Returns domain.ErrUserNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (user.User, error)

	// GetAll returns every user.
	GetAll(ctx context.Context) ([]user.User, error)
}
