package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/domain/task"
	"github.com/planmate/planmate/internal/domain/user"
)

// ProjectService is the command/query surface for projects. All mutations
// are gated on the ADMIN role; state and task mutations deliberately are
// not.
type ProjectService interface {
	// Create validates the name, persists a new project, writes a creation
	// audit record, and seeds the three default states in order.
	// Returns domain.ErrUnauthorizedAccess for non-admin callers before any
	// write happens.
	Create(ctx context.Context, name string) (project.Project, error)

	// Update renames a project and writes one "name" field change record.
	// Returns domain.ErrProjectNotChanged if the name is identical.
	Update(ctx context.Context, updated project.Project) (project.Project, error)

	// Delete removes a project and writes a deletion audit record.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetAll returns all projects.
	// Returns domain.ErrNoProjectsFound when none exist.
	GetAll(ctx context.Context) ([]project.Project, error)

	// GetByID returns a single project.
	// Returns domain.ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
}

// ProjectStateService is the command/query surface for workflow states,
// including the cascades that keep dependent tasks consistent.
type ProjectStateService interface {
	// Create adds a state to a project and writes one "states" field change
	// record diffing the rendered title list before and after.
	Create(ctx context.Context, projectID uuid.UUID, title string) (project.ProjectState, error)

	// Update renames a state, writes one "states" field change record, and
	// then rewrites the denormalized StateName of every task referencing the
	// state, one task at a time, through the task update path.
	Update(ctx context.Context, stateID, projectID uuid.UUID, newTitle string) error

	// Delete removes a state. Tasks referencing the state are hard-deleted
	// first so no dangling references remain; the audit diff is computed
	// from the state list captured before the deletion.
	Delete(ctx context.Context, stateID, projectID uuid.UUID) error

	// GetByProject returns a project's states in creation order.
	GetByProject(ctx context.Context, projectID uuid.UUID) ([]project.ProjectState, error)

	// GetByID returns a single state.
	// Returns domain.ErrProjectStateNotFound if the state does not exist.
	GetByID(ctx context.Context, stateID uuid.UUID) (project.ProjectState, error)
}

// TaskService is the command/query surface for tasks.
type TaskService interface {
	// Create validates the name, resolves the target state, and persists a
	// new task with StateName denormalized from the state's title and the
	// AddedBy fields stamped from the current user.
	// Returns domain.ErrProjectStateNotFound if the state does not exist.
	Create(ctx context.Context, name string, projectID, stateID uuid.UUID) (task.Task, error)

	// Update overwrites a task and writes one audit record per changed field.
	// Returns domain.ErrTaskNotChanged if nothing differs.
	Update(ctx context.Context, updated task.Task) (task.Task, error)

	// Delete removes a task and writes a deletion audit record named after
	// the task as it existed at deletion time.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetAll returns all tasks.
	// Returns domain.ErrNoTasksFound when none exist.
	GetAll(ctx context.Context) ([]task.Task, error)

	// GetByID returns a single task.
	// Returns domain.ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (task.Task, error)

	// GetByState returns the tasks referencing a state. An empty slice is a
	// valid result, not an error.
	GetByState(ctx context.Context, stateID uuid.UUID) ([]task.Task, error)
}

// AuditService is the read surface over the audit trail.
type AuditService interface {
	// GetEntityLogs returns all audit records for one entity, newest first.
	GetEntityLogs(ctx context.Context, entityID uuid.UUID, entityType audit.EntityType) ([]audit.AuditLog, error)
}

// AuthService manages accounts and login sessions.
type AuthService interface {
	// Register validates the credentials, hashes the password, and persists
	// a new user with the USER role.
	Register(ctx context.Context, username, password string) (user.User, error)

	// Login verifies the credentials and opens a session, returning the
	// user and the session token.
	// Returns domain.ErrInvalidCredentials on a bad username or password.
	Login(ctx context.Context, username, password string) (user.User, string, error)

	// Logout closes the session bound to the token.
	Logout(ctx context.Context, token string)

	// CurrentUser returns the acting user for this request.
	// Returns domain.ErrNoLoggedInUser if none.
	CurrentUser(ctx context.Context) (user.User, error)
}
