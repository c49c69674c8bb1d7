package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/domain/user"
)

// CurrentUserProvider resolves the acting user for the current request.
// The current user is an explicit capability injected into every orchestrator
// rather than process-wide mutable state, so tests can supply arbitrary
// sessions without touching globals.
type CurrentUserProvider interface {
	// CurrentUser returns the acting user.
	// Returns domain.ErrNoLoggedInUser if no user is logged in.
	CurrentUser(ctx context.Context) (user.User, error)
}

// SessionStore manages login sessions: opened by login, closed by logout,
// resolved by the HTTP session middleware on every request. It is the only
// shared mutable state outside the persistence collaborator.
type SessionStore interface {
	// Open creates a session for the user and returns its opaque token.
	Open(u user.User) string

	// Resolve returns the user bound to the token.
	// The second return is false for unknown or expired tokens.
	Resolve(token string) (user.User, bool)

	// Close invalidates the token. Closing an unknown token is a no-op.
	Close(token string)
}

// AuditRecorder is the application-facing audit trail port. Each call
// resolves the current user, stamps a fresh ID and timestamp, and persists
// one immutable record. A failed current-user lookup propagates unchanged;
// a failed write surfaces as domain.ErrAuditLogCreationFailed.
type AuditRecorder interface {
	// LogCreation records that an entity was created.
	LogCreation(ctx context.Context, entityType audit.EntityType, entityID uuid.UUID, entityName string) (audit.AuditLog, error)

	// LogUpdate records one changed field of an entity.
	LogUpdate(ctx context.Context, entityType audit.EntityType, entityID uuid.UUID, entityName string, change audit.FieldChange) (audit.AuditLog, error)

	// LogDeletion records that an entity was deleted.
	LogDeletion(ctx context.Context, entityType audit.EntityType, entityID uuid.UUID, entityName string) (audit.AuditLog, error)
}
