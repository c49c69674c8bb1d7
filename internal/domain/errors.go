package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Base sentinel errors for errors.Is() checking. Every concrete domain error
// unwraps to exactly one of these, which is what the HTTP boundary maps to a
// status code.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnavailable     = errors.New("storage unavailable")
)

// Validation errors. All unwrap to ErrValidation.
var (
	ErrBlankInput         = sentinel("input must not be blank", ErrValidation)
	ErrProjectNameTooLong = sentinel("project name must be at most 16 characters", ErrValidation)
	ErrInvalidUsername    = sentinel("username must not contain whitespace", ErrValidation)
)

// Not-found errors. All unwrap to ErrNotFound. Whether "none found" is an
// error or an empty result is decided per read operation; see the service
// ports for the per-call contract.
var (
	ErrProjectNotFound      = sentinel("project not found", ErrNotFound)
	ErrProjectStateNotFound = sentinel("project state not found", ErrNotFound)
	ErrTaskNotFound         = sentinel("task not found", ErrNotFound)
	ErrNoProjectsFound      = sentinel("no projects found", ErrNotFound)
	ErrNoTasksFound         = sentinel("no tasks found", ErrNotFound)
	ErrUserNotFound         = sentinel("user not found", ErrNotFound)
	ErrAuditLogNotFound     = sentinel("audit log not found", ErrNotFound)
)

// Unchanged-state errors: raised instead of performing a no-op write.
// They unwrap to ErrConflict.
var (
	ErrProjectNotChanged = sentinel("project not changed", ErrConflict)
	ErrTaskNotChanged    = sentinel("task not changed", ErrConflict)
)

// Authentication and authorization errors.
var (
	ErrNoLoggedInUser     = sentinel("no logged in user", ErrUnauthenticated)
	ErrInvalidCredentials = sentinel("invalid username or password", ErrUnauthenticated)
	ErrUnauthorizedAccess = sentinel("operation not permitted for this role", ErrForbidden)
	ErrUsernameTaken      = sentinel("username already taken", ErrConflict)
)

// ErrAuditLogCreationFailed is returned when an audit record could not be
// persisted. The underlying storage error is attached by the audit trail.
var ErrAuditLogCreationFailed = errors.New("audit log creation failed")

// sentinelError is a named error that unwraps to one of the base sentinels,
// so both errors.Is(err, ErrProjectNotFound) and errors.Is(err, ErrNotFound)
// hold for the same value.
type sentinelError struct {
	msg  string
	base error
}

func (e *sentinelError) Error() string { return e.msg }
func (e *sentinelError) Unwrap() error { return e.base }

func sentinel(msg string, base error) error {
	return &sentinelError{msg: msg, base: base}
}

// ValidationError provides programmatic access to field-level validation
// failures. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to access verr.Fields for per-field details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
