package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgMustBeUUID   = "must be a valid UUID"
)

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateProjectRequest represents the JSON body for renaming a project.
type UpdateProjectRequest struct {
	Name string `json:"name"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateStateRequest represents the JSON body for adding a workflow state
// to a project.
type CreateStateRequest struct {
	Title string `json:"title"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateStateRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateStateRequest represents the JSON body for renaming a workflow state.
type UpdateStateRequest struct {
	Title string `json:"title"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateStateRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateTaskRequest represents the JSON body for creating a new task.
type CreateTaskRequest struct {
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
	StateID   string `json:"state_id"`
}

// Validate checks that required fields are present and IDs parse.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if _, err := uuid.Parse(r.ProjectID); err != nil {
		fields["project_id"] = msgMustBeUUID
	}
	if _, err := uuid.Parse(r.StateID); err != nil {
		fields["state_id"] = msgMustBeUUID
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTaskRequest represents the JSON body for updating an existing task.
// All fields are optional; nil means "do not change this field".
type UpdateTaskRequest struct {
	Name    *string `json:"name,omitempty"`
	StateID *string `json:"state_id,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.StateID != nil {
		if _, err := uuid.Parse(*r.StateID); err != nil {
			fields["state_id"] = msgMustBeUUID
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// RegisterRequest represents the JSON body for creating an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that required fields are present. Username shape rules
// (no whitespace) are enforced by the auth service, not here.
func (r *RegisterRequest) Validate() error {
	fields := make(map[string]string)

	if r.Username == "" {
		fields["username"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// LoginRequest represents the JSON body for opening a session.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)

	if r.Username == "" {
		fields["username"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
