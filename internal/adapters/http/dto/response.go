// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/domain/task"
	"github.com/planmate/planmate/internal/domain/user"
)

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:   p.ID.String(),
		Name: p.Name,
	}
}

// ToProjectListResponse converts a slice of domain Project entities to an
// HTTP list response DTO.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(projects[i])
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// StateResponse represents a single workflow state in HTTP responses.
type StateResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ProjectID string `json:"project_id"`
}

// StateListResponse represents a project's workflow states in creation order.
type StateListResponse struct {
	States []StateResponse `json:"states"`
	Count  int             `json:"count"`
}

// ToStateResponse converts a domain ProjectState entity to an HTTP response DTO.
func ToStateResponse(s project.ProjectState) StateResponse {
	return StateResponse{
		ID:        s.ID.String(),
		Title:     s.Title,
		ProjectID: s.ProjectID.String(),
	}
}

// ToStateListResponse converts a slice of domain ProjectState entities to an
// HTTP list response DTO.
func ToStateListResponse(states []project.ProjectState) StateListResponse {
	items := make([]StateResponse, len(states))
	for i := range states {
		items[i] = ToStateResponse(states[i])
	}
	return StateListResponse{
		States: items,
		Count:  len(items),
	}
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ProjectID   string `json:"project_id"`
	StateID     string `json:"state_id"`
	StateName   string `json:"state_name"`
	AddedByID   string `json:"added_by_id"`
	AddedByName string `json:"added_by_name"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task entity to an HTTP response DTO.
func ToTaskResponse(t task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		ProjectID:   t.ProjectID.String(),
		StateID:     t.StateID.String(),
		StateName:   t.StateName,
		AddedByID:   t.AddedByID.String(),
		AddedByName: t.AddedByName,
	}
}

// ToTaskListResponse converts a slice of domain Task entities to an HTTP
// list response DTO.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(tasks[i])
	}
	return TaskListResponse{
		Tasks: items,
		Count: len(items),
	}
}

// FieldChangeResponse represents one field-level diff within an audit record.
type FieldChangeResponse struct {
	FieldName string `json:"field_name"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
}

// AuditLogResponse represents a single audit record in HTTP responses.
type AuditLogResponse struct {
	ID          string               `json:"id"`
	CreatedAt   string               `json:"created_at"`
	UserID      string               `json:"user_id"`
	UserName    string               `json:"user_name"`
	EntityID    string               `json:"entity_id"`
	EntityType  string               `json:"entity_type"`
	EntityName  string               `json:"entity_name"`
	ActionType  string               `json:"action_type"`
	FieldChange *FieldChangeResponse `json:"field_change,omitempty"`
}

// AuditLogListResponse represents an entity's audit trail, newest first.
type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Count int                `json:"count"`
}

// ToAuditLogResponse converts a domain AuditLog entity to an HTTP response DTO.
func ToAuditLogResponse(log audit.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:         log.ID.String(),
		CreatedAt:  log.CreatedAt.Format(time.RFC3339),
		UserID:     log.UserID.String(),
		UserName:   log.UserName,
		EntityID:   log.EntityID.String(),
		EntityType: string(log.EntityType),
		EntityName: log.EntityName,
		ActionType: string(log.ActionType),
	}
	if log.FieldChange != nil {
		resp.FieldChange = &FieldChangeResponse{
			FieldName: log.FieldChange.FieldName,
			OldValue:  log.FieldChange.OldValue,
			NewValue:  log.FieldChange.NewValue,
		}
	}
	return resp
}

// ToAuditLogListResponse converts a slice of domain AuditLog entities to an
// HTTP list response DTO.
func ToAuditLogListResponse(logs []audit.AuditLog) AuditLogListResponse {
	items := make([]AuditLogResponse, len(logs))
	for i := range logs {
		items[i] = ToAuditLogResponse(logs[i])
	}
	return AuditLogListResponse{
		Logs:  items,
		Count: len(items),
	}
}

// UserResponse represents a user account in HTTP responses. The password
// hash never leaves the service.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// ToUserResponse converts a domain User entity to an HTTP response DTO.
func ToUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// LoginResponse represents a successful login: the opened session token and
// the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
