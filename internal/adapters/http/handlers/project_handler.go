// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/planmate/planmate/internal/adapters/http/dto"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/ports"
)

// ProjectHandler handles HTTP requests for project CRUD and the nested
// workflow-state operations.
type ProjectHandler struct {
	projects ports.ProjectService
	states   ports.ProjectStateService
}

// NewProjectHandler creates a new ProjectHandler with the given service ports.
func NewProjectHandler(projects ports.ProjectService, states ports.ProjectStateService) *ProjectHandler {
	return &ProjectHandler{projects: projects, states: states}
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.GetAll(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.projects.Create(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.projects.GetByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p))
}

// UpdateProject handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.projects.Update(r.Context(), project.Project{ID: id, Name: req.Name})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(updated))
}

// DeleteProject handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.projects.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListProjectStates handles GET /api/v1/projects/{projectId}/states.
func (h *ProjectHandler) ListProjectStates(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	states, err := h.states.GetByProject(r.Context(), projectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStateListResponse(states))
}

// AddProjectState handles POST /api/v1/projects/{projectId}/states.
func (h *ProjectHandler) AddProjectState(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateStateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.states.Create(r.Context(), projectID, req.Title)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToStateResponse(created))
}

// RenameProjectState handles PATCH /api/v1/projects/{projectId}/states/{stateId}.
// Renaming cascades to the denormalized state name on the project's tasks.
func (h *ProjectHandler) RenameProjectState(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	stateID, err := parseID(r, "stateId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateStateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.states.Update(r.Context(), stateID, projectID, req.Title); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveProjectState handles DELETE /api/v1/projects/{projectId}/states/{stateId}.
// Tasks referencing the state are deleted with it.
func (h *ProjectHandler) RemoveProjectState(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	stateID, err := parseID(r, "stateId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.states.Delete(r.Context(), stateID, projectID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
