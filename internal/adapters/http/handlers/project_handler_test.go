package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/planmate/planmate/internal/adapters/http/dto"
	"github.com/planmate/planmate/internal/adapters/http/handlers"
	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/mocks"
)

func newProjectHandler(t *testing.T) (*handlers.ProjectHandler, *mocks.MockProjectService, *mocks.MockProjectStateService) {
	t.Helper()
	projects := mocks.NewMockProjectService(t)
	states := mocks.NewMockProjectStateService(t)
	return handlers.NewProjectHandler(projects, states), projects, states
}

// --- ListProjects ---

func TestListProjects_Success(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	projects.EXPECT().GetAll(mock.Anything).Return([]project.Project{validProject()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListProjects_NoneFound(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	projects.EXPECT().GetAll(mock.Anything).Return(nil, domain.ErrNoProjectsFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- CreateProject ---

func TestCreateProject_Success(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	projects.EXPECT().Create(mock.Anything, "Sprint 1").Return(validProject(), nil)

	body := jsonBody(t, dto.CreateProjectRequest{Name: "Sprint 1"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.Name != "Sprint 1" {
		t.Errorf("Name = %q, want %q", resp.Name, "Sprint 1")
	}
}

func TestCreateProject_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _, _ := newProjectHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateProject_ValidationError(t *testing.T) {
	t.Parallel()
	h, _, _ := newProjectHandler(t)

	body := jsonBody(t, dto.CreateProjectRequest{Name: "   "})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateProject_Forbidden(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	projects.EXPECT().Create(mock.Anything, "Sprint 1").
		Return(project.Project{}, domain.ErrUnauthorizedAccess)

	body := jsonBody(t, dto.CreateProjectRequest{Name: "Sprint 1"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestCreateProject_NoSession(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	projects.EXPECT().Create(mock.Anything, "Sprint 1").
		Return(project.Project{}, domain.ErrNoLoggedInUser)

	body := jsonBody(t, dto.CreateProjectRequest{Name: "Sprint 1"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
}

// --- GetProject ---

func TestGetProject_Success(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	projects.EXPECT().GetByID(mock.Anything, testProjectID).Return(validProject(), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+testProjectID.String(), nil),
		map[string]string{"id": testProjectID.String()},
	)
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.ID != testProjectID.String() {
		t.Errorf("ID = %q, want %q", resp.ID, testProjectID)
	}
}

func TestGetProject_InvalidID(t *testing.T) {
	t.Parallel()
	h, _, _ := newProjectHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/projects/abc", nil),
		map[string]string{"id": "abc"},
	)
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetProject_NotFound(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	projects.EXPECT().GetByID(mock.Anything, testProjectID).
		Return(project.Project{}, domain.ErrProjectNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+testProjectID.String(), nil),
		map[string]string{"id": testProjectID.String()},
	)
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateProject ---

func TestUpdateProject_Success(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	renamed := project.Project{ID: testProjectID, Name: "Sprint 2"}
	projects.EXPECT().Update(mock.Anything, renamed).Return(renamed, nil)

	body := jsonBody(t, dto.UpdateProjectRequest{Name: "Sprint 2"})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/api/v1/projects/"+testProjectID.String(), body),
		map[string]string{"id": testProjectID.String()},
	)
	req.Header.Set("Content-Type", "application/json")
	h.UpdateProject(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.Name != "Sprint 2" {
		t.Errorf("Name = %q, want %q", resp.Name, "Sprint 2")
	}
}

func TestUpdateProject_NotChanged(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	same := project.Project{ID: testProjectID, Name: "Sprint 1"}
	projects.EXPECT().Update(mock.Anything, same).
		Return(project.Project{}, domain.ErrProjectNotChanged)

	body := jsonBody(t, dto.UpdateProjectRequest{Name: "Sprint 1"})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/api/v1/projects/"+testProjectID.String(), body),
		map[string]string{"id": testProjectID.String()},
	)
	req.Header.Set("Content-Type", "application/json")
	h.UpdateProject(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- DeleteProject ---

func TestDeleteProject_Success(t *testing.T) {
	t.Parallel()
	h, projects, _ := newProjectHandler(t)

	projects.EXPECT().Delete(mock.Anything, testProjectID).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodDelete, "/api/v1/projects/"+testProjectID.String(), nil),
		map[string]string{"id": testProjectID.String()},
	)
	h.DeleteProject(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

// --- Nested state routes ---

func TestListProjectStates_Success(t *testing.T) {
	t.Parallel()
	h, _, states := newProjectHandler(t)

	states.EXPECT().GetByProject(mock.Anything, testProjectID).
		Return([]project.ProjectState{validState()}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+testProjectID.String()+"/states", nil),
		map[string]string{"projectId": testProjectID.String()},
	)
	h.ListProjectStates(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.StateListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if resp.States[0].Title != "To Do" {
		t.Errorf("Title = %q, want %q", resp.States[0].Title, "To Do")
	}
}

func TestAddProjectState_Success(t *testing.T) {
	t.Parallel()
	h, _, states := newProjectHandler(t)

	created := project.ProjectState{ID: testStateID, Title: "Review", ProjectID: testProjectID}
	states.EXPECT().Create(mock.Anything, testProjectID, "Review").Return(created, nil)

	body := jsonBody(t, dto.CreateStateRequest{Title: "Review"})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+testProjectID.String()+"/states", body),
		map[string]string{"projectId": testProjectID.String()},
	)
	req.Header.Set("Content-Type", "application/json")
	h.AddProjectState(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.StateResponse](t, rec)
	if resp.Title != "Review" {
		t.Errorf("Title = %q, want %q", resp.Title, "Review")
	}
}

func TestRenameProjectState_Success(t *testing.T) {
	t.Parallel()
	h, _, states := newProjectHandler(t)

	states.EXPECT().Update(mock.Anything, testStateID, testProjectID, "Doing").Return(nil)

	body := jsonBody(t, dto.UpdateStateRequest{Title: "Doing"})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/states/"+testStateID.String(), body),
		map[string]string{"projectId": testProjectID.String(), "stateId": testStateID.String()},
	)
	req.Header.Set("Content-Type", "application/json")
	h.RenameProjectState(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestRenameProjectState_BlankTitle(t *testing.T) {
	t.Parallel()
	h, _, _ := newProjectHandler(t)

	body := jsonBody(t, dto.UpdateStateRequest{Title: " "})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/states/"+testStateID.String(), body),
		map[string]string{"projectId": testProjectID.String(), "stateId": testStateID.String()},
	)
	req.Header.Set("Content-Type", "application/json")
	h.RenameProjectState(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRemoveProjectState_Success(t *testing.T) {
	t.Parallel()
	h, _, states := newProjectHandler(t)

	states.EXPECT().Delete(mock.Anything, testStateID, testProjectID).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodDelete, "/states/"+testStateID.String(), nil),
		map[string]string{"projectId": testProjectID.String(), "stateId": testStateID.String()},
	)
	h.RemoveProjectState(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestRemoveProjectState_NotFound(t *testing.T) {
	t.Parallel()
	h, _, states := newProjectHandler(t)

	states.EXPECT().Delete(mock.Anything, testStateID, testProjectID).
		Return(domain.ErrProjectStateNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodDelete, "/states/"+testStateID.String(), nil),
		map[string]string{"projectId": testProjectID.String(), "stateId": testStateID.String()},
	)
	h.RemoveProjectState(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
