package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/planmate/planmate/internal/adapters/http/dto"
	"github.com/planmate/planmate/internal/adapters/http/handlers"
	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/domain/task"
	"github.com/planmate/planmate/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTaskService, *mocks.MockProjectStateService) {
	t.Helper()
	tasks := mocks.NewMockTaskService(t)
	states := mocks.NewMockProjectStateService(t)
	return handlers.NewTaskHandler(tasks, states), tasks, states
}

// --- ListTasks ---

func TestListTasks_Success(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	tasks.EXPECT().GetAll(mock.Anything).Return([]task.Task{validTask()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListTasks_NoneFound(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	tasks.EXPECT().GetAll(mock.Anything).Return(nil, domain.ErrNoTasksFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestListTasks_ByState(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	tasks.EXPECT().GetByState(mock.Anything, testStateID).Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?state_id="+testStateID.String(), nil)
	h.ListTasks(rec, req)

	// An empty state listing is 200 with zero items, not a 404.
	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Count != 0 {
		t.Errorf("Count = %d, want 0", resp.Count)
	}
}

func TestListTasks_BadStateIDQuery(t *testing.T) {
	t.Parallel()
	h, _, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?state_id=abc", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- CreateTask ---

func TestCreateTask_Success(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	created := validTask()
	tasks.EXPECT().Create(mock.Anything, "Write release notes", testProjectID, testStateID).
		Return(created, nil)

	body := jsonBody(t, dto.CreateTaskRequest{
		Name:      "Write release notes",
		ProjectID: testProjectID.String(),
		StateID:   testStateID.String(),
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.StateName != "To Do" {
		t.Errorf("StateName = %q, want %q", resp.StateName, "To Do")
	}
	if resp.AddedByName != "mate" {
		t.Errorf("AddedByName = %q, want %q", resp.AddedByName, "mate")
	}
}

func TestCreateTask_BadIDs(t *testing.T) {
	t.Parallel()
	h, _, _ := newTaskHandler(t)

	body := jsonBody(t, dto.CreateTaskRequest{
		Name:      "Write release notes",
		ProjectID: "not-a-uuid",
		StateID:   "also-not",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTask_StateNotFound(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	tasks.EXPECT().Create(mock.Anything, "Write release notes", testProjectID, testStateID).
		Return(task.Task{}, domain.ErrProjectStateNotFound)

	body := jsonBody(t, dto.CreateTaskRequest{
		Name:      "Write release notes",
		ProjectID: testProjectID.String(),
		StateID:   testStateID.String(),
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- GetTask ---

func TestGetTask_Success(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	tasks.EXPECT().GetByID(mock.Anything, testTaskID).Return(validTask(), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+testTaskID.String(), nil),
		map[string]string{"id": testTaskID.String()},
	)
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ID != testTaskID.String() {
		t.Errorf("ID = %q, want %q", resp.ID, testTaskID)
	}
}

// --- UpdateTask ---

func TestUpdateTask_RenameOnly(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	existing := validTask()
	updated := existing
	updated.Name = "Publish release notes"

	tasks.EXPECT().GetByID(mock.Anything, testTaskID).Return(existing, nil)
	tasks.EXPECT().Update(mock.Anything, updated).Return(updated, nil)

	name := "Publish release notes"
	body := jsonBody(t, dto.UpdateTaskRequest{Name: &name})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+testTaskID.String(), body),
		map[string]string{"id": testTaskID.String()},
	)
	req.Header.Set("Content-Type", "application/json")
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.Name != "Publish release notes" {
		t.Errorf("Name = %q, want %q", resp.Name, "Publish release notes")
	}
}

func TestUpdateTask_MoveRefreshesStateName(t *testing.T) {
	t.Parallel()
	h, tasks, states := newTaskHandler(t)

	existing := validTask()
	target := project.ProjectState{ID: testStateID, Title: "Done", ProjectID: testProjectID}
	moved := existing
	moved.StateID = target.ID
	moved.StateName = "Done"

	tasks.EXPECT().GetByID(mock.Anything, testTaskID).Return(existing, nil)
	states.EXPECT().GetByID(mock.Anything, testStateID).Return(target, nil)
	tasks.EXPECT().Update(mock.Anything, moved).Return(moved, nil)

	stateID := testStateID.String()
	body := jsonBody(t, dto.UpdateTaskRequest{StateID: &stateID})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+testTaskID.String(), body),
		map[string]string{"id": testTaskID.String()},
	)
	req.Header.Set("Content-Type", "application/json")
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.StateName != "Done" {
		t.Errorf("StateName = %q, want %q", resp.StateName, "Done")
	}
}

func TestUpdateTask_NotChanged(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	existing := validTask()
	tasks.EXPECT().GetByID(mock.Anything, testTaskID).Return(existing, nil)
	tasks.EXPECT().Update(mock.Anything, existing).
		Return(task.Task{}, domain.ErrTaskNotChanged)

	name := existing.Name
	body := jsonBody(t, dto.UpdateTaskRequest{Name: &name})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+testTaskID.String(), body),
		map[string]string{"id": testTaskID.String()},
	)
	req.Header.Set("Content-Type", "application/json")
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- DeleteTask ---

func TestDeleteTask_Success(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	tasks.EXPECT().Delete(mock.Anything, testTaskID).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/"+testTaskID.String(), nil),
		map[string]string{"id": testTaskID.String()},
	)
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteTask_NotFound(t *testing.T) {
	t.Parallel()
	h, tasks, _ := newTaskHandler(t)

	tasks.EXPECT().Delete(mock.Anything, testTaskID).Return(domain.ErrTaskNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/"+testTaskID.String(), nil),
		map[string]string{"id": testTaskID.String()},
	)
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
