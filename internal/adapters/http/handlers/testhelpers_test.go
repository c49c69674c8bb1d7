package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/domain/task"
	"github.com/planmate/planmate/internal/domain/user"
)

var (
	testTime      = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testProjectID = uuid.MustParse("b0a0a0a0-0000-4000-8000-000000000001")
	testStateID   = uuid.MustParse("b0a0a0a0-0000-4000-8000-000000000002")
	testTaskID    = uuid.MustParse("b0a0a0a0-0000-4000-8000-000000000003")
	testUserID    = uuid.MustParse("b0a0a0a0-0000-4000-8000-000000000004")
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validProject() project.Project {
	return project.Project{
		ID:   testProjectID,
		Name: "Sprint 1",
	}
}

func validState() project.ProjectState {
	return project.ProjectState{
		ID:        testStateID,
		Title:     "To Do",
		ProjectID: testProjectID,
	}
}

func validTask() task.Task {
	return task.Task{
		ID:          testTaskID,
		Name:        "Write release notes",
		ProjectID:   testProjectID,
		StateID:     testStateID,
		StateName:   "To Do",
		AddedByID:   testUserID,
		AddedByName: "mate",
	}
}

func validUser() user.User {
	return user.User{
		ID:        testUserID,
		Username:  "mate",
		Role:      user.RoleUser,
		CreatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
