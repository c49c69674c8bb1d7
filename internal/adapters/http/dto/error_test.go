package dto_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/planmate/planmate/internal/adapters/http/dto"
	"github.com/planmate/planmate/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.ErrBlankInput, http.StatusBadRequest},
		{"unauthenticated", domain.ErrNoLoggedInUser, http.StatusUnauthorized},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrUnauthorizedAccess, http.StatusForbidden},
		{"not found", domain.ErrProjectNotFound, http.StatusNotFound},
		{"unchanged conflict", domain.ErrTaskNotChanged, http.StatusConflict},
		{"username conflict", domain.ErrUsernameTaken, http.StatusConflict},
		{"unavailable", domain.ErrUnavailable, http.StatusBadGateway},
		{"unknown", http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)

			resp := dto.NewErrorResponse(req, tt.err)
			if resp.Status != tt.want {
				t.Errorf("Status = %d, want %d", resp.Status, tt.want)
			}
			if resp.Title != http.StatusText(tt.want) {
				t.Errorf("Title = %q, want %q", resp.Title, http.StatusText(tt.want))
			}
		})
	}
}

func TestNewErrorResponse_ValidationDetails(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)

	err := &domain.ValidationError{Fields: map[string]string{
		"name":     "is required",
		"state_id": "must be a valid UUID",
	}}

	resp := dto.NewErrorResponse(req, err)
	if len(resp.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(resp.Errors))
	}
	// Details are sorted by location.
	if resp.Errors[0].Location != "body.name" {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, "body.name")
	}
	if resp.Errors[1].Location != "body.state_id" {
		t.Errorf("Errors[1].Location = %q, want %q", resp.Errors[1].Location, "body.state_id")
	}
}

func TestWriteErrorResponse_ProblemJSON(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/abc", nil)
	rec := httptest.NewRecorder()

	dto.WriteErrorResponse(rec, req, domain.ErrProjectNotFound)

	if got := rec.Header().Get("Content-Type"); got != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", got, "application/problem+json")
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Detail != domain.ErrProjectNotFound.Error() {
		t.Errorf("Detail = %q, want %q", resp.Detail, domain.ErrProjectNotFound.Error())
	}
	if resp.Instance != "/api/v1/projects/abc" {
		t.Errorf("Instance = %q, want request URI", resp.Instance)
	}
}
