package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/planmate/planmate/internal/adapters/http/handlers"
	"github.com/planmate/planmate/mocks"
)

func newHealthHandler(t *testing.T) (*handlers.HealthHandler, *mocks.MockHealthRegistry) {
	t.Helper()
	registry := mocks.NewMockHealthRegistry(t)
	return handlers.NewHealthHandler(registry), registry
}

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()
	h, _ := newHealthHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()
	h, registry := newHealthHandler(t)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{"mongodb": nil})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "ready" {
		t.Errorf("status = %v, want %q", resp["status"], "ready")
	}
}

func TestReadiness_UnhealthyCheck(t *testing.T) {
	t.Parallel()
	h, registry := newHealthHandler(t)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"mongodb": errors.New("mongodb: failing (circuit breaker open)"),
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %v, want %q", resp["status"], "not_ready")
	}
}
