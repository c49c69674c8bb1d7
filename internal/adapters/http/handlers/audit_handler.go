package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/planmate/planmate/internal/adapters/http/dto"
	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/ports"
)

// AuditHandler handles HTTP requests for reading entity audit trails.
type AuditHandler struct {
	svc ports.AuditService
}

// NewAuditHandler creates a new AuditHandler with the given service port.
func NewAuditHandler(svc ports.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetEntityLogs handles GET /api/v1/audit/{entityType}/{entityId}. The
// entity type path segment is case-insensitive ("project" or "task");
// records are returned newest first.
func (h *AuditHandler) GetEntityLogs(w http.ResponseWriter, r *http.Request) {
	entityType, err := parseEntityType(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entityID, err := parseID(r, "entityId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	logs, err := h.svc.GetEntityLogs(r.Context(), entityID, entityType)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAuditLogListResponse(logs))
}

// parseEntityType extracts and validates the entityType path parameter.
func parseEntityType(r *http.Request) (audit.EntityType, error) {
	raw := strings.ToUpper(chi.URLParam(r, "entityType"))
	entityType := audit.EntityType(raw)
	if !entityType.IsValid() {
		return "", &domain.ValidationError{
			Fields: map[string]string{"entityType": "must be one of: project, task"},
		}
	}
	return entityType, nil
}
