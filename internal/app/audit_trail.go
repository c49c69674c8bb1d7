// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces. Each operation is a single sequential pipeline:
// validate -> authorize -> read -> write -> cascade -> audit.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/platform/telemetry"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time checks that AuditTrail implements its ports.
var (
	_ ports.AuditRecorder = (*AuditTrail)(nil)
	_ ports.AuditService  = (*AuditTrail)(nil)
)

// AuditTrail implements ports.AuditRecorder and ports.AuditService. Every
// record is stamped with a fresh UUID, the current UTC time, and the acting
// user resolved at write time; the store is append-only.
type AuditTrail struct {
	logs    ports.AuditLogRepository
	users   ports.CurrentUserProvider
	logger  *slog.Logger
	metrics *telemetry.Metrics

	// Injectable for tests; default to uuid.New and time.Now.
	newID func() uuid.UUID
	now   func() time.Time
}

// NewAuditTrail creates an AuditTrail. The metrics parameter may be nil,
// in which case no counters are recorded.
func NewAuditTrail(
	logs ports.AuditLogRepository,
	users ports.CurrentUserProvider,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *AuditTrail {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuditTrail{
		logs:    logs,
		users:   users,
		logger:  logger,
		metrics: metrics,
		newID:   uuid.New,
		now:     time.Now,
	}
}

// LogCreation records that an entity was created.
func (a *AuditTrail) LogCreation(
	ctx context.Context,
	entityType audit.EntityType,
	entityID uuid.UUID,
	entityName string,
) (audit.AuditLog, error) {
	return a.record(ctx, audit.ActionCreate, entityType, entityID, entityName, nil)
}

// LogUpdate records one changed field of an entity.
func (a *AuditTrail) LogUpdate(
	ctx context.Context,
	entityType audit.EntityType,
	entityID uuid.UUID,
	entityName string,
	change audit.FieldChange,
) (audit.AuditLog, error) {
	return a.record(ctx, audit.ActionUpdate, entityType, entityID, entityName, &change)
}

// LogDeletion records that an entity was deleted.
func (a *AuditTrail) LogDeletion(
	ctx context.Context,
	entityType audit.EntityType,
	entityID uuid.UUID,
	entityName string,
) (audit.AuditLog, error) {
	return a.record(ctx, audit.ActionDelete, entityType, entityID, entityName, nil)
}

// GetEntityLogs returns all audit records for one entity, newest first.
func (a *AuditTrail) GetEntityLogs(
	ctx context.Context,
	entityID uuid.UUID,
	entityType audit.EntityType,
) ([]audit.AuditLog, error) {
	logs, err := a.logs.GetEntityLogs(ctx, entityID, entityType)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to fetch audit logs",
			slog.String("operation", "GetEntityLogs"),
			slog.String("entity_id", entityID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return logs, nil
}

// record resolves the current user, builds the record, and persists it.
// A failed current-user lookup propagates unchanged; a failed write wraps
// domain.ErrAuditLogCreationFailed.
func (a *AuditTrail) record(
	ctx context.Context,
	action audit.ActionType,
	entityType audit.EntityType,
	entityID uuid.UUID,
	entityName string,
	change *audit.FieldChange,
) (audit.AuditLog, error) {
	current, err := a.users.CurrentUser(ctx)
	if err != nil {
		return audit.AuditLog{}, err
	}

	rec := audit.AuditLog{
		ID:          a.newID(),
		CreatedAt:   a.now().UTC(),
		UserID:      current.ID,
		UserName:    current.Username,
		EntityID:    entityID,
		EntityType:  entityType,
		EntityName:  entityName,
		ActionType:  action,
		FieldChange: change,
	}

	created, err := a.logs.Create(ctx, rec)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to persist audit record",
			slog.String("operation", "AuditTrail.record"),
			slog.String("entity_id", entityID.String()),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
		return audit.AuditLog{}, fmt.Errorf("%w: %w", domain.ErrAuditLogCreationFailed, err)
	}

	if a.metrics != nil {
		a.metrics.AuditRecordTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrEntityType.String(string(entityType)),
			telemetry.AttrActionType.String(string(action)),
		))
	}

	return created, nil
}
