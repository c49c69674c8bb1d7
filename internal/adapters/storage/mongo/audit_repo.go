package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/planmate/planmate/internal/domain/audit"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time interface check.
var _ ports.AuditLogRepository = (*AuditLogRepository)(nil)

// fieldChangeDoc is the embedded shape of a single field diff.
type fieldChangeDoc struct {
	FieldName string `bson:"fieldName"`
	OldValue  string `bson:"oldValue"`
	NewValue  string `bson:"newValue"`
}

// auditLogDoc is the persisted shape of an audit record. FieldChange is
// absent for creations and deletions.
type auditLogDoc struct {
	ID          string          `bson:"_id"`
	CreatedAt   time.Time       `bson:"createdAt"`
	UserID      string          `bson:"userId"`
	UserName    string          `bson:"userName"`
	EntityID    string          `bson:"entityId"`
	EntityType  string          `bson:"entityType"`
	EntityName  string          `bson:"entityName"`
	ActionType  string          `bson:"actionType"`
	FieldChange *fieldChangeDoc `bson:"fieldChange,omitempty"`
}

func toAuditLogDoc(log audit.AuditLog) auditLogDoc {
	doc := auditLogDoc{
		ID:         log.ID.String(),
		CreatedAt:  log.CreatedAt,
		UserID:     log.UserID.String(),
		UserName:   log.UserName,
		EntityID:   log.EntityID.String(),
		EntityType: string(log.EntityType),
		EntityName: log.EntityName,
		ActionType: string(log.ActionType),
	}
	if log.FieldChange != nil {
		doc.FieldChange = &fieldChangeDoc{
			FieldName: log.FieldChange.FieldName,
			OldValue:  log.FieldChange.OldValue,
			NewValue:  log.FieldChange.NewValue,
		}
	}
	return doc
}

func (d auditLogDoc) toDomain() (audit.AuditLog, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return audit.AuditLog{}, fmt.Errorf("parsing audit log id %q: %w", d.ID, err)
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return audit.AuditLog{}, fmt.Errorf("parsing audit log user id %q: %w", d.UserID, err)
	}
	entityID, err := uuid.Parse(d.EntityID)
	if err != nil {
		return audit.AuditLog{}, fmt.Errorf("parsing audit log entity id %q: %w", d.EntityID, err)
	}

	log := audit.AuditLog{
		ID:         id,
		CreatedAt:  d.CreatedAt,
		UserID:     userID,
		UserName:   d.UserName,
		EntityID:   entityID,
		EntityType: audit.EntityType(d.EntityType),
		EntityName: d.EntityName,
		ActionType: audit.ActionType(d.ActionType),
	}
	if d.FieldChange != nil {
		log.FieldChange = &audit.FieldChange{
			FieldName: d.FieldChange.FieldName,
			OldValue:  d.FieldChange.OldValue,
			NewValue:  d.FieldChange.NewValue,
		}
	}
	return log, nil
}

// AuditLogRepository implements ports.AuditLogRepository on the audit_logs
// collection. The collection is append-only; there is no update or delete.
type AuditLogRepository struct {
	store *Store
}

// NewAuditLogRepository creates an AuditLogRepository.
func NewAuditLogRepository(store *Store) *AuditLogRepository {
	return &AuditLogRepository{store: store}
}

func (r *AuditLogRepository) coll() *mongo.Collection {
	return r.store.db.Collection(collAuditLogs)
}

// Create persists a new audit record and returns it.
func (r *AuditLogRepository) Create(ctx context.Context, log audit.AuditLog) (audit.AuditLog, error) {
	_, err := execute(ctx, r.store.guard, collAuditLogs, func(ctx context.Context) (any, error) {
		return r.coll().InsertOne(ctx, toAuditLogDoc(log))
	})
	if err != nil {
		return audit.AuditLog{}, fmt.Errorf("inserting audit log: %w", err)
	}
	return log, nil
}

// GetEntityLogs returns all records for one entity, newest first.
func (r *AuditLogRepository) GetEntityLogs(ctx context.Context, entityID uuid.UUID, entityType audit.EntityType) ([]audit.AuditLog, error) {
	filter := bson.M{
		"entityId":   entityID.String(),
		"entityType": string(entityType),
	}
	docs, err := execute(ctx, r.store.guard, collAuditLogs, func(ctx context.Context) ([]auditLogDoc, error) {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := r.coll().Find(ctx, filter, opts)
		if err != nil {
			return nil, err
		}
		var ds []auditLogDoc
		if err := cursor.All(ctx, &ds); err != nil {
			return nil, err
		}
		return ds, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing audit logs: %w", err)
	}

	logs := make([]audit.AuditLog, 0, len(docs))
	for _, d := range docs {
		log, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, nil
}
