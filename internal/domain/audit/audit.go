// Package audit defines the append-only audit log entity. One AuditLog is
// written per logical change: creations and deletions carry no FieldChange,
// while a multi-field update produces one record per changed field. Records
// are never mutated or deleted after creation, and never retroactively
// altered when their subject is later renamed or removed.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// EntityType identifies the kind of entity an audit record describes.
type EntityType string

const (
	EntityProject EntityType = "PROJECT"
	EntityTask    EntityType = "TASK"
)

// IsValid returns true if the entity type is one of the defined constants.
func (e EntityType) IsValid() bool {
	return e == EntityProject || e == EntityTask
}

// ActionType identifies the kind of change an audit record describes.
type ActionType string

const (
	ActionCreate ActionType = "CREATE"
	ActionUpdate ActionType = "UPDATE"
	ActionDelete ActionType = "DELETE"
)

// Logical field names used in FieldChange records. FieldStates names the
// rendered list of a project's state titles, which is diffed as a whole
// rather than per element.
const (
	FieldName      = "name"
	FieldProjectID = "projectId"
	FieldStateID   = "stateId"
	FieldStateName = "stateName"
	FieldAddedByID = "addedById"
	FieldAddedBy   = "addedByName"
	FieldStates    = "states"
)

// FieldChange is a single (fieldName, oldValue, newValue) triple
// representing one observable change between two versions of an entity.
type FieldChange struct {
	FieldName string
	OldValue  string
	NewValue  string
}

// AuditLog is one immutable audit record. UserName and EntityName are
// denormalized at write time and never looked up again, so records stay
// accurate even after their subject is renamed or deleted.
type AuditLog struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UserID      uuid.UUID
	UserName    string
	EntityID    uuid.UUID
	EntityType  EntityType
	EntityName  string
	ActionType  ActionType
	FieldChange *FieldChange
}
