// Package task defines the Task entity and its field-level diffing.
//
// Task.StateName is a cached copy of the owning state's title, kept in sync
// by the state orchestration layer (not by the state itself). Its staleness
// window is the duration of a state rename cascade: between the state write
// and the last task rewrite, tasks may still carry the old title.
package task

import (
	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain/audit"
)

// Task is a unit of work belonging to a project, positioned in exactly one
// of the project's states.
type Task struct {
	ID          uuid.UUID
	Name        string
	ProjectID   uuid.UUID
	StateID     uuid.UUID
	StateName   string
	AddedByID   uuid.UUID
	AddedByName string
}

// Equal reports whether two tasks are field-for-field identical.
func (t Task) Equal(other Task) bool {
	return t == other
}

// DetectChanges compares two versions of the same task and yields one
// FieldChange per differing field, in a stable field order: name, projectId,
// stateId, stateName, addedById, addedByName. Unchanged fields are not
// emitted.
func DetectChanges(original, updated Task) []audit.FieldChange {
	type field struct {
		name   string
		before string
		after  string
	}

	fields := []field{
		{audit.FieldName, original.Name, updated.Name},
		{audit.FieldProjectID, original.ProjectID.String(), updated.ProjectID.String()},
		{audit.FieldStateID, original.StateID.String(), updated.StateID.String()},
		{audit.FieldStateName, original.StateName, updated.StateName},
		{audit.FieldAddedByID, original.AddedByID.String(), updated.AddedByID.String()},
		{audit.FieldAddedBy, original.AddedByName, updated.AddedByName},
	}

	var changes []audit.FieldChange
	for _, f := range fields {
		if f.before != f.after {
			changes = append(changes, audit.FieldChange{
				FieldName: f.name,
				OldValue:  f.before,
				NewValue:  f.after,
			})
		}
	}
	return changes
}
