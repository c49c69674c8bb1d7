// Package project defines the Project and ProjectState entities along with
// the state-list rendering used by audit diffs. A project always owns at
// least the three default states seeded at creation time.
package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain/audit"
)

// Default state titles seeded for every new project, in creation order.
// Seeding exactly these three states is an invariant, not an option.
const (
	DefaultStateToDo       = "To Do"
	DefaultStateInProgress = "In Progress"
	DefaultStateDone       = "Done"
)

// DefaultStateTitles returns the default state titles in creation order.
func DefaultStateTitles() []string {
	return []string{DefaultStateToDo, DefaultStateInProgress, DefaultStateDone}
}

// Project is a named container of workflow states and, transitively, tasks.
type Project struct {
	ID   uuid.UUID
	Name string
}

// DetectChanges compares two versions of the same project and yields one
// FieldChange per differing field. Unchanged fields are not emitted.
func DetectChanges(original, updated Project) []audit.FieldChange {
	var changes []audit.FieldChange
	if original.Name != updated.Name {
		changes = append(changes, audit.FieldChange{
			FieldName: audit.FieldName,
			OldValue:  original.Name,
			NewValue:  updated.Name,
		})
	}
	return changes
}

// ProjectState is one workflow column of a project. ProjectID is immutable
// after creation. Tasks reference a state by ID and carry a denormalized
// copy of its title.
type ProjectState struct {
	ID        uuid.UUID
	Title     string
	ProjectID uuid.UUID
}

// RenderStateTitles renders a state list for audit diffs: titles joined by
// ", " in slice order. State-cascade operations diff this rendering as a
// whole rather than per element.
func RenderStateTitles(states []ProjectState) string {
	titles := make([]string, len(states))
	for i, s := range states {
		titles[i] = s.Title
	}
	return strings.Join(titles, ", ")
}

// WithRenamedState returns a copy of the state list with the title of the
// state identified by stateID replaced. The input slice is not modified.
func WithRenamedState(states []ProjectState, stateID uuid.UUID, title string) []ProjectState {
	out := make([]ProjectState, len(states))
	copy(out, states)
	for i := range out {
		if out[i].ID == stateID {
			out[i].Title = title
		}
	}
	return out
}

// WithoutState returns a copy of the state list with the state identified
// by stateID removed. The input slice is not modified.
func WithoutState(states []ProjectState, stateID uuid.UUID) []ProjectState {
	out := make([]ProjectState, 0, len(states))
	for _, s := range states {
		if s.ID != stateID {
			out = append(out, s)
		}
	}
	return out
}
