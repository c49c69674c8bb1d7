package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time interface check.
var _ ports.ProjectStateRepository = (*ProjectStateRepository)(nil)

// projectStateDoc is the persisted shape of a workflow state. CreatedAt is
// stamped on insert and only exists to give GetByProject a stable creation
// order; it is not part of the domain entity.
type projectStateDoc struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	ProjectID string    `bson:"projectId"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d projectStateDoc) toDomain() (project.ProjectState, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return project.ProjectState{}, fmt.Errorf("parsing state id %q: %w", d.ID, err)
	}
	projectID, err := uuid.Parse(d.ProjectID)
	if err != nil {
		return project.ProjectState{}, fmt.Errorf("parsing state project id %q: %w", d.ProjectID, err)
	}
	return project.ProjectState{ID: id, Title: d.Title, ProjectID: projectID}, nil
}

// ProjectStateRepository implements ports.ProjectStateRepository on the
// project_states collection.
type ProjectStateRepository struct {
	store *Store
}

// NewProjectStateRepository creates a ProjectStateRepository.
func NewProjectStateRepository(store *Store) *ProjectStateRepository {
	return &ProjectStateRepository{store: store}
}

func (r *ProjectStateRepository) coll() *mongo.Collection {
	return r.store.db.Collection(collProjectStates)
}

// Create persists a new state and returns it.
func (r *ProjectStateRepository) Create(ctx context.Context, s project.ProjectState) (project.ProjectState, error) {
	doc := projectStateDoc{
		ID:        s.ID.String(),
		Title:     s.Title,
		ProjectID: s.ProjectID.String(),
		CreatedAt: r.store.now().UTC(),
	}
	_, err := execute(ctx, r.store.guard, collProjectStates, func(ctx context.Context) (any, error) {
		return r.coll().InsertOne(ctx, doc)
	})
	if err != nil {
		return project.ProjectState{}, fmt.Errorf("inserting project state: %w", err)
	}
	return s, nil
}

// Update overwrites an existing state and returns it. The original CreatedAt
// is kept so a rename does not reorder the project's state list.
func (r *ProjectStateRepository) Update(ctx context.Context, s project.ProjectState) (project.ProjectState, error) {
	update := bson.M{"$set": bson.M{
		"title":     s.Title,
		"projectId": s.ProjectID.String(),
	}}
	res, err := execute(ctx, r.store.guard, collProjectStates, func(ctx context.Context) (*mongo.UpdateResult, error) {
		return r.coll().UpdateOne(ctx, bson.M{"_id": s.ID.String()}, update)
	})
	if err != nil {
		return project.ProjectState{}, fmt.Errorf("updating project state: %w", err)
	}
	if res.MatchedCount == 0 {
		return project.ProjectState{}, domain.ErrProjectStateNotFound
	}
	return s, nil
}

// Delete removes a state by ID.
func (r *ProjectStateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := execute(ctx, r.store.guard, collProjectStates, func(ctx context.Context) (any, error) {
		return r.coll().DeleteOne(ctx, bson.M{"_id": id.String()})
	})
	if err != nil {
		return fmt.Errorf("deleting project state: %w", err)
	}
	return nil
}

// GetByID returns a single state.
func (r *ProjectStateRepository) GetByID(ctx context.Context, id uuid.UUID) (project.ProjectState, error) {
	doc, err := execute(ctx, r.store.guard, collProjectStates, func(ctx context.Context) (projectStateDoc, error) {
		var d projectStateDoc
		err := r.coll().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&d)
		return d, err
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return project.ProjectState{}, domain.ErrProjectStateNotFound
		}
		return project.ProjectState{}, fmt.Errorf("fetching project state: %w", err)
	}
	return doc.toDomain()
}

// GetByProject returns the project's states in creation order.
func (r *ProjectStateRepository) GetByProject(ctx context.Context, projectID uuid.UUID) ([]project.ProjectState, error) {
	docs, err := execute(ctx, r.store.guard, collProjectStates, func(ctx context.Context) ([]projectStateDoc, error) {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
		cursor, err := r.coll().Find(ctx, bson.M{"projectId": projectID.String()}, opts)
		if err != nil {
			return nil, err
		}
		var ds []projectStateDoc
		if err := cursor.All(ctx, &ds); err != nil {
			return nil, err
		}
		return ds, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing project states: %w", err)
	}

	states := make([]project.ProjectState, 0, len(docs))
	for _, d := range docs {
		s, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, nil
}
