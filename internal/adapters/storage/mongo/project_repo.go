package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/project"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time interface check.
var _ ports.ProjectRepository = (*ProjectRepository)(nil)

// projectDoc is the persisted shape of a project.
type projectDoc struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

func toProjectDoc(p project.Project) projectDoc {
	return projectDoc{ID: p.ID.String(), Name: p.Name}
}

func (d projectDoc) toDomain() (project.Project, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return project.Project{}, fmt.Errorf("parsing project id %q: %w", d.ID, err)
	}
	return project.Project{ID: id, Name: d.Name}, nil
}

// ProjectRepository implements ports.ProjectRepository on the projects
// collection.
type ProjectRepository struct {
	store *Store
}

// NewProjectRepository creates a ProjectRepository.
func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

func (r *ProjectRepository) coll() *mongo.Collection {
	return r.store.db.Collection(collProjects)
}

// Create persists a new project and returns it.
func (r *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	_, err := execute(ctx, r.store.guard, collProjects, func(ctx context.Context) (any, error) {
		return r.coll().InsertOne(ctx, toProjectDoc(p))
	})
	if err != nil {
		return project.Project{}, fmt.Errorf("inserting project: %w", err)
	}
	return p, nil
}

// Update overwrites an existing project and returns it.
func (r *ProjectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	res, err := execute(ctx, r.store.guard, collProjects, func(ctx context.Context) (*mongo.UpdateResult, error) {
		return r.coll().ReplaceOne(ctx, bson.M{"_id": p.ID.String()}, toProjectDoc(p))
	})
	if err != nil {
		return project.Project{}, fmt.Errorf("replacing project: %w", err)
	}
	if res.MatchedCount == 0 {
		return project.Project{}, domain.ErrProjectNotFound
	}
	return p, nil
}

// Delete removes a project by ID.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := execute(ctx, r.store.guard, collProjects, func(ctx context.Context) (any, error) {
		return r.coll().DeleteOne(ctx, bson.M{"_id": id.String()})
	})
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// GetByID returns a single project.
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	doc, err := execute(ctx, r.store.guard, collProjects, func(ctx context.Context) (projectDoc, error) {
		var d projectDoc
		err := r.coll().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&d)
		return d, err
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return project.Project{}, domain.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("fetching project: %w", err)
	}
	return doc.toDomain()
}

// GetAll returns every project.
func (r *ProjectRepository) GetAll(ctx context.Context) ([]project.Project, error) {
	docs, err := execute(ctx, r.store.guard, collProjects, func(ctx context.Context) ([]projectDoc, error) {
		cursor, err := r.coll().Find(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		var ds []projectDoc
		if err := cursor.All(ctx, &ds); err != nil {
			return nil, err
		}
		return ds, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	projects := make([]project.Project, 0, len(docs))
	for _, d := range docs {
		p, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
