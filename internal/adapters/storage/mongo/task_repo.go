package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/task"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskRepository = (*TaskRepository)(nil)

// taskDoc is the persisted shape of a task. StateName and the addedBy pair
// are denormalized copies written by the service layer.
type taskDoc struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	ProjectID   string `bson:"projectId"`
	StateID     string `bson:"stateId"`
	StateName   string `bson:"stateName"`
	AddedByID   string `bson:"addedById"`
	AddedByName string `bson:"addedByName"`
}

func toTaskDoc(t task.Task) taskDoc {
	return taskDoc{
		ID:          t.ID.String(),
		Name:        t.Name,
		ProjectID:   t.ProjectID.String(),
		StateID:     t.StateID.String(),
		StateName:   t.StateName,
		AddedByID:   t.AddedByID.String(),
		AddedByName: t.AddedByName,
	}
}

func (d taskDoc) toDomain() (task.Task, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return task.Task{}, fmt.Errorf("parsing task id %q: %w", d.ID, err)
	}
	projectID, err := uuid.Parse(d.ProjectID)
	if err != nil {
		return task.Task{}, fmt.Errorf("parsing task project id %q: %w", d.ProjectID, err)
	}
	stateID, err := uuid.Parse(d.StateID)
	if err != nil {
		return task.Task{}, fmt.Errorf("parsing task state id %q: %w", d.StateID, err)
	}
	addedByID, err := uuid.Parse(d.AddedByID)
	if err != nil {
		return task.Task{}, fmt.Errorf("parsing task author id %q: %w", d.AddedByID, err)
	}
	return task.Task{
		ID:          id,
		Name:        d.Name,
		ProjectID:   projectID,
		StateID:     stateID,
		StateName:   d.StateName,
		AddedByID:   addedByID,
		AddedByName: d.AddedByName,
	}, nil
}

// TaskRepository implements ports.TaskRepository on the tasks collection.
type TaskRepository struct {
	store *Store
}

// NewTaskRepository creates a TaskRepository.
func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) coll() *mongo.Collection {
	return r.store.db.Collection(collTasks)
}

// Create persists a new task and returns it.
func (r *TaskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	_, err := execute(ctx, r.store.guard, collTasks, func(ctx context.Context) (any, error) {
		return r.coll().InsertOne(ctx, toTaskDoc(t))
	})
	if err != nil {
		return task.Task{}, fmt.Errorf("inserting task: %w", err)
	}
	return t, nil
}

// Update overwrites an existing task and returns it.
func (r *TaskRepository) Update(ctx context.Context, t task.Task) (task.Task, error) {
	res, err := execute(ctx, r.store.guard, collTasks, func(ctx context.Context) (*mongo.UpdateResult, error) {
		return r.coll().ReplaceOne(ctx, bson.M{"_id": t.ID.String()}, toTaskDoc(t))
	})
	if err != nil {
		return task.Task{}, fmt.Errorf("replacing task: %w", err)
	}
	if res.MatchedCount == 0 {
		return task.Task{}, domain.ErrTaskNotFound
	}
	return t, nil
}

// Delete removes a task by ID.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := execute(ctx, r.store.guard, collTasks, func(ctx context.Context) (any, error) {
		return r.coll().DeleteOne(ctx, bson.M{"_id": id.String()})
	})
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// GetByID returns a single task.
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (task.Task, error) {
	doc, err := execute(ctx, r.store.guard, collTasks, func(ctx context.Context) (taskDoc, error) {
		var d taskDoc
		err := r.coll().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&d)
		return d, err
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return task.Task{}, domain.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("fetching task: %w", err)
	}
	return doc.toDomain()
}

// GetAll returns every task.
func (r *TaskRepository) GetAll(ctx context.Context) ([]task.Task, error) {
	return r.find(ctx, bson.M{})
}

// GetByProject returns the tasks belonging to a project.
func (r *TaskRepository) GetByProject(ctx context.Context, projectID uuid.UUID) ([]task.Task, error) {
	return r.find(ctx, bson.M{"projectId": projectID.String()})
}

// GetByState returns the tasks currently referencing a state.
func (r *TaskRepository) GetByState(ctx context.Context, stateID uuid.UUID) ([]task.Task, error) {
	return r.find(ctx, bson.M{"stateId": stateID.String()})
}

func (r *TaskRepository) find(ctx context.Context, filter bson.M) ([]task.Task, error) {
	docs, err := execute(ctx, r.store.guard, collTasks, func(ctx context.Context) ([]taskDoc, error) {
		cursor, err := r.coll().Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		var ds []taskDoc
		if err := cursor.All(ctx, &ds); err != nil {
			return nil, err
		}
		return ds, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	tasks := make([]task.Task, 0, len(docs))
	for _, d := range docs {
		t, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
