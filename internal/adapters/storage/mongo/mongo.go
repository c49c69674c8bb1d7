// Package mongo implements the persistence ports on MongoDB. Each entity
// gets its own collection and repository; shared concerns (circuit breaker,
// per-query timeouts, error translation to domain errors) live in the Guard.
//
// Document IDs are the entities' UUIDs stored as strings, so the database
// never generates identity and repositories stay idempotent on retry.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	collProjects      = "projects"
	collProjectStates = "project_states"
	collTasks         = "tasks"
	collAuditLogs     = "audit_logs"
	collUsers         = "users"
)

// Store holds the shared MongoDB handles used by the entity repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	guard  *Guard
	logger *slog.Logger

	// Injectable for tests; defaults to time.Now.
	now func() time.Time
}

// Connect dials MongoDB, verifies the connection with a ping, and returns a
// Store ready to hand to the repository constructors.
func Connect(ctx context.Context, uri, database string, connectTimeout time.Duration, guard *Guard, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(database),
		guard:  guard,
		logger: logger,
		now:    time.Now,
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("creating indexes: %w", err)
	}

	return s, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureIndexes creates the indexes the repositories rely on. The unique
// username index is what turns a concurrent duplicate registration into
// domain.ErrUsernameTaken instead of a second account.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("username index: %w", err)
	}

	for coll, key := range map[string]string{
		collProjectStates: "projectId",
		collTasks:         "projectId",
		collAuditLogs:     "entityId",
	} {
		_, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: key, Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("%s.%s index: %w", coll, key, err)
		}
	}

	return nil
}
