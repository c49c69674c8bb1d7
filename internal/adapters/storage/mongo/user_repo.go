package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/user"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time interface check.
var _ ports.UserRepository = (*UserRepository)(nil)

// userDoc is the persisted shape of a user account.
type userDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Role         string    `bson:"role"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
}

func toUserDoc(u user.User) userDoc {
	return userDoc{
		ID:           u.ID.String(),
		Username:     u.Username,
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (d userDoc) toDomain() (user.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return user.User{}, fmt.Errorf("parsing user id %q: %w", d.ID, err)
	}
	return user.User{
		ID:           id,
		Username:     d.Username,
		Role:         user.Role(d.Role),
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}, nil
}

// UserRepository implements ports.UserRepository on the users collection.
// The unique username index turns concurrent duplicate registrations into
// domain.ErrUsernameTaken.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) coll() *mongo.Collection {
	return r.store.db.Collection(collUsers)
}

// Create persists a new user and returns it.
func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	_, err := execute(ctx, r.store.guard, collUsers, func(ctx context.Context) (any, error) {
		return r.coll().InsertOne(ctx, toUserDoc(u))
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, domain.ErrUsernameTaken
		}
		return user.User{}, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

// GetByUsername returns the user with the given username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	doc, err := execute(ctx, r.store.guard, collUsers, func(ctx context.Context) (userDoc, error) {
		var d userDoc
		err := r.coll().FindOne(ctx, bson.M{"username": username}).Decode(&d)
		return d, err
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, domain.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return doc.toDomain()
}

// GetAll returns every user.
func (r *UserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	docs, err := execute(ctx, r.store.guard, collUsers, func(ctx context.Context) ([]userDoc, error) {
		cursor, err := r.coll().Find(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		var ds []userDoc
		if err := cursor.All(ctx, &ds); err != nil {
			return nil, err
		}
		return ds, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	users := make([]user.User, 0, len(docs))
	for _, d := range docs {
		u, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
