package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslink/backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectUpdateRepository handles project update data access
type ProjectUpdateRepository struct {
	coll *mongo.Collection
}

// NewProjectUpdateRepository creates a new project update repository
func NewProjectUpdateRepository(db *DB) *ProjectUpdateRepository {
	return &ProjectUpdateRepository{coll: db.Database.Collection(collProjectUpdates)}
}

// Create inserts a new project update
func (r *ProjectUpdateRepository) Create(ctx context.Context, u *domain.ProjectUpdate) error {
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("failed to create project update: %w", err)
	}
	return nil
}

// Get retrieves a project update by id
func (r *ProjectUpdateRepository) Get(ctx context.Context, id string) (*domain.ProjectUpdate, error) {
	var u domain.ProjectUpdate
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project update: %w", err)
	}
	return &u, nil
}

// ListByProject retrieves a page of a project's updates, pinned first.
func (r *ProjectUpdateRepository) ListByProject(ctx context.Context, projectID string, page, limit int) ([]domain.ProjectUpdate, int64, error) {
	query := bson.M{"project": projectID}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count project updates: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "is_pinned", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list project updates: %w", err)
	}
	defer cursor.Close(ctx)

	var updates []domain.ProjectUpdate
	if err := cursor.All(ctx, &updates); err != nil {
		return nil, 0, fmt.Errorf("failed to decode project updates: %w", err)
	}

	return updates, total, nil
}

// Delete removes a project update
func (r *ProjectUpdateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project update: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
