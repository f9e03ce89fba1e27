package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campuslink/backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DiscussionRepository handles discussion data access
type DiscussionRepository struct {
	coll *mongo.Collection
}

// NewDiscussionRepository creates a new discussion repository
func NewDiscussionRepository(db *DB) *DiscussionRepository {
	return &DiscussionRepository{coll: db.Database.Collection(collDiscussions)}
}

// Create inserts a new discussion
func (r *DiscussionRepository) Create(ctx context.Context, d *domain.Discussion) error {
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("failed to create discussion: %w", err)
	}
	return nil
}

// Get retrieves a discussion by id
func (r *DiscussionRepository) Get(ctx context.Context, id string) (*domain.Discussion, error) {
	var d domain.Discussion
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get discussion: %w", err)
	}
	return &d, nil
}

// GetAndCountView retrieves a discussion and bumps its view counter in the
// same server-side operation.
func (r *DiscussionRepository) GetAndCountView(ctx context.Context, id string) (*domain.Discussion, error) {
	var d domain.Discussion
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"view_count": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get discussion: %w", err)
	}
	return &d, nil
}

// List retrieves a page of discussions matching the filter, pinned first.
func (r *DiscussionRepository) List(ctx context.Context, filter domain.DiscussionFilter) ([]domain.Discussion, int64, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"content": regex},
			bson.M{"tags": regex},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count discussions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "is_pinned", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list discussions: %w", err)
	}
	defer cursor.Close(ctx)

	var discussions []domain.Discussion
	if err := cursor.All(ctx, &discussions); err != nil {
		return nil, 0, fmt.Errorf("failed to decode discussions: %w", err)
	}

	return discussions, total, nil
}

// Update applies a partial metadata update. The revision is bumped so
// concurrent structural mutations notice the change.
func (r *DiscussionRepository) Update(ctx context.Context, id string, input *domain.DiscussionUpdate) (*domain.Discussion, error) {
	set := bson.M{"updated_at": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}

	var d domain.Discussion
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set, "$inc": bson.M{"revision": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update discussion: %w", err)
	}
	return &d, nil
}

// Delete removes a discussion
func (r *DiscussionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete discussion: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
