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

// EngagementStore mutates the like set and comment tree embedded in one
// collection's documents. The same store type serves discussions, projects
// and project updates, which share the engagement shape.
type EngagementStore struct {
	coll *mongo.Collection
}

// NewDiscussionEngagement returns the engagement store over discussions.
func NewDiscussionEngagement(db *DB) *EngagementStore {
	return &EngagementStore{coll: db.Database.Collection(collDiscussions)}
}

// NewProjectEngagement returns the engagement store over projects.
func NewProjectEngagement(db *DB) *EngagementStore {
	return &EngagementStore{coll: db.Database.Collection(collProjects)}
}

// NewProjectUpdateEngagement returns the engagement store over project updates.
func NewProjectUpdateEngagement(db *DB) *EngagementStore {
	return &EngagementStore{coll: db.Database.Collection(collProjectUpdates)}
}

// ToggleLike flips like membership for (entityID, userID) using two
// conditional updates. Each update is atomic on the server, so two users
// toggling concurrently can never overwrite each other's entry; the filter
// keys the mutation to the pair, never to the whole array state.
func (s *EngagementStore) ToggleLike(ctx context.Context, entityID, userID string) (*domain.LikeResult, error) {
	now := time.Now()

	// Insert-if-absent: matches only when the entity exists and the user is
	// not in the like set.
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": entityID, "likes.user": bson.M{"$ne": userID}},
		bson.M{
			"$push": bson.M{"likes": bson.M{"user": userID, "created_at": now}},
			"$set":  bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add like: %w", err)
	}

	liked := res.MatchedCount == 1
	if !liked {
		// Remove-if-present.
		res, err = s.coll.UpdateOne(ctx,
			bson.M{"_id": entityID, "likes.user": userID},
			bson.M{
				"$pull": bson.M{"likes": bson.M{"user": userID}},
				"$set":  bson.M{"updated_at": now},
			},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to remove like: %w", err)
		}
		if res.MatchedCount == 0 {
			// Either the entity is gone or a concurrent toggle removed the
			// like first; in the latter case the state is simply "not liked".
			if err := s.exists(ctx, entityID); err != nil {
				return nil, err
			}
		}
	}

	count, err := s.likeCount(ctx, entityID)
	if err != nil {
		return nil, err
	}

	return &domain.LikeResult{Liked: liked, LikeCount: count}, nil
}

// likeCount reads the size of the persisted like set.
func (s *EngagementStore) likeCount(ctx context.Context, entityID string) (int, error) {
	var doc struct {
		Likes []domain.Like `bson:"likes"`
	}

	err := s.coll.FindOne(ctx,
		bson.M{"_id": entityID},
		options.FindOne().SetProjection(bson.M{"likes": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to read likes: %w", err)
	}

	return len(doc.Likes), nil
}

// Comments loads the entity's comment tree together with the revision the
// caller must present when saving it back.
func (s *EngagementStore) Comments(ctx context.Context, entityID string) (*domain.CommentThread, error) {
	var doc struct {
		ID       string           `bson:"_id"`
		Comments []domain.Comment `bson:"comments"`
		Revision int64            `bson:"revision"`
	}

	err := s.coll.FindOne(ctx,
		bson.M{"_id": entityID},
		options.FindOne().SetProjection(bson.M{"comments": 1, "revision": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	return &domain.CommentThread{
		EntityID: doc.ID,
		Comments: doc.Comments,
		Revision: doc.Revision,
	}, nil
}

// SaveComments writes the whole tree back, but only if the document revision
// still matches the one the tree was loaded at. A moved revision surfaces as
// ErrConflict so the caller can reload and retry.
func (s *EngagementStore) SaveComments(ctx context.Context, thread *domain.CommentThread) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": thread.EntityID, "revision": thread.Revision},
		bson.M{
			"$set": bson.M{"comments": thread.Comments, "updated_at": time.Now()},
			"$inc": bson.M{"revision": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to save comments: %w", err)
	}
	if res.MatchedCount == 0 {
		if err := s.exists(ctx, thread.EntityID); err != nil {
			return err
		}
		return domain.ErrConflict
	}

	return nil
}

func (s *EngagementStore) exists(ctx context.Context, entityID string) error {
	n, err := s.coll.CountDocuments(ctx, bson.M{"_id": entityID}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
