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

// ProjectRepository handles project data access
type ProjectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{coll: db.Database.Collection(collProjects)}
}

// Create inserts a new project
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Get retrieves a project by id
func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

// List retrieves a page of projects matching the filter
func (r *ProjectRepository) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, int64, error) {
	query := bson.M{}
	if filter.LookingForTeammates {
		query["looking_for_teammates"] = true
	}
	if len(filter.TechStack) > 0 {
		query["tech_stack"] = bson.M{"$in": filter.TechStack}
	}
	if filter.OwnerID != "" {
		query["owner"] = filter.OwnerID
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"tech_stack": regex},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []domain.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, fmt.Errorf("failed to decode projects: %w", err)
	}

	return projects, total, nil
}

// Replace writes the whole project document back, conditional on the
// revision it was loaded at. Team membership and collaboration requests are
// mutated through this path so a workflow precondition is checked and
// written atomically: the loser of a race fails with ErrConflict, reloads,
// and re-evaluates. On success the in-memory project carries the new
// revision.
func (r *ProjectRepository) Replace(ctx context.Context, p *domain.Project) error {
	next := *p
	next.Revision = p.Revision + 1
	next.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID, "revision": p.Revision}, &next)
	if err != nil {
		return fmt.Errorf("failed to replace project: %w", err)
	}
	if res.MatchedCount == 0 {
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": p.ID}, options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("failed to check existence: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}

	*p = next
	return nil
}

// Update applies a partial metadata update
func (r *ProjectRepository) Update(ctx context.Context, id string, input *domain.ProjectUpdateInput) (*domain.Project, error) {
	set := bson.M{"updated_at": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.TechStack != nil {
		set["tech_stack"] = input.TechStack
	}
	if input.GithubLink != nil {
		set["github_link"] = *input.GithubLink
	}
	if input.DemoLink != nil {
		set["demo_link"] = *input.DemoLink
	}
	if input.Images != nil {
		set["images"] = input.Images
	}
	if input.LookingForTeammates != nil {
		set["looking_for_teammates"] = *input.LookingForTeammates
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}

	var p domain.Project
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set, "$inc": bson.M{"revision": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &p, nil
}

// Delete removes a project
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
