package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslink/backend/internal/domain"
	"github.com/google/uuid"
)

// DiscussionService handles discussion CRUD and detail assembly.
type DiscussionService struct {
	repo  DiscussionRepository
	users UserStore
}

// NewDiscussionService creates a new discussion service
func NewDiscussionService(repo DiscussionRepository, users UserStore) *DiscussionService {
	return &DiscussionService{repo: repo, users: users}
}

// Create posts a new discussion.
func (s *DiscussionService) Create(ctx context.Context, authorID string, input *domain.DiscussionCreate) (*domain.Discussion, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = domain.CategoryGeneral
	}

	now := time.Now()
	d := &domain.Discussion{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  authorID,
		Tags:      input.Tags,
		Category:  category,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Get retrieves a discussion with authors resolved across the comment tree,
// counting the view.
func (s *DiscussionService) Get(ctx context.Context, id string) (*domain.DiscussionDetail, error) {
	d, err := s.repo.GetAndCountView(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, d), nil
}

// List retrieves a page of discussions matching the filter.
func (s *DiscussionService) List(ctx context.Context, filter domain.DiscussionFilter) ([]domain.Discussion, domain.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit, 10)

	discussions, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return discussions, domain.NewPagination(filter.Page, filter.Limit, total), nil
}

// Update applies a partial edit. Only the author may edit.
func (s *DiscussionService) Update(ctx context.Context, id, actorID string, input *domain.DiscussionUpdate) (*domain.Discussion, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.AuthorID != actorID {
		return nil, fmt.Errorf("%w: only the author can edit a discussion", domain.ErrForbidden)
	}

	return s.repo.Update(ctx, id, input)
}

// Delete removes a discussion. Only the author may delete.
func (s *DiscussionService) Delete(ctx context.Context, id, actorID string) error {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if d.AuthorID != actorID {
		return fmt.Errorf("%w: only the author can delete a discussion", domain.ErrForbidden)
	}

	return s.repo.Delete(ctx, id)
}

func (s *DiscussionService) buildDetail(ctx context.Context, d *domain.Discussion) *domain.DiscussionDetail {
	refs := resolveAuthors(ctx, s.users, append([]string{d.AuthorID}, domain.CollectAuthorIDs(d.Comments)...))

	return &domain.DiscussionDetail{
		Discussion:   *d,
		Author:       refs(d.AuthorID),
		CommentViews: domain.BuildCommentViews(d.Comments, refs),
		LikeCount:    len(d.Likes),
		CommentCount: domain.CountComments(d.Comments),
	}
}
