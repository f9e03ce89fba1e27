package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslink/backend/internal/domain"
	"github.com/google/uuid"
)

// ProjectUpdateService handles progress posts attached to projects.
type ProjectUpdateService struct {
	repo     ProjectUpdateRepository
	projects ProjectStore
}

// NewProjectUpdateService creates a new project update service
func NewProjectUpdateService(repo ProjectUpdateRepository, projects ProjectStore) *ProjectUpdateService {
	return &ProjectUpdateService{repo: repo, projects: projects}
}

// Create posts a new update on a project. Only the owner and team members
// may post.
func (s *ProjectUpdateService) Create(ctx context.Context, projectID, authorID string, input *domain.ProjectUpdateCreate) (*domain.ProjectUpdate, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.IsOwner(authorID) && !p.IsMember(authorID) {
		return nil, fmt.Errorf("%w: only team members can post updates", domain.ErrForbidden)
	}

	utype := input.Type
	if utype == "" {
		utype = domain.UpdateStatus
	}

	now := time.Now()
	u := &domain.ProjectUpdate{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		AuthorID:  authorID,
		Title:     input.Title,
		Content:   input.Content,
		Type:      utype,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Get retrieves a single update
func (s *ProjectUpdateService) Get(ctx context.Context, id string) (*domain.ProjectUpdate, error) {
	return s.repo.Get(ctx, id)
}

// ListByProject retrieves a page of a project's updates, pinned first.
func (s *ProjectUpdateService) ListByProject(ctx context.Context, projectID string, page, limit int) ([]domain.ProjectUpdate, domain.Pagination, error) {
	page, limit = normalizePage(page, limit, 10)

	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, domain.Pagination{}, err
	}

	updates, total, err := s.repo.ListByProject(ctx, projectID, page, limit)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return updates, domain.NewPagination(page, limit, total), nil
}

// Delete removes an update. The author and the project owner may delete.
func (s *ProjectUpdateService) Delete(ctx context.Context, id, actorID string) error {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if u.AuthorID != actorID {
		p, err := s.projects.Get(ctx, u.ProjectID)
		if err != nil {
			return err
		}
		if !p.IsOwner(actorID) {
			return fmt.Errorf("%w: only the author or project owner can delete an update", domain.ErrForbidden)
		}
	}

	return s.repo.Delete(ctx, id)
}
