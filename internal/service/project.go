package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslink/backend/internal/domain"
	"github.com/google/uuid"
)

// ProjectService handles project CRUD and detail assembly.
type ProjectService struct {
	repo  ProjectRepository
	users UserStore
}

// NewProjectService creates a new project service
func NewProjectService(repo ProjectRepository, users UserStore) *ProjectService {
	return &ProjectService{repo: repo, users: users}
}

// Create posts a new project. The creator becomes the sole Owner team member.
func (s *ProjectService) Create(ctx context.Context, ownerID string, input *domain.ProjectCreate) (*domain.Project, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &domain.Project{
		ID:                  uuid.NewString(),
		Title:               input.Title,
		Description:         input.Description,
		TechStack:           input.TechStack,
		GithubLink:          input.GithubLink,
		DemoLink:            input.DemoLink,
		Images:              input.Images,
		LookingForTeammates: input.LookingForTeammates,
		OwnerID:             ownerID,
		TeamMembers: []domain.TeamMember{
			{UserID: ownerID, Role: domain.RoleOwner, JoinedAt: now},
		},
		Likes:                 []domain.Like{},
		Comments:              []domain.Comment{},
		CollaborationRequests: []domain.CollaborationRequest{},
		Tags:                  input.Tags,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get retrieves a project with owner, team, and comment authors resolved.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.ProjectDetail, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, p), nil
}

// List retrieves a page of projects matching the filter.
func (s *ProjectService) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, domain.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit, 10)

	projects, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return projects, domain.NewPagination(filter.Page, filter.Limit, total), nil
}

// Update applies a partial edit. The owner and team members may edit
// project metadata.
func (s *ProjectService) Update(ctx context.Context, id, actorID string, input *domain.ProjectUpdateInput) (*domain.Project, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsOwner(actorID) && !p.IsMember(actorID) {
		return nil, fmt.Errorf("%w: only team members can edit a project", domain.ErrForbidden)
	}

	return s.repo.Update(ctx, id, input)
}

// Delete removes a project. Only the owner may delete.
func (s *ProjectService) Delete(ctx context.Context, id, actorID string) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsOwner(actorID) {
		return fmt.Errorf("%w: only the owner can delete a project", domain.ErrForbidden)
	}

	return s.repo.Delete(ctx, id)
}

func (s *ProjectService) buildDetail(ctx context.Context, p *domain.Project) *domain.ProjectDetail {
	ids := []string{p.OwnerID}
	for _, m := range p.TeamMembers {
		ids = append(ids, m.UserID)
	}
	ids = append(ids, domain.CollectAuthorIDs(p.Comments)...)
	refs := resolveAuthors(ctx, s.users, ids)

	team := make([]domain.TeamMemberView, len(p.TeamMembers))
	for i, m := range p.TeamMembers {
		team[i] = domain.TeamMemberView{
			User:     refs(m.UserID),
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
	}

	return &domain.ProjectDetail{
		Project:      *p,
		Owner:        refs(p.OwnerID),
		Team:         team,
		CommentViews: domain.BuildCommentViews(p.Comments, refs),
		LikeCount:    len(p.Likes),
		CommentCount: domain.CountComments(p.Comments),
	}
}
