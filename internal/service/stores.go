package service

import (
	"context"
	"fmt"

	"github.com/campuslink/backend/internal/domain"
)

// EngagementStore is the per-collection persistence surface the engagement
// and comment services need: an atomic like-membership toggle plus
// whole-tree load/save guarded by a revision.
type EngagementStore interface {
	ToggleLike(ctx context.Context, entityID, userID string) (*domain.LikeResult, error)
	Comments(ctx context.Context, entityID string) (*domain.CommentThread, error)
	SaveComments(ctx context.Context, thread *domain.CommentThread) error
}

// storeRegistry maps engageable entity kinds to their stores.
type storeRegistry map[domain.EntityKind]EngagementStore

func newStoreRegistry(discussions, projects, updates EngagementStore) storeRegistry {
	return storeRegistry{
		domain.KindDiscussion:    discussions,
		domain.KindProject:       projects,
		domain.KindProjectUpdate: updates,
	}
}

func (r storeRegistry) store(kind domain.EntityKind) (EngagementStore, error) {
	s, ok := r[kind]
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	return s, nil
}

// ProjectStore is the project persistence surface the collaboration
// workflow needs: load by id and a revision-guarded whole-document write.
type ProjectStore interface {
	Get(ctx context.Context, id string) (*domain.Project, error)
	Replace(ctx context.Context, p *domain.Project) error
}

// ProjectRepository is the full project persistence surface behind the
// project CRUD service.
type ProjectRepository interface {
	ProjectStore
	Create(ctx context.Context, p *domain.Project) error
	List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, int64, error)
	Update(ctx context.Context, id string, input *domain.ProjectUpdateInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// DiscussionRepository is the discussion persistence surface.
type DiscussionRepository interface {
	Create(ctx context.Context, d *domain.Discussion) error
	Get(ctx context.Context, id string) (*domain.Discussion, error)
	GetAndCountView(ctx context.Context, id string) (*domain.Discussion, error)
	List(ctx context.Context, filter domain.DiscussionFilter) ([]domain.Discussion, int64, error)
	Update(ctx context.Context, id string, input *domain.DiscussionUpdate) (*domain.Discussion, error)
	Delete(ctx context.Context, id string) error
}

// ProjectUpdateRepository is the project update persistence surface.
type ProjectUpdateRepository interface {
	Create(ctx context.Context, u *domain.ProjectUpdate) error
	Get(ctx context.Context, id string) (*domain.ProjectUpdate, error)
	ListByProject(ctx context.Context, projectID string, page, limit int) ([]domain.ProjectUpdate, int64, error)
	Delete(ctx context.Context, id string) error
}

// UserStore resolves account records for author decoration and auth.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetMany(ctx context.Context, ids []string) ([]domain.User, error)
}

// NotificationStore persists and queries notification records.
type NotificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, recipientID string, filter domain.NotificationFilter) ([]domain.Notification, int64, error)
	MarkRead(ctx context.Context, id, recipientID string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
}

// UnreadCounter caches per-user unread notification counts.
type UnreadCounter interface {
	Get(ctx context.Context, userID string) (int64, bool, error)
	Set(ctx context.Context, userID string, count int64) error
	Invalidate(ctx context.Context, userID string) error
}

// Notifier is the side channel the collaboration workflow emits on.
type Notifier interface {
	Emit(ctx context.Context, recipientID, senderID, ntype, title, message, relatedProjectID string) *domain.Notification
}

// conflictRetries bounds the load-mutate-write cycles retried after a
// revision conflict before the conflict is surfaced.
const conflictRetries = 3
