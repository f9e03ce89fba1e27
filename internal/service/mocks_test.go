package service

import (
	"context"

	"github.com/campuslink/backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockEngagementStore mocks the EngagementStore interface
type MockEngagementStore struct {
	mock.Mock
}

func (m *MockEngagementStore) ToggleLike(ctx context.Context, entityID, userID string) (*domain.LikeResult, error) {
	args := m.Called(ctx, entityID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LikeResult), args.Error(1)
}

func (m *MockEngagementStore) Comments(ctx context.Context, entityID string) (*domain.CommentThread, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentThread), args.Error(1)
}

func (m *MockEngagementStore) SaveComments(ctx context.Context, thread *domain.CommentThread) error {
	args := m.Called(ctx, thread)
	return args.Error(0)
}

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetMany(ctx context.Context, ids []string) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockNotificationStore mocks the NotificationStore interface
type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationStore) ListByRecipient(ctx context.Context, recipientID string, filter domain.NotificationFilter) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, recipientID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationStore) MarkRead(ctx context.Context, id, recipientID string) (*domain.Notification, error) {
	args := m.Called(ctx, id, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationStore) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationStore) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUnreadCounter mocks the UnreadCounter interface
type MockUnreadCounter struct {
	mock.Mock
}

func (m *MockUnreadCounter) Get(ctx context.Context, userID string) (int64, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockUnreadCounter) Set(ctx context.Context, userID string, count int64) error {
	args := m.Called(ctx, userID, count)
	return args.Error(0)
}

func (m *MockUnreadCounter) Invalidate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockNotifier mocks the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Emit(ctx context.Context, recipientID, senderID, ntype, title, message, relatedProjectID string) *domain.Notification {
	args := m.Called(ctx, recipientID, senderID, ntype, title, message, relatedProjectID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Notification)
}

// memProjectStore is an in-memory ProjectStore with the same revision-guard
// semantics as the Mongo repository. Get hands out an independent copy;
// Replace succeeds only when the presented revision matches the stored one.
type memProjectStore struct {
	stored *domain.Project
}

func newMemProjectStore(p *domain.Project) *memProjectStore {
	return &memProjectStore{stored: cloneProject(p)}
}

func (s *memProjectStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	if s.stored == nil || s.stored.ID != id {
		return nil, domain.ErrNotFound
	}
	return cloneProject(s.stored), nil
}

func (s *memProjectStore) Replace(ctx context.Context, p *domain.Project) error {
	if s.stored == nil || s.stored.ID != p.ID {
		return domain.ErrNotFound
	}
	if s.stored.Revision != p.Revision {
		return domain.ErrConflict
	}
	next := cloneProject(p)
	next.Revision++
	s.stored = next
	*p = *cloneProject(next)
	return nil
}

// conflictingProjectStore injects revision conflicts before delegating, as if
// a concurrent writer won the race n times.
type conflictingProjectStore struct {
	*memProjectStore
	conflicts int
}

func (s *conflictingProjectStore) Replace(ctx context.Context, p *domain.Project) error {
	if s.conflicts > 0 {
		s.conflicts--
		return domain.ErrConflict
	}
	return s.memProjectStore.Replace(ctx, p)
}

func cloneProject(p *domain.Project) *domain.Project {
	cp := *p
	cp.TeamMembers = append([]domain.TeamMember(nil), p.TeamMembers...)
	cp.CollaborationRequests = append([]domain.CollaborationRequest(nil), p.CollaborationRequests...)
	cp.Likes = append([]domain.Like(nil), p.Likes...)
	cp.Comments = append([]domain.Comment(nil), p.Comments...)
	cp.TechStack = append([]string(nil), p.TechStack...)
	cp.Tags = append([]string(nil), p.Tags...)
	return &cp
}
