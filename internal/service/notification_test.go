package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campuslink/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_Emit(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and invalidates the unread count", func(t *testing.T) {
		repo := new(MockNotificationStore)
		cache := new(MockUnreadCounter)
		repo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == "bob" && n.Type == domain.NotificationCollabAccepted &&
				n.ID != "" && !n.IsRead
		})).Return(nil).Once()
		cache.On("Invalidate", ctx, "bob").Return(nil).Once()

		svc := NewNotificationService(repo, cache)

		n := svc.Emit(ctx, "bob", "owner", domain.NotificationCollabAccepted, "Accepted", "welcome", "p1")
		assert.NotNil(t, n)
		assert.Equal(t, "owner", n.SenderID)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("persistence failure is swallowed", func(t *testing.T) {
		repo := new(MockNotificationStore)
		cache := new(MockUnreadCounter)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("write timeout")).Once()

		svc := NewNotificationService(repo, cache)

		n := svc.Emit(ctx, "bob", "owner", domain.NotificationCollabRejected, "Rejected", "sorry", "p1")
		assert.Nil(t, n)

		cache.AssertNotCalled(t, "Invalidate", ctx, "bob")
	})

	t.Run("works without a cache", func(t *testing.T) {
		repo := new(MockNotificationStore)
		repo.On("Create", ctx, mock.Anything).Return(nil).Once()

		svc := NewNotificationService(repo, nil)

		n := svc.Emit(ctx, "bob", "owner", domain.NotificationCollabAccepted, "Accepted", "welcome", "p1")
		assert.NotNil(t, n)
	})
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctx := context.Background()

	t.Run("serves a warm cache", func(t *testing.T) {
		repo := new(MockNotificationStore)
		cache := new(MockUnreadCounter)
		cache.On("Get", ctx, "bob").Return(int64(7), true, nil).Once()

		svc := NewNotificationService(repo, cache)

		count, err := svc.UnreadCount(ctx, "bob")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		repo.AssertNotCalled(t, "CountUnread", ctx, "bob")
	})

	t.Run("falls through on a miss and backfills", func(t *testing.T) {
		repo := new(MockNotificationStore)
		cache := new(MockUnreadCounter)
		cache.On("Get", ctx, "bob").Return(int64(0), false, nil).Once()
		repo.On("CountUnread", ctx, "bob").Return(int64(2), nil).Once()
		cache.On("Set", ctx, "bob", int64(2)).Return(nil).Once()

		svc := NewNotificationService(repo, cache)

		count, err := svc.UnreadCount(ctx, "bob")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
		cache.AssertExpectations(t)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("marks and invalidates", func(t *testing.T) {
		repo := new(MockNotificationStore)
		cache := new(MockUnreadCounter)
		repo.On("MarkRead", ctx, "n1", "bob").
			Return(&domain.Notification{ID: "n1", RecipientID: "bob", IsRead: true}, nil).Once()
		cache.On("Invalidate", ctx, "bob").Return(nil).Once()

		svc := NewNotificationService(repo, cache)

		n, err := svc.MarkRead(ctx, "bob", "n1")
		assert.NoError(t, err)
		assert.True(t, n.IsRead)
		cache.AssertExpectations(t)
	})

	t.Run("someone else's notification", func(t *testing.T) {
		repo := new(MockNotificationStore)
		cache := new(MockUnreadCounter)
		repo.On("MarkRead", ctx, "n1", "mallory").Return(nil, domain.ErrNotFound).Once()

		svc := NewNotificationService(repo, cache)

		_, err := svc.MarkRead(ctx, "mallory", "n1")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		cache.AssertNotCalled(t, "Invalidate", ctx, "mallory")
	})
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationStore)
	repo.On("ListByRecipient", ctx, "bob", domain.NotificationFilter{UnreadOnly: true, Page: 1, Limit: 20}).
		Return([]domain.Notification{{ID: "n1"}}, int64(41), nil).Once()

	svc := NewNotificationService(repo, nil)

	notifications, pagination, err := svc.List(ctx, "bob", domain.NotificationFilter{UnreadOnly: true})
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, int64(41), pagination.Total)
	assert.Equal(t, 3, pagination.Pages)
	repo.AssertExpectations(t)
}
