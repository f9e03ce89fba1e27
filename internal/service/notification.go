package service

import (
	"context"
	"time"

	"github.com/campuslink/backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NotificationService records and queries notifications. Emission is fire
// and forget; the query surface serves the recipient's inbox.
type NotificationService struct {
	repo  NotificationStore
	cache UnreadCounter
}

// NewNotificationService creates a new notification service. The unread
// cache may be nil, in which case counts always hit the store.
func NewNotificationService(repo NotificationStore, cache UnreadCounter) *NotificationService {
	return &NotificationService{repo: repo, cache: cache}
}

// Emit records a notification for a recipient. Persistence failure is
// logged and yields nil instead of an error: the caller's primary operation
// stands whether or not the notification landed.
func (s *NotificationService) Emit(ctx context.Context, recipientID, senderID, ntype, title, message, relatedProjectID string) *domain.Notification {
	n := &domain.Notification{
		ID:               uuid.NewString(),
		RecipientID:      recipientID,
		SenderID:         senderID,
		Type:             ntype,
		Title:            title,
		Message:          message,
		RelatedProjectID: relatedProjectID,
		CreatedAt:        time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		log.Error().Err(err).
			Str("recipient", recipientID).
			Str("type", ntype).
			Msg("Failed to persist notification")
		return nil
	}

	s.invalidateUnread(ctx, recipientID)
	return n
}

// List retrieves a page of the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string, filter domain.NotificationFilter) ([]domain.Notification, domain.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit, 20)

	notifications, total, err := s.repo.ListByRecipient(ctx, userID, filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return notifications, domain.NewPagination(filter.Page, filter.Limit, total), nil
}

// MarkRead flips the read flag on one of the user's notifications.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	n, err := s.repo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return nil, err
	}

	s.invalidateUnread(ctx, userID)
	return n, nil
}

// MarkAllRead flips the read flag on all of the user's unread notifications.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.invalidateUnread(ctx, userID)
	return n, nil
}

// UnreadCount returns the user's unread notification count, served from the
// cache when warm.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if s.cache != nil {
		if count, ok, err := s.cache.Get(ctx, userID); err == nil && ok {
			return count, nil
		}
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, count); err != nil {
			log.Warn().Err(err).Str("user", userID).Msg("Failed to cache unread count")
		}
	}

	return count, nil
}

func (s *NotificationService) invalidateUnread(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("Failed to invalidate unread count")
	}
}

// normalizePage clamps paging parameters to sane values.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
