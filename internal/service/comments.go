package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/campuslink/backend/internal/domain"
	"github.com/google/uuid"
)

// CommentService maintains the bounded-depth comment trees embedded in
// engageable entities.
type CommentService struct {
	stores storeRegistry
}

// NewCommentService creates a new comment service over the three engageable
// collections.
func NewCommentService(discussions, projects, updates EngagementStore) *CommentService {
	return &CommentService{stores: newStoreRegistry(discussions, projects, updates)}
}

// AddComment appends a new root comment to the entity's tree. The whole
// entity document is rewritten under a revision guard; a concurrent
// structural change triggers a bounded reload-and-retry.
func (s *CommentService) AddComment(ctx context.Context, kind domain.EntityKind, entityID, authorID, content string) (*domain.Comment, error) {
	if err := validateCommentContent(kind, content, false); err != nil {
		return nil, err
	}

	store, err := s.stores.store(kind)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	for attempt := 0; attempt < conflictRetries; attempt++ {
		thread, err := store.Comments(ctx, entityID)
		if err != nil {
			return nil, err
		}

		thread.Comments = append(thread.Comments, comment)

		err = store.SaveComments(ctx, thread)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &comment, nil
	}

	return nil, fmt.Errorf("add comment: %w", domain.ErrConflict)
}

// AddReply locates the target node anywhere in the tree by a document-order
// depth-first search and appends the reply as its last child. It fails with
// ErrNotFound if no node matches and ErrDepthLimitExceeded if the target
// already sits on the deepest level; the tree is never partially mutated.
func (s *CommentService) AddReply(ctx context.Context, kind domain.EntityKind, entityID, targetID, authorID, content string) (*domain.Comment, error) {
	if err := validateCommentContent(kind, content, true); err != nil {
		return nil, err
	}

	store, err := s.stores.store(kind)
	if err != nil {
		return nil, err
	}

	reply := domain.Comment{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	for attempt := 0; attempt < conflictRetries; attempt++ {
		thread, err := store.Comments(ctx, entityID)
		if err != nil {
			return nil, err
		}

		if _, err := domain.AppendReply(thread.Comments, targetID, reply); err != nil {
			return nil, fmt.Errorf("reply to comment %s: %w", targetID, err)
		}

		err = store.SaveComments(ctx, thread)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &reply, nil
	}

	return nil, fmt.Errorf("add reply: %w", domain.ErrConflict)
}

func validateCommentContent(kind domain.EntityKind, content string, reply bool) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	if limit := domain.MaxCommentLength(kind, reply); utf8.RuneCountInString(content) > limit {
		return fmt.Errorf("%w: content exceeds %d characters", domain.ErrValidation, limit)
	}
	return nil
}
