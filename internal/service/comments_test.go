package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/campuslink/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCommentService(discussions EngagementStore) *CommentService {
	return NewCommentService(discussions, new(MockEngagementStore), new(MockEngagementStore))
}

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a root comment", func(t *testing.T) {
		store := new(MockEngagementStore)
		store.On("Comments", ctx, "d1").Return(&domain.CommentThread{EntityID: "d1", Revision: 4}, nil).Once()
		store.On("SaveComments", ctx, mock.MatchedBy(func(th *domain.CommentThread) bool {
			return th.EntityID == "d1" && th.Revision == 4 &&
				len(th.Comments) == 1 && th.Comments[0].Content == "hello"
		})).Return(nil).Once()

		svc := newCommentService(store)

		comment, err := svc.AddComment(ctx, domain.KindDiscussion, "d1", "alice", "hello")
		assert.NoError(t, err)
		assert.NotEmpty(t, comment.ID)
		assert.Equal(t, "alice", comment.AuthorID)
		assert.False(t, comment.CreatedAt.IsZero())

		store.AssertExpectations(t)
	})

	t.Run("blank content", func(t *testing.T) {
		svc := newCommentService(new(MockEngagementStore))

		_, err := svc.AddComment(ctx, domain.KindDiscussion, "d1", "alice", "   ")
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("content over the cap", func(t *testing.T) {
		svc := newCommentService(new(MockEngagementStore))

		_, err := svc.AddComment(ctx, domain.KindDiscussion, "d1", "alice", strings.Repeat("x", 1001))
		assert.True(t, errors.Is(err, domain.ErrValidation))

		// exactly at the cap passes validation but hits the store
		store := new(MockEngagementStore)
		store.On("Comments", ctx, "d1").Return(&domain.CommentThread{EntityID: "d1"}, nil).Once()
		store.On("SaveComments", ctx, mock.Anything).Return(nil).Once()

		_, err = newCommentService(store).AddComment(ctx, domain.KindDiscussion, "d1", "alice", strings.Repeat("x", 1000))
		assert.NoError(t, err)
	})

	t.Run("reloads and retries on a revision conflict", func(t *testing.T) {
		store := new(MockEngagementStore)
		store.On("Comments", ctx, "d1").Return(&domain.CommentThread{EntityID: "d1", Revision: 1}, nil).Once()
		store.On("SaveComments", ctx, mock.Anything).Return(domain.ErrConflict).Once()
		store.On("Comments", ctx, "d1").Return(&domain.CommentThread{EntityID: "d1", Revision: 2}, nil).Once()
		store.On("SaveComments", ctx, mock.MatchedBy(func(th *domain.CommentThread) bool {
			return th.Revision == 2 && len(th.Comments) == 1
		})).Return(nil).Once()

		svc := newCommentService(store)

		_, err := svc.AddComment(ctx, domain.KindDiscussion, "d1", "alice", "hello")
		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("gives up after bounded retries", func(t *testing.T) {
		store := new(MockEngagementStore)
		store.On("Comments", ctx, "d1").Return(&domain.CommentThread{EntityID: "d1"}, nil).Times(conflictRetries)
		store.On("SaveComments", ctx, mock.Anything).Return(domain.ErrConflict).Times(conflictRetries)

		svc := newCommentService(store)

		_, err := svc.AddComment(ctx, domain.KindDiscussion, "d1", "alice", "hello")
		assert.True(t, errors.Is(err, domain.ErrConflict))
		store.AssertExpectations(t)
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc := newCommentService(new(MockEngagementStore))

		_, err := svc.AddComment(ctx, domain.EntityKind("page"), "d1", "alice", "hello")
		assert.Error(t, err)
	})
}

func TestCommentService_AddReply(t *testing.T) {
	ctx := context.Background()

	chain := func() []domain.Comment {
		return []domain.Comment{
			{
				ID: "root", AuthorID: "alice", Content: "root",
				Replies: []domain.Comment{
					{
						ID: "child", AuthorID: "bob", Content: "child",
						Replies: []domain.Comment{
							{ID: "grandchild", AuthorID: "carol", Content: "deepest"},
						},
					},
				},
			},
		}
	}

	t.Run("nests under the target", func(t *testing.T) {
		store := new(MockEngagementStore)
		store.On("Comments", ctx, "d1").Return(&domain.CommentThread{EntityID: "d1", Comments: chain()}, nil).Once()
		store.On("SaveComments", ctx, mock.MatchedBy(func(th *domain.CommentThread) bool {
			c, depth := domain.FindComment(th.Comments, "child")
			return len(c.Replies) == 2 && depth == 1
		})).Return(nil).Once()

		svc := newCommentService(store)

		reply, err := svc.AddReply(ctx, domain.KindDiscussion, "d1", "child", "dave", "me too")
		assert.NoError(t, err)
		assert.Equal(t, "dave", reply.AuthorID)
		store.AssertExpectations(t)
	})

	t.Run("deepest node rejects replies", func(t *testing.T) {
		store := new(MockEngagementStore)
		store.On("Comments", ctx, "d1").Return(&domain.CommentThread{EntityID: "d1", Comments: chain()}, nil).Once()

		svc := newCommentService(store)

		_, err := svc.AddReply(ctx, domain.KindDiscussion, "d1", "grandchild", "dave", "too deep")
		assert.True(t, errors.Is(err, domain.ErrDepthLimitExceeded))
		store.AssertNotCalled(t, "SaveComments", mock.Anything, mock.Anything)
	})

	t.Run("unknown target", func(t *testing.T) {
		store := new(MockEngagementStore)
		store.On("Comments", ctx, "d1").Return(&domain.CommentThread{EntityID: "d1", Comments: chain()}, nil).Once()

		svc := newCommentService(store)

		_, err := svc.AddReply(ctx, domain.KindDiscussion, "d1", "missing", "dave", "hi")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		store.AssertNotCalled(t, "SaveComments", mock.Anything, mock.Anything)
	})

	t.Run("reply cap is tighter than the root cap", func(t *testing.T) {
		svc := newCommentService(new(MockEngagementStore))

		_, err := svc.AddReply(ctx, domain.KindDiscussion, "d1", "root", "dave", strings.Repeat("x", 501))
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}
