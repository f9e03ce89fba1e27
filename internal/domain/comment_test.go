package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() []Comment {
	return []Comment{
		{
			ID:       "a",
			AuthorID: "alice",
			Content:  "root a",
			Replies: []Comment{
				{
					ID:       "a1",
					AuthorID: "bob",
					Content:  "reply to a",
					Replies: []Comment{
						{ID: "a1x", AuthorID: "alice", Content: "deepest"},
					},
				},
				{ID: "a2", AuthorID: "carol", Content: "second reply to a"},
			},
		},
		{ID: "b", AuthorID: "bob", Content: "root b"},
	}
}

func TestFindComment(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		id    string
		depth int
		found bool
	}{
		{"a", 0, true},
		{"a1", 1, true},
		{"a1x", 2, true},
		{"a2", 1, true},
		{"b", 0, true},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		c, depth := FindComment(tree, tt.id)
		if !tt.found {
			assert.Nil(t, c, "id %s", tt.id)
			continue
		}
		if assert.NotNil(t, c, "id %s", tt.id) {
			assert.Equal(t, tt.id, c.ID)
			assert.Equal(t, tt.depth, depth, "id %s", tt.id)
		}
	}
}

func TestFindComment_ReturnsStoredNode(t *testing.T) {
	tree := sampleTree()

	c, _ := FindComment(tree, "a1")
	c.Content = "edited"

	again, _ := FindComment(tree, "a1")
	assert.Equal(t, "edited", again.Content)
}

func TestAppendReply(t *testing.T) {
	t.Run("root target", func(t *testing.T) {
		tree := sampleTree()

		reply, err := AppendReply(tree, "b", Comment{ID: "b1", AuthorID: "alice", Content: "hi"})
		assert.NoError(t, err)
		assert.Equal(t, "b1", reply.ID)

		stored, depth := FindComment(tree, "b1")
		assert.NotNil(t, stored)
		assert.Equal(t, 1, depth)
	})

	t.Run("appends as last child", func(t *testing.T) {
		tree := sampleTree()

		_, err := AppendReply(tree, "a", Comment{ID: "a3"})
		assert.NoError(t, err)
		assert.Equal(t, "a3", tree[0].Replies[len(tree[0].Replies)-1].ID)
	})

	t.Run("deepest level rejects children", func(t *testing.T) {
		tree := sampleTree()

		_, err := AppendReply(tree, "a1x", Comment{ID: "too-deep"})
		assert.True(t, errors.Is(err, ErrDepthLimitExceeded))

		c, _ := FindComment(tree, "too-deep")
		assert.Nil(t, c)
		assert.Equal(t, 5, CountComments(tree))
	})

	t.Run("unknown target", func(t *testing.T) {
		tree := sampleTree()

		_, err := AppendReply(tree, "missing", Comment{ID: "orphan"})
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, 5, CountComments(tree))
	})
}

func TestCollectAuthorIDs(t *testing.T) {
	ids := CollectAuthorIDs(sampleTree())
	assert.Equal(t, []string{"alice", "bob", "carol"}, ids)
}

func TestCountComments(t *testing.T) {
	assert.Equal(t, 5, CountComments(sampleTree()))
	assert.Equal(t, 0, CountComments(nil))
}

func TestBuildCommentViews(t *testing.T) {
	refs := map[string]UserRef{
		"alice": {ID: "alice", Name: "Alice"},
		"bob":   {ID: "bob", Name: "Bob"},
	}
	resolve := func(id string) UserRef {
		if r, ok := refs[id]; ok {
			return r
		}
		return UserRef{ID: id}
	}

	views := BuildCommentViews(sampleTree(), resolve)

	assert.Len(t, views, 2)
	assert.Equal(t, "Alice", views[0].Author.Name)
	assert.Equal(t, "Bob", views[0].Replies[0].Author.Name)
	assert.Equal(t, "Alice", views[0].Replies[0].Replies[0].Author.Name)
	// unresolved author falls back to the bare id
	assert.Equal(t, UserRef{ID: "carol"}, views[0].Replies[1].Author)
}

func TestMaxCommentLength(t *testing.T) {
	assert.Equal(t, 1000, MaxCommentLength(KindDiscussion, false))
	assert.Equal(t, 500, MaxCommentLength(KindDiscussion, true))
	assert.Equal(t, 500, MaxCommentLength(KindProject, false))
	assert.Equal(t, 500, MaxCommentLength(KindProjectUpdate, true))
}
