package domain

import "time"

// MaxCommentDepth is the number of nesting levels a comment tree may hold:
// a root comment, a reply, and a reply to a reply. A node on the deepest
// level never accepts children.
const MaxCommentDepth = 3

// Comment is one node in an entity's comment tree. It has no identity
// outside the owning entity's document.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	AuthorID  string    `bson:"author" json:"authorId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	Replies   []Comment `bson:"replies,omitempty" json:"replies,omitempty"`
}

// FindComment locates the comment with the given id in document order:
// first root comment first, depth first, replies in insertion order. The
// returned depth is zero for root comments. Returns nil if no node matches.
func FindComment(comments []Comment, id string) (*Comment, int) {
	for i := range comments {
		if comments[i].ID == id {
			return &comments[i], 0
		}
		if c, depth := FindComment(comments[i].Replies, id); c != nil {
			return c, depth + 1
		}
	}
	return nil, 0
}

// AppendReply attaches reply as the last child of the comment with id
// targetID and returns a pointer to the stored copy. It returns ErrNotFound
// if no node matches and ErrDepthLimitExceeded if the target already sits on
// the deepest level; in both cases the tree is left unmodified.
func AppendReply(comments []Comment, targetID string, reply Comment) (*Comment, error) {
	target, depth := FindComment(comments, targetID)
	if target == nil {
		return nil, ErrNotFound
	}
	if depth >= MaxCommentDepth-1 {
		return nil, ErrDepthLimitExceeded
	}
	target.Replies = append(target.Replies, reply)
	return &target.Replies[len(target.Replies)-1], nil
}

// CollectAuthorIDs walks the whole tree and returns every distinct author id
// in document order.
func CollectAuthorIDs(comments []Comment) []string {
	seen := make(map[string]struct{})
	var ids []string
	var walk func(nodes []Comment)
	walk = func(nodes []Comment) {
		for i := range nodes {
			if _, ok := seen[nodes[i].AuthorID]; !ok {
				seen[nodes[i].AuthorID] = struct{}{}
				ids = append(ids, nodes[i].AuthorID)
			}
			walk(nodes[i].Replies)
		}
	}
	walk(comments)
	return ids
}

// CountComments returns the total number of nodes in the tree.
func CountComments(comments []Comment) int {
	n := 0
	for i := range comments {
		n += 1 + CountComments(comments[i].Replies)
	}
	return n
}

// CommentCreate represents comment or reply creation data
type CommentCreate struct {
	Content string `json:"content" validate:"required"`
}

// CommentThread is one entity's comment tree at a known revision. Saving it
// back succeeds only while the revision is unchanged.
type CommentThread struct {
	EntityID string
	Comments []Comment
	Revision int64
}

// CommentView is a comment node with its author resolved for rendering.
type CommentView struct {
	ID        string        `json:"id"`
	Author    UserRef       `json:"author"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	Replies   []CommentView `json:"replies,omitempty"`
}

// BuildCommentViews decorates every node of the tree with its resolved
// author. The same resolution step applies uniformly at every level.
func BuildCommentViews(comments []Comment, resolve func(id string) UserRef) []CommentView {
	if len(comments) == 0 {
		return nil
	}
	views := make([]CommentView, len(comments))
	for i := range comments {
		views[i] = CommentView{
			ID:        comments[i].ID,
			Author:    resolve(comments[i].AuthorID),
			Content:   comments[i].Content,
			CreatedAt: comments[i].CreatedAt,
			Replies:   BuildCommentViews(comments[i].Replies, resolve),
		}
	}
	return views
}
