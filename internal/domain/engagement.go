package domain

import "time"

// EntityKind identifies a content type that carries a like set and a
// comment tree.
type EntityKind string

const (
	KindDiscussion    EntityKind = "discussion"
	KindProject       EntityKind = "project"
	KindProjectUpdate EntityKind = "project_update"
)

// Like marks that a user liked an entity. The stored array behaves as a set
// keyed by user id: the repository never inserts a second entry for the same
// user.
type Like struct {
	UserID  string    `bson:"user" json:"userId"`
	LikedAt time.Time `bson:"created_at" json:"likedAt"`
}

// LikeResult is the state of the like set right after a toggle.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// MaxCommentLength returns the content cap for a comment on the given entity
// kind. Discussion root comments allow longer text than replies; everything
// else is capped uniformly.
func MaxCommentLength(kind EntityKind, reply bool) int {
	if kind == KindDiscussion && !reply {
		return 1000
	}
	return 500
}
