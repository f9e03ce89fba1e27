package domain

import "time"

// Discussion categories
const (
	CategoryGeneral        = "general"
	CategoryCollaboration  = "collaboration"
	CategoryTechDiscussion = "tech-discussion"
	CategoryHelp           = "help"
	CategoryShowcase       = "showcase"
)

// Discussion represents a forum thread with its embedded engagement state.
type Discussion struct {
	ID         string    `bson:"_id" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	AuthorID   string    `bson:"author" json:"authorId"`
	Tags       []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Category   string    `bson:"category" json:"category"`
	Likes      []Like    `bson:"likes" json:"likes"`
	Comments   []Comment `bson:"comments" json:"comments"`
	IsPinned   bool      `bson:"is_pinned" json:"isPinned"`
	IsFeatured bool      `bson:"is_featured" json:"isFeatured"`
	ViewCount  int64     `bson:"view_count" json:"viewCount"`
	Revision   int64     `bson:"revision" json:"-"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// DiscussionCreate represents discussion creation data
type DiscussionCreate struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Content  string   `json:"content" validate:"required,max=5000"`
	Tags     []string `json:"tags,omitempty" validate:"omitempty,dive,max=50"`
	Category string   `json:"category,omitempty" validate:"omitempty,oneof=general collaboration tech-discussion help showcase"`
}

// DiscussionUpdate represents partial discussion update data
type DiscussionUpdate struct {
	Title    *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Content  *string  `json:"content,omitempty" validate:"omitempty,max=5000"`
	Tags     []string `json:"tags,omitempty" validate:"omitempty,dive,max=50"`
	Category *string  `json:"category,omitempty" validate:"omitempty,oneof=general collaboration tech-discussion help showcase"`
}

// DiscussionFilter selects discussions for listing.
type DiscussionFilter struct {
	Category string
	Tags     []string
	Search   string
	Page     int
	Limit    int
}

// DiscussionDetail is a discussion with authors resolved across the whole
// comment tree.
type DiscussionDetail struct {
	Discussion
	Author       UserRef       `json:"author"`
	CommentViews []CommentView `json:"commentTree"`
	LikeCount    int           `json:"likeCount"`
	CommentCount int           `json:"commentCount"`
}
