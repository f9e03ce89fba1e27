package domain

import "time"

// Project update types
const (
	UpdateStatus       = "status"
	UpdateMilestone    = "milestone"
	UpdateAnnouncement = "announcement"
	UpdateDiscussion   = "discussion"
)

// ProjectUpdate is a progress post attached to a project, with its own
// engagement state.
type ProjectUpdate struct {
	ID        string    `bson:"_id" json:"id"`
	ProjectID string    `bson:"project" json:"projectId"`
	AuthorID  string    `bson:"author" json:"authorId"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Type      string    `bson:"type" json:"type"`
	Likes     []Like    `bson:"likes" json:"likes"`
	Comments  []Comment `bson:"comments" json:"comments"`
	IsPinned  bool      `bson:"is_pinned" json:"isPinned"`
	Revision  int64     `bson:"revision" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProjectUpdateCreate represents update creation data
type ProjectUpdateCreate struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required,max=2000"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=status milestone announcement discussion"`
}
