package domain

import "time"

// Team role constants. Exactly one Owner exists per project: the creator.
const (
	RoleOwner  = "Owner"
	RoleMember = "Member"
)

// TeamMember is a user with live membership in a project. Membership here is
// the sole source of truth; an accepted collaboration request is history,
// not membership.
type TeamMember struct {
	UserID   string    `bson:"user" json:"userId"`
	Role     string    `bson:"role" json:"role"`
	JoinedAt time.Time `bson:"joined_at" json:"joinedAt"`
}

// Project represents a posted project with its embedded engagement state.
type Project struct {
	ID                    string                 `bson:"_id" json:"id"`
	Title                 string                 `bson:"title" json:"title"`
	Description           string                 `bson:"description" json:"description"`
	TechStack             []string               `bson:"tech_stack,omitempty" json:"techStack,omitempty"`
	GithubLink            string                 `bson:"github_link,omitempty" json:"githubLink,omitempty"`
	DemoLink              string                 `bson:"demo_link,omitempty" json:"demoLink,omitempty"`
	Images                []string               `bson:"images,omitempty" json:"images,omitempty"`
	LookingForTeammates   bool                   `bson:"looking_for_teammates" json:"lookingForTeammates"`
	OwnerID               string                 `bson:"owner" json:"ownerId"`
	TeamMembers           []TeamMember           `bson:"team_members" json:"teamMembers"`
	Likes                 []Like                 `bson:"likes" json:"likes"`
	Comments              []Comment              `bson:"comments" json:"comments"`
	CollaborationRequests []CollaborationRequest `bson:"collaboration_requests" json:"collaborationRequests"`
	Tags                  []string               `bson:"tags,omitempty" json:"tags,omitempty"`
	IsFeatured            bool                   `bson:"is_featured" json:"isFeatured"`
	Revision              int64                  `bson:"revision" json:"-"`
	CreatedAt             time.Time              `bson:"created_at" json:"createdAt"`
	UpdatedAt             time.Time              `bson:"updated_at" json:"updatedAt"`
}

// IsOwner reports whether the user created the project.
func (p *Project) IsOwner(userID string) bool {
	return p.OwnerID == userID
}

// Member returns the team entry for the user, or nil.
func (p *Project) Member(userID string) *TeamMember {
	for i := range p.TeamMembers {
		if p.TeamMembers[i].UserID == userID {
			return &p.TeamMembers[i]
		}
	}
	return nil
}

// IsMember reports whether the user has live membership.
func (p *Project) IsMember(userID string) bool {
	return p.Member(userID) != nil
}

// RequestByID returns the collaboration request with the given id, or nil.
func (p *Project) RequestByID(id string) *CollaborationRequest {
	for i := range p.CollaborationRequests {
		if p.CollaborationRequests[i].ID == id {
			return &p.CollaborationRequests[i]
		}
	}
	return nil
}

// RequestByUser returns the collaboration request sent by the user, or nil.
// The workflow keeps at most one request per user: terminal requests are
// never cleared, so a second one is never created.
func (p *Project) RequestByUser(userID string) *CollaborationRequest {
	for i := range p.CollaborationRequests {
		if p.CollaborationRequests[i].UserID == userID {
			return &p.CollaborationRequests[i]
		}
	}
	return nil
}

// RemoveMember deletes the user's team entry and reports whether one existed.
func (p *Project) RemoveMember(userID string) bool {
	for i := range p.TeamMembers {
		if p.TeamMembers[i].UserID == userID {
			p.TeamMembers = append(p.TeamMembers[:i], p.TeamMembers[i+1:]...)
			return true
		}
	}
	return false
}

// ProjectCreate represents project creation data
type ProjectCreate struct {
	Title               string   `json:"title" validate:"required,max=100"`
	Description         string   `json:"description" validate:"required,max=1000"`
	TechStack           []string `json:"techStack,omitempty" validate:"omitempty,dive,max=50"`
	GithubLink          string   `json:"githubLink,omitempty" validate:"omitempty,url,startswith=https://github.com/"`
	DemoLink            string   `json:"demoLink,omitempty" validate:"omitempty,url"`
	Images              []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	LookingForTeammates bool     `json:"lookingForTeammates"`
	Tags                []string `json:"tags,omitempty" validate:"omitempty,dive,max=50"`
}

// ProjectUpdateInput represents partial project update data
type ProjectUpdateInput struct {
	Title               *string  `json:"title,omitempty" validate:"omitempty,max=100"`
	Description         *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	TechStack           []string `json:"techStack,omitempty" validate:"omitempty,dive,max=50"`
	GithubLink          *string  `json:"githubLink,omitempty" validate:"omitempty,url,startswith=https://github.com/"`
	DemoLink            *string  `json:"demoLink,omitempty" validate:"omitempty,url"`
	Images              []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	LookingForTeammates *bool    `json:"lookingForTeammates,omitempty"`
	Tags                []string `json:"tags,omitempty" validate:"omitempty,dive,max=50"`
}

// TeamMemberView is a team entry with its user resolved.
type TeamMemberView struct {
	User     UserRef   `json:"user"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// ProjectDetail is a project with the owner, team, and comment authors
// resolved across the whole comment tree.
type ProjectDetail struct {
	Project
	Owner        UserRef          `json:"owner"`
	Team         []TeamMemberView `json:"team"`
	CommentViews []CommentView    `json:"commentTree"`
	LikeCount    int              `json:"likeCount"`
	CommentCount int              `json:"commentCount"`
}

// ProjectFilter selects projects for listing.
type ProjectFilter struct {
	LookingForTeammates bool
	TechStack           []string
	OwnerID             string
	Search              string
	Page                int
	Limit               int
}
