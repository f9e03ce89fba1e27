package domain

import "time"

// User represents a registered account
type User struct {
	ID             string    `bson:"_id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	Branch         string    `bson:"branch,omitempty" json:"branch,omitempty"`
	Year           int       `bson:"year,omitempty" json:"year,omitempty"`
	Skills         []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	ProfilePicture string    `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRef is the slim author projection embedded in detail views.
type UserRef struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Ref returns the slim projection of the user.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, ProfilePicture: u.ProfilePicture}
}

// UserCreate represents registration data
type UserCreate struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Branch   string `json:"branch,omitempty" validate:"omitempty,max=100"`
	Year     int    `json:"year,omitempty" validate:"omitempty,min=1,max=5"`
}

// UserLogin represents login credentials
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair represents an issued access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
