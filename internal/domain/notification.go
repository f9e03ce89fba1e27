package domain

import "time"

// Notification types emitted by the collaboration workflow.
const (
	NotificationCollabAccepted = "collaboration_request_accepted"
	NotificationCollabRejected = "collaboration_request_rejected"
)

// Notification is a stored message for a recipient. It is created once,
// only its read flag ever changes, and it is never deleted by this core.
type Notification struct {
	ID               string    `bson:"_id" json:"id"`
	RecipientID      string    `bson:"recipient" json:"recipientId"`
	SenderID         string    `bson:"sender" json:"senderId"`
	Type             string    `bson:"type" json:"type"`
	Title            string    `bson:"title" json:"title"`
	Message          string    `bson:"message" json:"message"`
	RelatedProjectID string    `bson:"related_project,omitempty" json:"relatedProjectId,omitempty"`
	IsRead           bool      `bson:"is_read" json:"isRead"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// NotificationFilter selects notifications for listing.
type NotificationFilter struct {
	UnreadOnly bool
	Page       int
	Limit      int
}
