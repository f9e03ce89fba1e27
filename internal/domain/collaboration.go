package domain

import "time"

// RequestStatus is the closed set of collaboration request states.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// RequestAction is what the project owner does with a pending request.
type RequestAction string

const (
	ActionAccept RequestAction = "accept"
	ActionReject RequestAction = "reject"
)

// TargetStatus maps an owner action to the status it drives the request to.
func (a RequestAction) TargetStatus() (RequestStatus, bool) {
	switch a {
	case ActionAccept:
		return RequestAccepted, true
	case ActionReject:
		return RequestRejected, true
	default:
		return "", false
	}
}

// CanBecome decides every combination of stored status and requested status.
// Only pending requests move, and only forward; accepted and rejected are
// terminal.
func (s RequestStatus) CanBecome(to RequestStatus) bool {
	switch s {
	case RequestPending:
		return to == RequestAccepted || to == RequestRejected
	case RequestAccepted, RequestRejected:
		return false
	default:
		return false
	}
}

// CollaborationRequest is a user's request to join a project team.
type CollaborationRequest struct {
	ID        string        `bson:"id" json:"id"`
	UserID    string        `bson:"user" json:"userId"`
	Message   string        `bson:"message,omitempty" json:"message,omitempty"`
	Status    RequestStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
}

// CollaborationRequestCreate carries the optional message of a new request.
type CollaborationRequestCreate struct {
	Message string `json:"message,omitempty" validate:"omitempty,max=300"`
}

// CollaborationRequestResolve names the owner's decision.
type CollaborationRequestResolve struct {
	Action RequestAction `json:"action" validate:"required,oneof=accept reject"`
}
