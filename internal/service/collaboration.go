package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campuslink/backend/internal/domain"
	"github.com/google/uuid"
)

// CollaborationService drives the per-project join-request workflow:
// NoRequest -> Pending -> Accepted | Rejected, with membership change and
// notification emission as accept/reject side effects.
type CollaborationService struct {
	projects ProjectStore
	notifier Notifier
}

// NewCollaborationService creates a new collaboration service
func NewCollaborationService(projects ProjectStore, notifier Notifier) *CollaborationService {
	return &CollaborationService{projects: projects, notifier: notifier}
}

// SendRequest records a pending collaboration request. The requester must
// not be the owner or a team member, must not have any recorded request
// (terminal requests are never cleared), and the project must be looking
// for teammates.
func (s *CollaborationService) SendRequest(ctx context.Context, projectID, userID, message string) (*domain.CollaborationRequest, error) {
	for attempt := 0; attempt < conflictRetries; attempt++ {
		p, err := s.projects.Get(ctx, projectID)
		if err != nil {
			return nil, err
		}

		if !p.LookingForTeammates {
			return nil, fmt.Errorf("%w: project is not looking for teammates", domain.ErrInvalidState)
		}
		if p.IsOwner(userID) || p.IsMember(userID) {
			return nil, fmt.Errorf("%w: already a member of this project", domain.ErrForbidden)
		}
		if p.RequestByUser(userID) != nil {
			return nil, domain.ErrDuplicateRequest
		}

		req := domain.CollaborationRequest{
			ID:        uuid.NewString(),
			UserID:    userID,
			Message:   message,
			Status:    domain.RequestPending,
			CreatedAt: time.Now(),
		}
		p.CollaborationRequests = append(p.CollaborationRequests, req)

		err = s.projects.Replace(ctx, p)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &req, nil
	}

	return nil, fmt.Errorf("send collaboration request: %w", domain.ErrConflict)
}

// ResolveRequest applies the owner's accept or reject decision to a pending
// request. The pending precondition is re-evaluated on every conflict
// retry and written together with the transition under the revision guard,
// so of two concurrent resolutions exactly one succeeds; the other reloads,
// sees a terminal status, and fails with ErrInvalidState. The requester is
// notified only after the transition is persisted, so the notification is
// emitted at most once.
func (s *CollaborationService) ResolveRequest(ctx context.Context, projectID, requestID, actorID string, action domain.RequestAction) (*domain.CollaborationRequest, error) {
	target, ok := action.TargetStatus()
	if !ok {
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, action)
	}

	for attempt := 0; attempt < conflictRetries; attempt++ {
		p, err := s.projects.Get(ctx, projectID)
		if err != nil {
			return nil, err
		}

		if !p.IsOwner(actorID) {
			return nil, fmt.Errorf("%w: only the project owner can resolve requests", domain.ErrForbidden)
		}

		req := p.RequestByID(requestID)
		if req == nil {
			return nil, fmt.Errorf("collaboration request %s: %w", requestID, domain.ErrNotFound)
		}
		if !req.Status.CanBecome(target) {
			return nil, fmt.Errorf("%w: request is %s", domain.ErrInvalidState, req.Status)
		}

		req.Status = target

		var ntype, title, message string
		if target == domain.RequestAccepted {
			p.TeamMembers = append(p.TeamMembers, domain.TeamMember{
				UserID:   req.UserID,
				Role:     domain.RoleMember,
				JoinedAt: time.Now(),
			})
			ntype = domain.NotificationCollabAccepted
			title = "Collaboration Request Accepted"
			message = fmt.Sprintf("Your collaboration request for %q has been accepted!", p.Title)
		} else {
			ntype = domain.NotificationCollabRejected
			title = "Collaboration Request Rejected"
			message = fmt.Sprintf("Your collaboration request for %q has been rejected.", p.Title)
		}

		err = s.projects.Replace(ctx, p)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.notifier.Emit(ctx, req.UserID, actorID, ntype, title, message, p.ID)
		return req, nil
	}

	return nil, fmt.Errorf("resolve collaboration request: %w", domain.ErrConflict)
}

// Leave removes the user's team membership. The owner can never leave; the
// user's collaboration request, if any, stays untouched as history.
func (s *CollaborationService) Leave(ctx context.Context, projectID, userID string) error {
	for attempt := 0; attempt < conflictRetries; attempt++ {
		p, err := s.projects.Get(ctx, projectID)
		if err != nil {
			return err
		}

		if p.IsOwner(userID) {
			return domain.ErrOwnerCannotLeave
		}
		if !p.RemoveMember(userID) {
			return fmt.Errorf("%w: not a member of this project", domain.ErrForbidden)
		}

		err = s.projects.Replace(ctx, p)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return err
		}
		return nil
	}

	return fmt.Errorf("leave project: %w", domain.ErrConflict)
}
