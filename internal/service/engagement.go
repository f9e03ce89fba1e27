package service

import (
	"context"

	"github.com/campuslink/backend/internal/domain"
)

// EngagementService toggles like membership on engageable entities.
type EngagementService struct {
	stores storeRegistry
}

// NewEngagementService creates a new engagement service over the three
// engageable collections.
func NewEngagementService(discussions, projects, updates EngagementStore) *EngagementService {
	return &EngagementService{stores: newStoreRegistry(discussions, projects, updates)}
}

// ToggleLike flips the (entity, user) like membership and returns the state
// right after the mutation. The store performs the toggle as an atomic
// conditional membership update, so concurrent toggles by different users
// never lose each other's entry.
func (s *EngagementService) ToggleLike(ctx context.Context, kind domain.EntityKind, entityID, userID string) (*domain.LikeResult, error) {
	store, err := s.stores.store(kind)
	if err != nil {
		return nil, err
	}
	return store.ToggleLike(ctx, entityID, userID)
}
