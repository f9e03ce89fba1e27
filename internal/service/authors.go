package service

import (
	"context"

	"github.com/campuslink/backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// resolveAuthors batch-loads the users and returns a lookup that falls back
// to a bare id when an account is missing or the batch load failed.
func resolveAuthors(ctx context.Context, users UserStore, ids []string) func(id string) domain.UserRef {
	byID := make(map[string]domain.UserRef, len(ids))

	loaded, err := users.GetMany(ctx, ids)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to resolve authors")
	} else {
		for _, u := range loaded {
			byID[u.ID] = u.Ref()
		}
	}

	return func(id string) domain.UserRef {
		if ref, ok := byID[id]; ok {
			return ref
		}
		return domain.UserRef{ID: id}
	}
}
