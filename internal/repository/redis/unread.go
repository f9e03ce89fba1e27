package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	unreadCountPrefix = "notifications:unread:"
	unreadCountTTL    = 10 * time.Minute
)

// UnreadCache caches per-user unread notification counts. Every mutating
// notification operation invalidates the entry, so a stale count lives at
// most one TTL after a missed invalidation.
type UnreadCache struct {
	client *Client
}

// NewUnreadCache creates a new unread-count cache
func NewUnreadCache(client *Client) *UnreadCache {
	return &UnreadCache{client: client}
}

// Get returns the cached count for a user. The second result is false on a
// cache miss.
func (c *UnreadCache) Get(ctx context.Context, userID string) (int64, bool, error) {
	key := fmt.Sprintf("%s%s", unreadCountPrefix, userID)

	count, err := c.client.rdb.Get(ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read unread count: %w", err)
	}

	return count, true, nil
}

// Set caches the count for a user
func (c *UnreadCache) Set(ctx context.Context, userID string, count int64) error {
	key := fmt.Sprintf("%s%s", unreadCountPrefix, userID)
	return c.client.rdb.Set(ctx, key, count, unreadCountTTL).Err()
}

// Invalidate drops the cached count for a user
func (c *UnreadCache) Invalidate(ctx context.Context, userID string) error {
	key := fmt.Sprintf("%s%s", unreadCountPrefix, userID)
	return c.client.rdb.Del(ctx, key).Err()
}
