package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs for cached reads. The feed TTL is short: a stale first page is
// tolerable, a stale feed for minutes is not.
const (
	PostTTL = 5 * time.Minute
	FeedTTL = 30 * time.Second
)

// PostKey returns the cache key for a post detail.
func PostKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}

// FeedKey returns the cache key for the first feed page of a user.
func FeedKey(userID uint) string {
	return fmt.Sprintf("feed:first:%d", userID)
}

// Aside implements the cache-aside pattern: try the cache, on miss run
// fetch and store the result. Cache failures fall through to fetch; the
// cache never makes a read fail.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	raw, err := client.Get(ctx, key).Result()
	if err == nil {
		if unmarshalErr := json.Unmarshal([]byte(raw), dest); unmarshalErr == nil {
			return nil
		}
		// Corrupt entry; drop it and fall through to fetch.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		return fetch()
	}

	if err := fetch(); err != nil {
		return err
	}

	if encoded, err := json.Marshal(dest); err == nil {
		client.Set(ctx, key, encoded, ttl)
	}
	return nil
}

// Invalidate removes the given keys. Best effort; errors are ignored.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidatePost drops the cached detail for a post.
func InvalidatePost(ctx context.Context, id uint) {
	Invalidate(ctx, PostKey(id))
}

// InvalidateFeeds drops the cached first feed page for each recipient.
func InvalidateFeeds(ctx context.Context, userIDs []uint) {
	if len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, FeedKey(id))
	}
	Invalidate(ctx, keys...)
}
