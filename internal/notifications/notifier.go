// Package notifications provides real-time notification delivery over Redis
// pub/sub and websockets.
package notifications

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"ripple/internal/middleware"

	"github.com/redis/go-redis/v9"
)

const userChannelPrefix = "notifications:user:"

// Notifier publishes notification payloads into Redis channels. A nil Redis
// client turns every method into a no-op so the API works without Redis.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishUser sends a notification payload to a user's channel. Delivery is
// best effort; failures are logged and counted, never returned.
func (n *Notifier) PublishUser(ctx context.Context, userID uint, payload interface{}) {
	if n.rdb == nil {
		return
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		middleware.NotificationPushes.WithLabelValues("marshal_error").Inc()
		middleware.Logger.WarnContext(ctx, "Failed to marshal notification payload",
			"user_id", userID, "error", err)
		return
	}

	if err := n.rdb.Publish(ctx, UserChannel(userID), encoded).Err(); err != nil {
		middleware.NotificationPushes.WithLabelValues("publish_error").Inc()
		middleware.Logger.WarnContext(ctx, "Failed to publish notification",
			"user_id", userID, "error", err)
		return
	}
	middleware.NotificationPushes.WithLabelValues("published").Inc()
}

// StartPatternSubscriber subscribes to the per-user notification pattern and
// calls onMessage for each incoming message. The subscription ends when ctx
// is cancelled.
func (n *Notifier) StartPatternSubscriber(ctx context.Context, onMessage func(channel, payload string)) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, userChannelPrefix+"*")
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							middleware.Logger.Error("Panic in notification subscriber", "panic", r)
						}
					}()
					onMessage(msg.Channel, msg.Payload)
				}()
			}
		}
	}()

	return nil
}

// UserChannel derives the Redis channel name for a user.
func UserChannel(userID uint) string {
	return userChannelPrefix + strconv.FormatUint(uint64(userID), 10)
}

// ParseUserChannel extracts the user ID from a per-user channel name.
func ParseUserChannel(channel string) (uint, bool) {
	raw, ok := strings.CutPrefix(channel, userChannelPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
