package notifications

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PublishUser_NilClient(t *testing.T) {
	// Notifier with nil Redis is a noop; must not panic.
	n := NewNotifier(nil)
	n.PublishUser(context.Background(), 1, map[string]string{"verb": "liked"})
}

func TestUserChannel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		userID   uint
		expected string
	}{
		{1, "notifications:user:1"},
		{100, "notifications:user:100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, UserChannel(tt.userID))
	}
}

func TestParseUserChannel(t *testing.T) {
	t.Parallel()

	id, ok := ParseUserChannel("notifications:user:42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = ParseUserChannel("notifications:broadcast")
	assert.False(t, ok)

	_, ok = ParseUserChannel("notifications:user:abc")
	assert.False(t, ok)
}

func TestNotifier_PublishAndSubscribe(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type msg struct {
		channel string
		payload string
	}
	received := make(chan msg, 4)
	require.NoError(t, n.StartPatternSubscriber(ctx, func(channel, payload string) {
		received <- msg{channel, payload}
	}))

	n.PublishUser(context.Background(), 7, map[string]string{"verb": "liked"})

	select {
	case got := <-received:
		assert.Equal(t, "notifications:user:7", got.channel)
		var decoded map[string]string
		require.NoError(t, json.Unmarshal([]byte(got.payload), &decoded))
		assert.Equal(t, "liked", decoded["verb"])
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestNotifier_SubscriberStopsOnCancel(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())

	var received int32
	require.NoError(t, n.StartPatternSubscriber(ctx, func(string, string) {
		atomic.AddInt32(&received, 1)
	}))

	n.PublishUser(context.Background(), 1, "before-cancel")
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&received) >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)

	n.PublishUser(context.Background(), 1, "after-cancel")
	assert.Never(t, func() bool {
		return atomic.LoadInt32(&received) > 1
	}, 200*time.Millisecond, 10*time.Millisecond)
}
