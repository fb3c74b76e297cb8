package ratelimit

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestNewFixedWindow_Defaults(t *testing.T) {
	l := NewFixedWindow(nil, 0, 0, " ")
	require.Equal(t, 60, l.limit)
	require.Equal(t, time.Minute, l.window)
	require.Equal(t, "appointly:rl", l.prefix)
}

func TestFixedWindow_Allow(t *testing.T) {
	redisURL := strings.TrimSpace(os.Getenv("APPOINTLY_TEST_REDIS_URL"))
	if redisURL == "" {
		t.Skip("APPOINTLY_TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(redisURL)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prefix := "appointly_test_rl:" + time.Now().Format("150405.000000")
	l := NewFixedWindow(rdb, 3, 500*time.Millisecond, prefix)

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "client-a")
		require.NoError(t, err)
		require.True(t, ok, "hit %d", i+1)
	}
	ok, err := l.Allow(ctx, "client-a")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = l.Allow(ctx, "client-b")
	require.NoError(t, err)
	require.True(t, ok)

	require.Eventually(t, func() bool {
		ok, err := l.Allow(ctx, "client-a")
		return err == nil && ok
	}, 3*time.Second, 100*time.Millisecond)
}
