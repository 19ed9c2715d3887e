package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLimiter(client, limit, window, zap.NewNop()), mr
}

func TestAllow_UpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(ctx, "1.2.3.4"), "request %d should pass", i+1)
	}
	assert.False(t, limiter.Allow(ctx, "1.2.3.4"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	require.True(t, limiter.Allow(ctx, "1.2.3.4"))
	assert.False(t, limiter.Allow(ctx, "1.2.3.4"))
	assert.True(t, limiter.Allow(ctx, "5.6.7.8"))
}

func TestAllow_WindowExpiry(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	require.True(t, limiter.Allow(ctx, "1.2.3.4"))
	require.False(t, limiter.Allow(ctx, "1.2.3.4"))

	mr.FastForward(time.Minute + time.Second)
	assert.True(t, limiter.Allow(ctx, "1.2.3.4"))
}

func TestAllow_FailsOpen(t *testing.T) {
	ctx := context.Background()

	// no redis at all
	assert.True(t, NewLimiter(nil, 5, time.Minute, zap.NewNop()).Allow(ctx, "k"))

	// limiting disabled
	limiter, _ := newTestLimiter(t, 0, time.Minute)
	assert.True(t, limiter.Allow(ctx, "k"))

	// redis went away mid-flight
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	mr.Close()
	assert.True(t, limiter.Allow(ctx, "k"))
	assert.True(t, limiter.Allow(ctx, "k"))
}
