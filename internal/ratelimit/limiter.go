package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter is a Redis-backed fixed-window counter keyed per client.
// When Redis is unreachable the limiter fails open; abuse protection
// degrades the same way mail and storage do.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *zap.Logger
}

// NewLimiter builds a limiter. A nil client or non-positive limit
// disables limiting entirely.
func NewLimiter(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) *Limiter {
	return &Limiter{client: client, limit: limit, window: window, logger: logger}
}

// Allow reports whether the caller identified by key may proceed.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil || l.limit <= 0 {
		return true
	}

	redisKey := "ratelimit:inquiries:" + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Debug("rate limiter unavailable; allowing request", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.logger.Debug("rate limiter expire failed", zap.Error(err))
		}
	}
	return count <= int64(l.limit)
}
