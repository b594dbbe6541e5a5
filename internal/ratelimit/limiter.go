// Package ratelimit implements a fixed-window request counter on Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "ratelimit:"

// counterKV is the slice of redis the limiter uses, satisfied by *redis.Client.
type counterKV interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Limiter counts requests per subject in fixed windows. Redis failures fail
// open: rate limiting protects capacity, it must not become an outage of its
// own.
type Limiter struct {
	kv        counterKV
	limit     int64
	window    time.Duration
	opTimeout time.Duration
	logger    zerolog.Logger
}

// NewLimiter returns a limiter allowing limit requests per window per subject.
func NewLimiter(kv counterKV, limit int64, window time.Duration, logger zerolog.Logger) *Limiter {
	return &Limiter{
		kv:        kv,
		limit:     limit,
		window:    window,
		opTimeout: 2 * time.Second,
		logger:    logger,
	}
}

// Allow reports whether the subject may proceed. The window key embeds the
// current window number, so counters reset without cleanup jobs.
func (l *Limiter) Allow(ctx context.Context, subject string) bool {
	ctx, cancel := context.WithTimeout(ctx, l.opTimeout)
	defer cancel()

	window := time.Now().Unix() / int64(l.window.Seconds())
	key := fmt.Sprintf("%s%s:%d", keyPrefix, subject, window)

	count, err := l.kv.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn().Err(err).Str("subject", subject).Msg("rate limit check failed, allowing")
		return true
	}
	if count == 1 {
		if err := l.kv.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn().Err(err).Str("key", key).Msg("rate limit expire failed")
		}
	}
	return count <= l.limit
}
