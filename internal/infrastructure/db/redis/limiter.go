package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindow increments the counter for KEYS[1], starting its window on the
// first hit, and returns {count, ttl_ms}.
var fixedWindow = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	local ttl = redis.call('PTTL', KEYS[1])
	if ttl < 0 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
		ttl = tonumber(ARGV[1])
	end
	return {count, ttl}
`)

// Limiter is a fixed-window request counter backed by Redis.
// Key format: ratelimit:<prefix>:<subject>
type Limiter struct {
	client redis.Scripter
	prefix string
	limit  int64
	window time.Duration
}

// NewLimiter allows limit hits per window for each subject under prefix.
func NewLimiter(client redis.Scripter, prefix string, limit int64, window time.Duration) *Limiter {
	return &Limiter{client: client, prefix: prefix, limit: limit, window: window}
}

// Allow records one hit for subject. When the window is exhausted it returns
// false and how long until the window resets.
func (l *Limiter) Allow(ctx context.Context, subject string) (bool, time.Duration, error) {
	res, err := fixedWindow.Run(ctx, l.client, []string{l.key(subject)}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit: %w", err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("rate limit: unexpected script result %v", res)
	}

	count, ttl := res[0], time.Duration(res[1])*time.Millisecond
	if count > l.limit {
		return false, ttl, nil
	}
	return true, 0, nil
}

func (l *Limiter) key(subject string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.prefix, subject)
}
