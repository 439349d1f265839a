package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// LoginLimiter counts failed login attempts per username/address pair in
// Redis. Key format: login_fail:<username>:<addr>. The counter expires with
// the window, so a quiet quarter hour clears the slate.
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive limits fall back to the defaults.
func NewLoginLimiter(client *redis.Client, maxFailures int64, window time.Duration) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxFailures: maxFailures, window: window}
}

// TooManyFailures reports whether the pair has exhausted its attempts within
// the current window.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, username, addr string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username, addr)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n >= l.maxFailures, nil
}

// RecordFailure bumps the failure counter. The window is anchored at the
// first failure: the TTL is set only when the key is created.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username, addr string) error {
	key := l.key(username, addr)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username, addr string) error {
	return l.client.Del(ctx, l.key(username, addr)).Err()
}

func (l *LoginLimiter) key(username, addr string) string {
	return fmt.Sprintf("login_fail:%s:%s", username, addr)
}
