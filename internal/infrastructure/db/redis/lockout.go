package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultLockoutWindow = 15 * time.Minute

// LockoutTracker counts failed login attempts per account in Redis.
// Key format: lockout:<email>. The counter expires after the lockout window,
// which is what unlocks the account again.
type LockoutTracker struct {
	client *redis.Client
	window time.Duration
}

// NewLockoutTracker creates a LockoutTracker wrapping the given Redis client.
// window <= 0 falls back to 15 minutes.
func NewLockoutTracker(client *redis.Client, window time.Duration) *LockoutTracker {
	if window <= 0 {
		window = defaultLockoutWindow
	}
	return &LockoutTracker{client: client, window: window}
}

// Failures returns the current failure count for the key; 0 when absent.
func (t *LockoutTracker) Failures(ctx context.Context, key string) (int, error) {
	n, err := t.client.Get(ctx, t.key(key)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("lockout get: %w", err)
	}
	return n, nil
}

// RecordFailure increments the counter and (re)arms the expiry window, so the
// account unlocks only after a quiet period.
func (t *LockoutTracker) RecordFailure(ctx context.Context, key string) (int, error) {
	k := t.key(key)
	n, err := t.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("lockout incr: %w", err)
	}
	if err := t.client.Expire(ctx, k, t.window).Err(); err != nil {
		return int(n), fmt.Errorf("lockout expire: %w", err)
	}
	return int(n), nil
}

// Clear resets the counter after a successful login.
func (t *LockoutTracker) Clear(ctx context.Context, key string) error {
	return t.client.Del(ctx, t.key(key)).Err()
}

func (t *LockoutTracker) key(account string) string {
	return "lockout:" + account
}
