package ports

import "context"

// LockoutTracker counts consecutive failed login attempts per account key.
// Counters expire on their own after the configured lockout window.
type LockoutTracker interface {
	// Failures returns the current failure count for the key.
	Failures(ctx context.Context, key string) (int, error)
	// RecordFailure increments the counter and returns the new count.
	RecordFailure(ctx context.Context, key string) (int, error)
	// Clear resets the counter after a successful login.
	Clear(ctx context.Context, key string) error
}
