// Package ratelimit implements the fixed-window request counter used on the
// generation path. The store is injected into the middleware so handlers
// never touch package-level state.
package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of one admission check.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration // positive when denied
}

// Store counts requests per key within a fixed window. Implementations
// reset a key's window lazily on the first request that arrives after it
// has elapsed.
type Store interface {
	Allow(ctx context.Context, key string) (Result, error)
}
