package ratelimit

import "time"

// window is the sliding interval every limiter implementation enforces.
const window = time.Minute

// RateLimiter decides whether a keyed request may proceed. Keys are opaque;
// the HTTP layer keys by client address.
type RateLimiter interface {
	Allow(key string, limit int) (bool, error)
	Reset(key string) error
}
