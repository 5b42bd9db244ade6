package ratelimit

import (
	"sync"
	"time"
)

// MemoryRateLimiter is a per-process sliding-window limiter. Each key holds
// the timestamps of its requests within the last window; a request is allowed
// when, after evicting expired timestamps, fewer than limit remain. Check,
// eviction and append happen under one lock so concurrent requests for the
// same key serialize.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	buckets map[string][]time.Time
	now     func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		buckets: make(map[string][]time.Time),
		now:     time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(key string, limit int) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	kept := l.buckets[key][:0]
	for _, ts := range l.buckets[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= limit {
		l.buckets[key] = kept
		return false, nil
	}

	l.buckets[key] = append(kept, now)
	return true, nil
}

func (l *MemoryRateLimiter) Reset(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
	return nil
}
