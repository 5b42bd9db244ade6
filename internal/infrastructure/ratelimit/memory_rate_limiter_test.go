package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedLimiter(start time.Time) (*MemoryRateLimiter, *time.Time) {
	current := start
	limiter := NewMemoryRateLimiter()
	limiter.now = func() time.Time { return current }
	return limiter, &current
}

func TestMemoryRateLimiter_DeniesAboveLimit(t *testing.T) {
	limiter, _ := newClockedLimiter(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("1.2.3.4", 3)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow("1.2.3.4", 3)
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request within the window must be denied")
}

func TestMemoryRateLimiter_AllowsAfterWindowSlides(t *testing.T) {
	limiter, clock := newClockedLimiter(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("1.2.3.4", 3)
		require.NoError(t, err)
		require.True(t, allowed)
	}

	*clock = clock.Add(61 * time.Second)

	allowed, err := limiter.Allow("1.2.3.4", 3)
	require.NoError(t, err)
	assert.True(t, allowed, "request after the window slides must be allowed")
}

func TestMemoryRateLimiter_DeniedRequestNotCounted(t *testing.T) {
	limiter, clock := newClockedLimiter(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow("k", 2)
		require.NoError(t, err)
		require.True(t, allowed)
	}

	// Denied attempts do not extend the window.
	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow("k", 2)
		require.NoError(t, err)
		require.False(t, allowed)
	}

	*clock = clock.Add(61 * time.Second)

	allowed, err := limiter.Allow("k", 2)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newClockedLimiter(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	allowed, err := limiter.Allow("a", 1)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow("a", 1)
	require.NoError(t, err)
	require.False(t, allowed)

	allowed, err = limiter.Allow("b", 1)
	require.NoError(t, err)
	assert.True(t, allowed, "another key keeps its own budget")
}

func TestMemoryRateLimiter_ZeroLimitDisables(t *testing.T) {
	limiter, _ := newClockedLimiter(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow("k", 0)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter, _ := newClockedLimiter(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	allowed, err := limiter.Allow("k", 1)
	require.NoError(t, err)
	require.True(t, allowed)

	require.NoError(t, limiter.Reset("k"))

	allowed, err = limiter.Allow("k", 1)
	require.NoError(t, err)
	assert.True(t, allowed)
}
