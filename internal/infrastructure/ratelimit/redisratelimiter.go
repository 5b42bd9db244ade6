package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// allowScript evicts expired entries, then records the request only when the
// window still has room. Denied requests leave the set untouched so the key
// recovers as soon as the window slides past the recorded requests.
var allowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, ARGV[1])
local count = redis.call('ZCARD', KEYS[1])
if count < tonumber(ARGV[2]) then
	redis.call('ZADD', KEYS[1], ARGV[3], ARGV[3])
	redis.call('PEXPIRE', KEYS[1], ARGV[4])
	return 1
end
return 0
`)

// RedisRateLimiter shares the sliding window across instances through a
// Redis sorted set per key, scored by request timestamp.
type RedisRateLimiter struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		ctx:    context.Background(),
	}
}

func (l *RedisRateLimiter) Allow(key string, limit int) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	now := time.Now()
	windowStart := now.Add(-window).UnixNano()
	nowNano := now.UnixNano()

	result, err := allowScript.Run(l.ctx, l.client, []string{l.getKey(key)},
		windowStart, limit, nowNano, window.Milliseconds()*2).Int()
	if err != nil {
		return false, fmt.Errorf("failed to run rate limit script: %w", err)
	}

	return result == 1, nil
}

func (l *RedisRateLimiter) Reset(key string) error {
	if err := l.client.Del(l.ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}
