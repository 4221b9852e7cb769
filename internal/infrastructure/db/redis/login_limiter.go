package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter counts login attempts per client in fixed windows.
// Key format: login_attempts:<client>
type LoginLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLoginLimiter allows max attempts per client within each window.
func NewLoginLimiter(client *redis.Client, max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, max: int64(max), window: window}
}

// Allow records one attempt for client. When the limit is exceeded it returns
// false and the time left until the window resets.
func (l *LoginLimiter) Allow(ctx context.Context, client string) (bool, time.Duration, error) {
	key := l.key(client)

	// EXPIRE NX runs on every attempt so a key that missed its expiry
	// picks one up on the next call instead of counting forever.
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("login limiter: %w", err)
	}

	count := incr.Val()
	if count <= l.max {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	return false, ttl, nil
}

func (l *LoginLimiter) key(client string) string {
	return "login_attempts:" + client
}
