package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "login_attempts:"

// Limiter counts attempts per key in a fixed window stored in redis
type Limiter struct {
	client      *goredis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLimiter returns Limiter
func NewLimiter(client *goredis.Client, maxAttempts int, window time.Duration) *Limiter {
	return &Limiter{client: client, maxAttempts: int64(maxAttempts), window: window}
}

// Allow records an attempt and reports whether it fits in the current window
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if l.maxAttempts <= 0 {
		return true, 0, nil
	}

	count, ttl, err := l.incrementWindow(ctx, keyPrefix+key)
	if err != nil {
		return false, 0, err
	}
	if count > l.maxAttempts {
		return false, ttl, nil
	}
	return true, 0, nil
}

func (l *Limiter) incrementWindow(ctx context.Context, key string) (int64, time.Duration, error) {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("increment rate key: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return 0, 0, fmt.Errorf("set rate key ttl: %w", err)
		}
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("read rate key ttl: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	return count, ttl, nil
}
