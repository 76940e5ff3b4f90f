package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLoginLimit  = 20
	defaultLoginWindow = time.Minute
)

// LoginLimiter throttles login attempts per client IP using a fixed-window
// counter in Redis. Key format: login_attempts:<ip>
type LoginLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive limit or window fall back to 20 attempts per minute.
func NewLoginLimiter(client *redis.Client, limit int, window time.Duration) *LoginLimiter {
	if limit <= 0 {
		limit = defaultLoginLimit
	}
	if window <= 0 {
		window = defaultLoginWindow
	}
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow records one attempt for ip and reports whether it is within the
// window limit. The window starts on the first attempt and expires with the
// key.
func (l *LoginLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	key := l.key(ip)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return n <= int64(l.limit), nil
}

func (l *LoginLimiter) key(ip string) string {
	return "login_attempts:" + ip
}
