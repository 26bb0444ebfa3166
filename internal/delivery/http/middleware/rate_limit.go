package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/pkg/redis"
)

// RateLimitConfig controls one rate limiter instance.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
	// FailClosed rejects requests when Redis errors instead of falling back
	// to the in-memory counter. Used on login.
	FailClosed bool
}

// windowCounter is the in-memory fallback when Redis is not configured.
type windowCounter struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	counters    sync.Map
	sweeperOnce sync.Once
)

// Atomic INCR with TTL set on the first hit of each window.
// Returns [count, ttl_seconds].
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('TTL', KEYS[1])}
`

func startSweeper() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			counters.Range(func(key, value interface{}) bool {
				entry := value.(*windowCounter)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					counters.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit limits requests per client IP. Redis backs the counter when
// available so the limit holds across instances; otherwise a process-local
// counter is used.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	sweeperOnce.Do(startSweeper)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()
		now := time.Now()

		var count int
		var resetAt time.Time

		if client := redis.Client(); client != nil {
			var err error
			count, resetAt, err = incrRedis(c.Request.Context(), client, key, cfg)
			if err != nil {
				if cfg.FailClosed {
					slog.Error("rate limit backend unavailable", "path", c.FullPath(), "error", err)
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = incrMemory(key, cfg, now)
			}
		} else {
			count, resetAt = incrMemory(key, cfg, now)
		}

		if count > cfg.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			slog.Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.FullPath())
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		remaining := cfg.Limit - count
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
		c.Next()
	}
}

func incrRedis(ctx context.Context, client *goredis.Client, key string, cfg RateLimitConfig) (int, time.Time, error) {
	result, err := client.Eval(ctx, rateLimitScript, []string{key}, int(cfg.Window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: %w", err)
	}
	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: unexpected reply %T", result)
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

func incrMemory(key string, cfg RateLimitConfig, now time.Time) (int, time.Time) {
	entryI, _ := counters.LoadOrStore(key, &windowCounter{resetAt: now.Add(cfg.Window)})
	entry := entryI.(*windowCounter)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(cfg.Window)
	}
	entry.count++
	return entry.count, entry.resetAt
}
