package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter throttles credential-guessing traffic with a fixed window per
// client IP and path, counted in redis. A nil Limiter is a no-op so the
// server runs without redis configured.
type Limiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func New(addr, password string, max int64, window time.Duration) *Limiter {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &Limiter{client: client, max: max, window: window}
}

func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		key := "rate:" + c.ClientIP() + ":" + c.FullPath()
		ctx := c.Request.Context()

		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			// redis being down must not take auth down with it
			c.Next()
			return
		}
		if count == 1 {
			l.client.Expire(ctx, key, l.window)
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(l.max, 10))
		remaining := l.max - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		if ttl, err := l.client.TTL(ctx, key).Result(); err == nil && ttl > 0 {
			c.Header("X-RateLimit-Reset", strconv.Itoa(int(ttl.Seconds())))
		}

		if count > l.max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
