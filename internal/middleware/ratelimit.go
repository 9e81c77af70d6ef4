package middleware

import (
	"net/http"
	"strconv"
	"time"

	"campushub/config"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const maxTrackedClients = 10000

// RateLimiter hands out a token bucket per key (client IP). Buckets idle for longer than the
// configured TTL are evicted.
type RateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, cfg.IdleTTL),
		rate:     rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
	}
}

func (r *RateLimiter) Allow(key string) bool {
	limiter, ok := r.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(r.rate, r.burst)
		r.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit returns a middleware that limits by client IP.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", retryAfter(limiter.rate))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func retryAfter(r rate.Limit) string {
	if r <= 0 {
		return "60"
	}
	d := time.Duration(float64(time.Second) / float64(r))
	secs := max(int(d.Round(time.Second)/time.Second), 1)
	return strconv.Itoa(secs)
}
