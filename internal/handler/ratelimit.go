package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = time.Hour

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	rate      rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows reqsPerWindow requests per client within window.
func NewRateLimiter(reqsPerWindow int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Every(window / time.Duration(max(reqsPerWindow, 1))),
		burst:    reqsPerWindow,
		now:      time.Now,
	}
}

// Allow reports whether a request from ip may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	now := rl.now()
	if now.Sub(rl.lastSweep) > limiterIdleTTL {
		rl.sweep(now)
	}

	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastAccess = now
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.AllowN(now, 1)
}

// sweep drops limiters idle for longer than limiterIdleTTL. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time) {
	threshold := now.Add(-limiterIdleTTL)
	for ip, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, ip)
		}
	}
	rl.lastSweep = now
}

// RateLimit rejects clients that exceed rl with 429. A nil limiter lets everything through.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl != nil && !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
