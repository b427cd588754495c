// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements a process-local token-bucket rate limiter with one
// bucket per caller (user id, else client IP) and opportunistic eviction of
// idle buckets. Requests marked as idempotent replays skip the limiter.
//
// Notes:
//   - Limits are per process. Several replicas each grant the full rate.
//   - The limiter protects the store from bursts; it does not authorize.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// keyFunc maps a request to its bucket identity. The returned string must
// be stable for a caller across requests, or each request gets a fresh
// bucket and is never limited.
type keyFunc func(*gin.Context) string

// KeyByUserOrIP keys buckets by "user:<id>" when the caller is identified and
// by "ip:<addr>" otherwise.
//
// The user id comes from UserID, i.e. the X-User-ID header. The prefixes
// keep a user named like an address from sharing that address's bucket.
// Client IP resolution follows gin's trusted-proxy settings.
func KeyByUserOrIP() keyFunc {
	return func(c *gin.Context) string {
		if uid := UserID(c); uid != "" {
			return "user:" + uid
		}
		return "ip:" + c.ClientIP()
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-key token-bucket limiter.
//
// Buckets are created on first use and kept in a map guarded by mu. A bucket
// idle for longer than ttl (10 minutes) is evicted during a periodic sweep
// inside getVisitor, which bounds memory to recently active callers.
//
// RateLimiter is safe for concurrent use.
type RateLimiter struct {
	rps      rate.Limit
	burst    int
	keyFn    keyFunc
	mu       sync.Mutex
	visitors map[string]*visitor

	ttl      time.Duration
	cleanupN uint64
}

// NewRateLimiter constructs a RateLimiter.
//
//   - rps: tokens added per second; 0 admits only the initial burst.
//   - burst: bucket capacity; values <= 0 are coerced to 1.
//   - keyFn: bucket identity, usually KeyByUserOrIP().
//
// Install the result with Handler().
func NewRateLimiter(rps float64, burst int, keyFn keyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		keyFn:    keyFn,
		visitors: make(map[string]*visitor),
		ttl:      10 * time.Minute,
	}
}

// getVisitor returns the limiter for key, creating it if absent. Every 5000
// lookups idle buckets are evicted before the requested one is touched.
func (rl *RateLimiter) getVisitor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.cleanupN++
	if rl.cleanupN >= 5000 {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.cleanupN = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// IsRateBypass reports whether IdempotencyValidator exempted this request.
//
// The flag is only set for a purchase retried with the Idempotency-Key
// stored on the existing purchase, so a replay does not spend a token. A
// new key never sets it.
func IsRateBypass(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyRateBypass)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Handler returns the limiting middleware.
//
// Behavior:
//   - Requests flagged by IsRateBypass pass without taking a token.
//   - Otherwise one token is taken from the caller's bucket; an empty bucket
//     aborts the request with Retry-After: 1 and
//
//	HTTP/1.1 429 Too Many Requests
//	{
//	  "request_id": "<id>",
//	  "code":       "too_many_requests",
//	  "message":    "rate limit exceeded"
//	}
//
// Mount after IdempotencyValidator, which sets the bypass flag.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsRateBypass(c) || rl.getVisitor(rl.keyFn(c)).Allow() {
			c.Next()
			return
		}
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get(requestIDHeader),
			"code":       "too_many_requests",
			"message":    "rate limit exceeded",
		})
	}
}
