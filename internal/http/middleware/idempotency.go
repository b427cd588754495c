// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements Idempotency-Key support for purchase-style POST
// endpoints. It validates the header, stashes the key in the Gin context and,
// on the routes listed in IdempotencyOptions.ReplayRoutes, asks a
// caller-supplied lookup whether an operation created with the same key has
// already completed. A completed operation is marked as a replay and exempted
// from rate limiting; the handler still runs and returns the stored result.
package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey is the request header carrying the client's key.
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderIdempotentReplay is set on responses served for a replayed key.
const HeaderIdempotentReplay = "Idempotent-Replayed"

const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay"
	ctxKeyRateBypass = "rate.bypass"
)

var defaultKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// GetIdempotencyKey returns the validated key stored by IdempotencyValidator.
//
// Behavior:
//   - ok is false when the request carried no key, was not a POST, or the
//     validator is not mounted.
//   - Handlers pass the key down so the service can persist it with the
//     record it creates; later lookups match against that stored key.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether the lookup found the operation already complete
// for this request's key. It is only ever true on ReplayRoutes.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IdempotencyOptions configures header validation.
type IdempotencyOptions struct {
	// MaxLen caps the key length. Values <= 0 default to 200.
	MaxLen int
	// Pattern restricts allowed characters; nil means ^[A-Za-z0-9._~\-:]+$.
	Pattern *regexp.Regexp
	// ReplayRoutes lists the full Gin route patterns (c.FullPath(), e.g.
	// "/api/v1/books/:id/purchase") on which the lookup is consulted. The
	// lookup never runs elsewhere, so no other route can earn a rate bypass.
	ReplayRoutes []string
}

// IdempotencyLookup reports whether the operation on itemID (the :id route
// parameter) was already completed for userID by a request carrying key.
// Implementations must compare against a key stored with the operation, not
// merely check that the operation exists. Errors are treated as a miss.
type IdempotencyLookup func(ctx context.Context, userID, itemID, key string) (bool, error)

// IdempotencyValidator validates Idempotency-Key on POST requests.
//
// Behavior:
//   - No header, or a non-POST request: no-op.
//   - Invalid header: 400 bad_idempotency_key.
//   - Valid header: the key is stored for GetIdempotencyKey.
//   - On a ReplayRoutes route with an identified caller, a lookup hit sets
//     the replay and rate-bypass flags and the Idempotent-Replayed header.
//
// Notes:
//   - Mount before the rate limiter; the bypass flag is read there.
//   - Anonymous requests never hit the lookup.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = defaultKeyPattern
	}
	replayRoutes := make(map[string]struct{}, len(opts.ReplayRoutes))
	for _, rt := range opts.ReplayRoutes {
		replayRoutes[rt] = struct{}{}
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "bad_idempotency_key",
				"message":    "invalid Idempotency-Key",
			})
			return
		}
		c.Set(ctxKeyIdemKey, key)

		_, replayable := replayRoutes[c.FullPath()]
		uid := UserID(c)
		itemID := c.Param("id")
		if replayable && lookup != nil && uid != "" && itemID != "" {
			if done, err := lookup(c.Request.Context(), uid, itemID, key); err == nil && done {
				c.Set(ctxKeyIdemReplay, true)
				c.Set(ctxKeyRateBypass, true)
				c.Header(HeaderIdempotentReplay, "true")
			}
		}

		c.Next()
	}
}
