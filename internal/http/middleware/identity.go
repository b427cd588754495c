package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the caller identity from the upstream auth layer.
const HeaderUserID = "X-User-ID"

// ctxKeyUserID is where an upstream auth middleware stores the user id.
const ctxKeyUserID = "userID"

// UserID returns the caller identity: the "userID" context value when an auth
// middleware set one, otherwise the X-User-ID header. It returns "" for
// anonymous requests.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c.Request != nil {
		return strings.TrimSpace(c.GetHeader(HeaderUserID))
	}
	return ""
}
