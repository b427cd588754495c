// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides request correlation, structured access logging and
// panic recovery:
//
//   - RequestID() reuses or generates X-Request-ID and stores it in the
//     Gin context.
//   - Logger() builds a request-scoped zerolog.Logger, stores it in the Gin
//     context and in the request context.Context (so the service and repo
//     layers log through zerolog.Ctx), and emits one access line per
//     request with sensitive headers masked and identifiers scrubbed from the
//     query string.
//   - Recovery() turns panics into the JSON 500 envelope.
//   - LoggerFrom() returns the request-scoped logger.
//
// Recommended order: RequestID, Logger, Recovery.
package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	requestIDKey      = "requestID"
	requestIDHeader   = "X-Request-ID"
	loggerKey         = "logger"
	maxQueryLogLength = 2048
)

// RequestID attaches (or propagates) a correlation identifier per request.
//
// Behavior:
//   - An incoming X-Request-ID header is reused as-is, so ids minted by a
//     gateway or the client survive end to end.
//   - Otherwise a random UUIDv4 is generated.
//   - The id is stored in the Gin context (read by Logger and Recovery) and
//     echoed on the response as X-Request-ID.
//
// Every error envelope written by the handlers carries this id in
// "request_id", so a client report can be matched to the access line.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// LogOptions configures Logger.
//
// The defaults log no headers at all. When LogHeaders is enabled, every
// header is emitted with Authorization, Cookie, Set-Cookie and the names in
// MaskHeaders replaced by "[REDACTED]".
type LogOptions struct {
	// MaskHeaders are logged as "[REDACTED]" in addition to Authorization,
	// Cookie and Set-Cookie. Matching is case-insensitive.
	MaskHeaders []string
	// LogHeaders adds the (masked) request headers to each access line.
	LogHeaders bool
}

// Logger writes a structured access log for each request.
//
// Behavior:
//   - Builds a zerolog.Logger carrying request_id, user_id, method, route
//     (the registered pattern, falling back to the raw path), remote_ip,
//     user_agent, the redacted query and bytes_in.
//   - Stores that logger in the Gin context (see LoggerFrom) and in the
//     request context.Context, so services and the repo layer pick it up
//     through zerolog.Ctx.
//   - After the handler chain, emits one "request" line with status,
//     latency and bytes_out.
//
// Level:
//   - error when Gin recorded errors or the status is 5xx
//   - warn for 4xx
//   - info otherwise
//
// Notes:
//   - The query string is scrubbed of UUIDs, e-mails and phone numbers
//     and capped at 2 KiB.
//   - Mount after RequestID so the id is available.
func Logger(opts LogOptions) gin.HandlerFunc {
	masked := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			masked[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		rid, _ := c.Get(requestIDKey)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		l := log.With().
			Str("request_id", asString(rid)).
			Str("user_id", UserID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("query", truncate(redact(c.Request.URL.RawQuery), maxQueryLogLength)).
			Int64("bytes_in", c.Request.ContentLength).
			Logger()

		c.Set(loggerKey, &l)
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		var headers map[string]string
		if opts.LogHeaders {
			headers = scrubHeaders(c.Request.Header, masked)
		}

		c.Next()

		ev := l.With().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		var e *zerolog.Event
		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			e = ev.Error().Str("errors", c.Errors.String())
		case status >= 500:
			e = ev.Error()
		case status >= 400:
			e = ev.Warn()
		default:
			e = ev.Info()
		}
		if headers != nil {
			e = e.Interface("headers", headers)
		}
		e.Msg("request")
	}
}

// Recovery intercepts panics, logs a stack trace, and returns a JSON 500.
//
// Behavior:
//   - The panic value and debug.Stack() are logged at error level through
//     the request-scoped logger.
//   - If nothing was written yet, the client receives the standard error
//     envelope:
//
//	HTTP/1.1 500 Internal Server Error
//	{
//	  "request_id": "<id>",
//	  "code":       "internal_error",
//	  "message":    "internal server error"
//	}
//
//   - If the handler already started the response, the request is only
//     aborted with status 500; the partial body cannot be replaced.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				rid := asString(c.Value(requestIDKey))
				LoggerFrom(c).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("request_id", rid).
					Msg("panic recovered")

				if !c.Writer.Written() {
					c.Header(requestIDHeader, rid)
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"request_id": rid,
						"code":       "internal_error",
						"message":    "internal server error",
					})
					return
				}
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger stored by Logger.
//
// Handlers use it for error lines so they carry the request fields. When
// Logger is not mounted (unit tests, router fallbacks) it returns a copy of
// the global logger, never nil.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// truncate caps s at max bytes; max <= 0 disables truncation.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
