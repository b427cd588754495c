package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func serveSecurity(opt SecurityOptions, pre gin.HandlerFunc, req *http.Request) http.Header {
	r := gin.New()
	if pre != nil {
		r.Use(pre)
	}
	r.Use(SecurityHeaders(opt))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Header()
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := serveSecurity(SecurityOptions{}, func(c *gin.Context) {
		c.Header(requestIDHeader, "rid")
		c.Next()
	}, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if h.Get("X-Content-Type-Options") != "nosniff" || h.Get("X-Frame-Options") != "DENY" || h.Get("Referrer-Policy") != "no-referrer" {
		t.Fatalf("baseline missing: %v", h)
	}
	if h.Get("Permissions-Policy") != "" || h.Get("Cache-Control") != "" || h.Get("Strict-Transport-Security") != "" {
		t.Fatalf("unexpected optional headers: %v", h)
	}
	if h.Get("Access-Control-Expose-Headers") != requestIDHeader {
		t.Fatalf("expose header = %q", h.Get("Access-Control-Expose-Headers"))
	}
}

func TestSecurityHeaders_ExposeAppendsOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pre := func(existing string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Header(requestIDHeader, "rid")
			c.Header("Access-Control-Expose-Headers", existing)
			c.Next()
		}
	}
	if got := serveSecurity(SecurityOptions{}, pre("Foo"), httptest.NewRequest(http.MethodGet, "/ok", nil)).Get("Access-Control-Expose-Headers"); got != "Foo, X-Request-ID" {
		t.Fatalf("append: %q", got)
	}
	if got := serveSecurity(SecurityOptions{}, pre("X-Request-ID, Foo"), httptest.NewRequest(http.MethodGet, "/ok", nil)).Get("Access-Control-Expose-Headers"); got != "X-Request-ID, Foo" {
		t.Fatalf("duplicate: %q", got)
	}
}

func TestSecurityHeaders_AllOptionsOverTLS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.TLS = &tls.ConnectionState{}
	h := serveSecurity(SecurityOptions{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour, NoStore: true, EnablePolicy: true}, nil, req)

	if h.Get("Strict-Transport-Security") != "max-age=86400; includeSubDomains; preload" {
		t.Fatalf("hsts = %q", h.Get("Strict-Transport-Security"))
	}
	if h.Get("Cache-Control") != "no-store" || h.Get("X-Permitted-Cross-Domain-Policies") != "none" {
		t.Fatalf("optional headers missing: %v", h)
	}
}

func TestSecurityHeaders_HSTSOnlyOverHTTPS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	opt := SecurityOptions{EnableHSTS: true}

	plain := serveSecurity(opt, nil, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if plain.Get("Strict-Transport-Security") != "" {
		t.Fatal("HSTS must not be sent over plain HTTP")
	}

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Forwarded-Proto", "HTTPS")
	proxied := serveSecurity(opt, nil, req)
	if proxied.Get("Strict-Transport-Security") != "max-age=15552000; includeSubDomains; preload" {
		t.Fatalf("default max-age hsts = %q", proxied.Get("Strict-Transport-Security"))
	}
}
