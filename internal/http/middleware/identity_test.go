package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestUserID_ContextThenHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if got := UserID(c); got != "" {
		t.Fatalf("anonymous request should have no user, got %q", got)
	}

	c.Request.Header.Set(HeaderUserID, "  header-user ")
	if got := UserID(c); got != "header-user" {
		t.Fatalf("header identity = %q", got)
	}

	c.Set("userID", "ctx-user")
	if got := UserID(c); got != "ctx-user" {
		t.Fatalf("context identity should win, got %q", got)
	}

	c.Set("userID", 42)
	if got := UserID(c); got != "header-user" {
		t.Fatalf("non-string context value should fall back to header, got %q", got)
	}
}
