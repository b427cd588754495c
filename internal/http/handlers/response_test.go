package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-marketplace/internal/services"
)

// envelopeRouter stamps a request id and a buffered request logger the way
// the RequestID and Logger middleware do.
func envelopeRouter(rid string, logs *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	lg := zerolog.New(logs)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Set("logger", &lg)
		c.Next()
	})
	return r
}

func TestFail_EnvelopeAndServerErrorLogging(t *testing.T) {
	var logs bytes.Buffer
	r := envelopeRouter("rid-1", &logs)
	r.GET("/books/:id", func(c *gin.Context) { Fail(c, http.StatusNotFound, ErrCodeNotFound, "book not found") })
	r.POST("/books/:id/purchase", func(c *gin.Context) {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "ledger write failed")
	})

	cases := []struct {
		method, path string
		status       int
		code, msg    string
		logged       bool
	}{
		{http.MethodGet, "/books/nope", http.StatusNotFound, ErrCodeNotFound, "book not found", false},
		{http.MethodPost, "/books/book-1/purchase", http.StatusInternalServerError, ErrCodeInternal, "ledger write failed", true},
	}
	for _, tc := range cases {
		logs.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

		if w.Code != tc.status {
			t.Fatalf("%s %s: status=%d", tc.method, tc.path, w.Code)
		}
		var er ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
		if er != (ErrorResponse{RequestID: "rid-1", Code: tc.code, Message: tc.msg}) {
			t.Fatalf("unexpected envelope: %+v", er)
		}
		if got := strings.Contains(logs.String(), `"level":"error"`); got != tc.logged {
			t.Fatalf("%s: error logged=%v; want %v (%s)", tc.path, got, tc.logged, logs.String())
		}
	}
}

func TestOkAndNoContent(t *testing.T) {
	var logs bytes.Buffer
	r := envelopeRouter("rid-2", &logs)
	r.POST("/books", func(c *gin.Context) { ok(c, http.StatusCreated, gin.H{"id": "book-9"}) })
	r.DELETE("/books/:id", func(c *gin.Context) { noContent(c) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/books", nil))
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"id":"book-9"`) {
		t.Fatalf("ok: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/books/book-9", nil))
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("noContent: %d %q", w.Code, w.Body.String())
	}
}

func TestServiceError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err    error
		status int
		code   string
		msg    string
	}{
		{&services.ValidationError{Field: "title", Message: "Please fill in all required fields"},
			http.StatusUnprocessableEntity, ErrCodeValidationFailed, "Please fill in all required fields"},
		{services.ErrUnauthenticated, http.StatusUnauthorized, ErrCodeUnauthorized, "login required"},
		{fmt.Errorf("wrap: %w", services.ErrItemNotFound), http.StatusNotFound, ErrCodeNotFound, "course not found"},
		{services.ErrPaymentRequired, http.StatusPaymentRequired, ErrCodePaymentRequired, "purchase this item first"},
		{errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeInternal, "disk on fire"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		serviceError(c, tc.err, "course not found")

		var er ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if w.Code != tc.status || er.Code != tc.code || er.Message != tc.msg {
			t.Fatalf("%v: got %d/%s/%q; want %d/%s/%q", tc.err, w.Code, er.Code, er.Message, tc.status, tc.code, tc.msg)
		}
	}
}
