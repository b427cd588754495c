package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-marketplace/internal/kv"
	"github.com/tbourn/go-marketplace/internal/repo"
	"github.com/tbourn/go-marketplace/internal/services"
)

// newTestAPI wires real services over a seeded in-memory store.
func newTestAPI(t *testing.T) (*gin.Engine, *repo.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := repo.NewStore(kv.NewMemory())
	st.Initialize(context.Background(), repo.DefaultSeed())

	h := New(
		services.NewCatalogService(st),
		services.NewEntitlementService(st),
		services.NewOwnershipService(st),
	)

	r := gin.New()
	r.GET("/categories", h.Categories)

	r.GET("/books", h.ListBooks)
	r.POST("/books", h.CreateBook)
	r.GET("/books/:id", h.GetBook)
	r.PATCH("/books/:id", h.UpdateBook)
	r.DELETE("/books/:id", h.DeleteBook)
	r.POST("/books/:id/purchase", h.PurchaseBook)
	r.POST("/books/:id/download", h.DownloadBook)

	r.GET("/courses", h.ListCourses)
	r.POST("/courses", h.CreateCourse)
	r.GET("/courses/:id", h.GetCourse)
	r.PATCH("/courses/:id", h.UpdateCourse)
	r.DELETE("/courses/:id", h.DeleteCourse)
	r.POST("/courses/:id/purchase", h.PurchaseCourse)
	r.POST("/courses/:id/access", h.AccessCourse)

	r.GET("/me/purchases", h.MyPurchases)
	r.GET("/me/downloads", h.MyDownloads)
	r.GET("/me/courses", h.MyCourses)
	r.GET("/me/uploads", h.MyUploads)
	return r, st
}

// do performs a request; user "" sends no identity header.
func do(t *testing.T, r http.Handler, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatalf("encode body: %v", err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}
