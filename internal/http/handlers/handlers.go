// Package handlers exposes the marketplace REST endpoints. Handlers are
// transport-thin: they parse input, resolve the caller identity, call the
// application services and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-marketplace/internal/domain"
	"github.com/tbourn/go-marketplace/internal/http/middleware"
	"github.com/tbourn/go-marketplace/internal/search"
	"github.com/tbourn/go-marketplace/internal/services"
)

//
// Service contracts (context-aware)
//

// CatalogService lists, reads and edits catalog records.
type CatalogService interface {
	Categories() services.Categories
	ListBooks(ctx context.Context, q search.Query) []domain.Book
	ListCourses(ctx context.Context, q search.Query) []domain.Course
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	CreateBook(ctx context.Context, userID string, b domain.Book) (domain.Book, error)
	CreateCourse(ctx context.Context, userID string, c domain.Course) (domain.Course, error)
	UpdateBook(ctx context.Context, id string, patch domain.BookPatch) (domain.Book, error)
	UpdateCourse(ctx context.Context, id string, patch domain.CoursePatch) (domain.Course, error)
	DeleteBook(ctx context.Context, id string) error
	DeleteCourse(ctx context.Context, id string) error
}

// EntitlementService records purchases and gated downloads/accesses.
type EntitlementService interface {
	Purchase(ctx context.Context, userID, itemID string, kind domain.ItemType, key string) (domain.Purchase, bool, error)
	HasPurchased(ctx context.Context, userID, itemID string) bool
	DownloadBook(ctx context.Context, userID, bookID string) (domain.Book, error)
	AccessCourse(ctx context.Context, userID, courseID string) (domain.Course, error)
	ListPurchasedItems(ctx context.Context, userID string) []services.PurchasedItem
	ListDownloads(ctx context.Context, userID string) []domain.Book
	ListAccessed(ctx context.Context, userID string) []domain.Course
}

// OwnershipService answers uploader queries.
type OwnershipService interface {
	ListUploadsFor(ctx context.Context, userID string) (services.Uploads, error)
}

// Handlers groups the HTTP endpoints.
type Handlers struct {
	catalog     CatalogService
	entitlement EntitlementService
	ownership   OwnershipService
}

// New constructs a Handlers bound to the given services.
func New(catalog CatalogService, entitlement EntitlementService, ownership OwnershipService) *Handlers {
	return &Handlers{catalog: catalog, entitlement: entitlement, ownership: ownership}
}

// requireUser returns the caller id, or writes 401 and returns false.
func requireUser(c *gin.Context) (string, bool) {
	uid := middleware.UserID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "login required")
		return "", false
	}
	return uid, true
}

// parseQuery reads ?q=&category=&price= into a search.Query.
func parseQuery(c *gin.Context) (search.Query, bool) {
	paid, err := search.ParsePaidFilter(c.Query("price"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return search.Query{}, false
	}
	return search.Query{
		Term:     c.Query("q"),
		Category: c.Query("category"),
		Paid:     paid,
	}, true
}

// Categories godoc
// @ID          listCategories
// @Summary     List categories
// @Description Returns the selectable book and course categories.
// @Tags        Catalog
// @Produce     json
// @Success     200  {object}  services.Categories
// @Router      /categories [get]
func (h *Handlers) Categories(c *gin.Context) {
	ok(c, http.StatusOK, h.catalog.Categories())
}
