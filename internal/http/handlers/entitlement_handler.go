// Entitlement and library HTTP handlers.
//
// This file exposes:
//   - POST /books/{id}/purchase, /courses/{id}/purchase  (idempotent purchase)
//   - POST /books/{id}/download                          (gated download)
//   - POST /courses/{id}/access                          (gated access)
//   - GET  /me/purchases, /me/downloads, /me/courses, /me/uploads
//
// Purchases answer 201 the first time and 200 with the original row after.
// Paid items without a purchase answer 402 payment_required.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-marketplace/internal/domain"
	"github.com/tbourn/go-marketplace/internal/http/middleware"
	"github.com/tbourn/go-marketplace/internal/services"
)

//
// DTOs
//

// PurchaseResponse is the result of a purchase call.
type PurchaseResponse struct {
	domain.Purchase
	// Created is false when the user already owned the item.
	Created bool `json:"created" example:"true"`
}

// DownloadResponse carries the book the caller may now fetch.
type DownloadResponse struct {
	Book    BookView `json:"book"`
	FileURL string   `json:"fileUrl,omitempty"`
}

// AccessResponse carries the course the caller may now open.
type AccessResponse struct {
	Course      CourseView `json:"course"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	MaterialURL string     `json:"materialUrl,omitempty"`
}

// PurchasedItemView is a purchase joined with its current catalog record.
type PurchasedItemView struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"itemId"`
	ItemType     domain.ItemType `json:"itemType"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	Book         *BookView       `json:"book,omitempty"`
	Course       *CourseView     `json:"course,omitempty"`
}

// PurchasesResponse lists the caller's purchased items.
type PurchasesResponse struct {
	Items []PurchasedItemView `json:"items"`
}

// UploadsResponse lists the caller's uploads.
type UploadsResponse struct {
	Books   []BookView   `json:"books"`
	Courses []CourseView `json:"courses"`
}

//
// Purchases
//

// PurchaseBook godoc
// @ID          purchaseBook
// @Summary     Purchase a book
// @Description Records a purchase of the book by the caller. Repeating the call returns the original purchase.
// @Tags        Entitlements
// @Produce     json
// @Param       X-User-ID        header  string  true   "User ID"          example(user123)
// @Param       Idempotency-Key  header  string  false  "Idempotency key"  example(order-42)
// @Param       id               path    string  true   "Book ID"          example(book-2)
// @Success     201  {object}  handlers.PurchaseResponse  "Purchased"
// @Success     200  {object}  handlers.PurchaseResponse  "Already owned"
// @Failure     401  {object}  handlers.ErrorResponse     "Login required"
// @Failure     404  {object}  handlers.ErrorResponse     "Book not found"
// @Router      /books/{id}/purchase [post]
func (h *Handlers) PurchaseBook(c *gin.Context) {
	h.purchase(c, domain.ItemBook, "book not found")
}

// PurchaseCourse godoc
// @ID          purchaseCourse
// @Summary     Purchase a course
// @Tags        Entitlements
// @Produce     json
// @Param       X-User-ID        header  string  true   "User ID"          example(user123)
// @Param       Idempotency-Key  header  string  false  "Idempotency key"  example(order-43)
// @Param       id               path    string  true   "Course ID"        example(course-2)
// @Success     201  {object}  handlers.PurchaseResponse  "Purchased"
// @Success     200  {object}  handlers.PurchaseResponse  "Already owned"
// @Failure     401  {object}  handlers.ErrorResponse     "Login required"
// @Failure     404  {object}  handlers.ErrorResponse     "Course not found"
// @Router      /courses/{id}/purchase [post]
func (h *Handlers) PurchaseCourse(c *gin.Context) {
	h.purchase(c, domain.ItemCourse, "course not found")
}

func (h *Handlers) purchase(c *gin.Context, kind domain.ItemType, notFound string) {
	uid, authed := requireUser(c)
	if !authed {
		return
	}
	key, _ := middleware.GetIdempotencyKey(c)
	p, created, err := h.entitlement.Purchase(c.Request.Context(), uid, c.Param("id"), kind, key)
	if err != nil {
		serviceError(c, err, notFound)
		return
	}
	if middleware.IsReplay(c) {
		middleware.LoggerFrom(c).Debug().Str("purchase_id", p.ID).Msg("idempotent purchase replayed")
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ok(c, status, PurchaseResponse{Purchase: p, Created: created})
}

//
// Gated consumption
//

// DownloadBook godoc
// @ID          downloadBook
// @Summary     Download a book
// @Description Records a download and returns the file reference. Paid books require a purchase.
// @Tags        Entitlements
// @Produce     json
// @Param       X-User-ID  header  string  true  "User ID"  example(user123)
// @Param       id         path    string  true  "Book ID"  example(book-1)
// @Success     200  {object}  handlers.DownloadResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Failure     402  {object}  handlers.ErrorResponse  "Purchase required"
// @Failure     404  {object}  handlers.ErrorResponse  "Book not found"
// @Router      /books/{id}/download [post]
func (h *Handlers) DownloadBook(c *gin.Context) {
	uid, authed := requireUser(c)
	if !authed {
		return
	}
	b, err := h.entitlement.DownloadBook(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		serviceError(c, err, "book not found")
		return
	}
	ok(c, http.StatusOK, DownloadResponse{Book: bookView(b), FileURL: b.FileURL})
}

// AccessCourse godoc
// @ID          accessCourse
// @Summary     Open a course
// @Description Records a course access and returns its material references. Paid courses require a purchase.
// @Tags        Entitlements
// @Produce     json
// @Param       X-User-ID  header  string  true  "User ID"    example(user123)
// @Param       id         path    string  true  "Course ID"  example(course-3)
// @Success     200  {object}  handlers.AccessResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Failure     402  {object}  handlers.ErrorResponse  "Purchase required"
// @Failure     404  {object}  handlers.ErrorResponse  "Course not found"
// @Router      /courses/{id}/access [post]
func (h *Handlers) AccessCourse(c *gin.Context) {
	uid, authed := requireUser(c)
	if !authed {
		return
	}
	co, err := h.entitlement.AccessCourse(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		serviceError(c, err, "course not found")
		return
	}
	ok(c, http.StatusOK, AccessResponse{Course: courseView(co), VideoURL: co.VideoURL, MaterialURL: co.MaterialURL})
}

//
// Library views
//

// MyPurchases godoc
// @ID          myPurchases
// @Summary     List my purchases
// @Description Purchases joined with the current catalog; items that were deleted are omitted.
// @Tags        Library
// @Produce     json
// @Param       X-User-ID  header  string  true  "User ID"  example(user123)
// @Success     200  {object}  handlers.PurchasesResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Router      /me/purchases [get]
func (h *Handlers) MyPurchases(c *gin.Context) {
	uid, authed := requireUser(c)
	if !authed {
		return
	}
	items := h.entitlement.ListPurchasedItems(c.Request.Context(), uid)
	out := make([]PurchasedItemView, 0, len(items))
	for _, it := range items {
		out = append(out, purchasedItemView(it))
	}
	ok(c, http.StatusOK, PurchasesResponse{Items: out})
}

// MyDownloads godoc
// @ID          myDownloads
// @Summary     List my downloaded books
// @Tags        Library
// @Produce     json
// @Param       X-User-ID  header  string  true  "User ID"  example(user123)
// @Success     200  {object}  handlers.ListBooksResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Router      /me/downloads [get]
func (h *Handlers) MyDownloads(c *gin.Context) {
	uid, authed := requireUser(c)
	if !authed {
		return
	}
	ok(c, http.StatusOK, ListBooksResponse{Books: bookViews(h.entitlement.ListDownloads(c.Request.Context(), uid))})
}

// MyCourses godoc
// @ID          myCourses
// @Summary     List my accessed courses
// @Tags        Library
// @Produce     json
// @Param       X-User-ID  header  string  true  "User ID"  example(user123)
// @Success     200  {object}  handlers.ListCoursesResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Router      /me/courses [get]
func (h *Handlers) MyCourses(c *gin.Context) {
	uid, authed := requireUser(c)
	if !authed {
		return
	}
	ok(c, http.StatusOK, ListCoursesResponse{Courses: courseViews(h.entitlement.ListAccessed(c.Request.Context(), uid))})
}

// MyUploads godoc
// @ID          myUploads
// @Summary     List my uploads
// @Tags        Library
// @Produce     json
// @Param       X-User-ID  header  string  true  "User ID"  example(user123)
// @Success     200  {object}  handlers.UploadsResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Router      /me/uploads [get]
func (h *Handlers) MyUploads(c *gin.Context) {
	uid, authed := requireUser(c)
	if !authed {
		return
	}
	up, err := h.ownership.ListUploadsFor(c.Request.Context(), uid)
	if err != nil {
		serviceError(c, err, "user not found")
		return
	}
	ok(c, http.StatusOK, UploadsResponse{Books: bookViews(up.Books), Courses: courseViews(up.Courses)})
}

func purchasedItemView(it services.PurchasedItem) PurchasedItemView {
	v := PurchasedItemView{
		ID:           it.ID,
		ItemID:       it.ItemID,
		ItemType:     it.ItemType,
		PurchaseDate: it.PurchaseDate,
	}
	if it.Book != nil {
		bv := bookView(*it.Book)
		v.Book = &bv
	}
	if it.Course != nil {
		cv := courseView(*it.Course)
		v.Course = &cv
	}
	return v
}
