// Catalog HTTP handlers.
//
// This file exposes REST endpoints for books and courses:
//   - GET    /books, /courses             (filtered list)
//   - GET    /books/{id}, /courses/{id}   (one record)
//   - POST   /books, /courses             (upload)
//   - PATCH  /books/{id}, /courses/{id}   (partial update)
//   - DELETE /books/{id}, /courses/{id}   (remove)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-marketplace/internal/domain"
	"github.com/tbourn/go-marketplace/internal/pricing"
)

//
// DTOs
//

// BookView is a book as served to clients, with its display price.
type BookView struct {
	domain.Book
	DisplayPrice string `json:"displayPrice" example:"$9.99"`
}

// CourseView is a course as served to clients, with its display price.
type CourseView struct {
	domain.Course
	DisplayPrice string `json:"displayPrice" example:"Free"`
}

// ListBooksResponse wraps a filtered book listing.
type ListBooksResponse struct {
	Books []BookView `json:"books"`
}

// ListCoursesResponse wraps a filtered course listing.
type ListCoursesResponse struct {
	Courses []CourseView `json:"courses"`
}

// CreateBookRequest is the upload payload for a book.
type CreateBookRequest struct {
	Title       string  `json:"title"       example:"The Go Programming Language"`
	Author      string  `json:"author"      example:"Alan Donovan"`
	Description string  `json:"description" example:"A thorough introduction to Go."`
	Price       float64 `json:"price"       example:"29.99"`
	Currency    string  `json:"currency"    example:"USD"`
	CoverImage  string  `json:"coverImage"`
	Category    string  `json:"category"    example:"Technology"`
	IsPaid      bool    `json:"isPaid"      example:"true"`
	FileURL     string  `json:"fileUrl"`
}

// CreateCourseRequest is the upload payload for a course.
type CreateCourseRequest struct {
	Title       string  `json:"title"       example:"Go Concurrency"`
	Instructor  string  `json:"instructor"  example:"Jane Doe"`
	Description string  `json:"description" example:"Goroutines and channels."`
	Price       float64 `json:"price"       example:"49.99"`
	Currency    string  `json:"currency"    example:"USD"`
	CoverImage  string  `json:"coverImage"`
	Category    string  `json:"category"    example:"Programming"`
	IsPaid      bool    `json:"isPaid"      example:"true"`
	VideoURL    string  `json:"videoUrl"    example:"https://videos.example.com/go"`
	MaterialURL string  `json:"materialUrl"`
}

func bookView(b domain.Book) BookView {
	return BookView{Book: b, DisplayPrice: pricing.Book(b)}
}

func courseView(c domain.Course) CourseView {
	return CourseView{Course: c, DisplayPrice: pricing.Course(c)}
}

func bookViews(bs []domain.Book) []BookView {
	out := make([]BookView, len(bs))
	for i, b := range bs {
		out[i] = bookView(b)
	}
	return out
}

func courseViews(cs []domain.Course) []CourseView {
	out := make([]CourseView, len(cs))
	for i, c := range cs {
		out[i] = courseView(c)
	}
	return out
}

//
// Books
//

// ListBooks godoc
// @ID          listBooks
// @Summary     List books
// @Description Returns the books matching the optional term, category and price filters, in catalog order.
// @Tags        Books
// @Produce     json
// @Param       q         query  string  false  "Case-insensitive search over title, author and description"
// @Param       category  query  string  false  "Exact category, or all"
// @Param       price     query  string  false  "all, free or paid"  Enums(all, free, paid)
// @Success     200  {object}  handlers.ListBooksResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /books [get]
func (h *Handlers) ListBooks(c *gin.Context) {
	q, valid := parseQuery(c)
	if !valid {
		return
	}
	ok(c, http.StatusOK, ListBooksResponse{Books: bookViews(h.catalog.ListBooks(c.Request.Context(), q))})
}

// GetBook godoc
// @ID          getBook
// @Summary     Get a book
// @Tags        Books
// @Produce     json
// @Param       id   path  string  true  "Book ID"  example(book-1)
// @Success     200  {object}  handlers.BookView
// @Failure     404  {object}  handlers.ErrorResponse  "Book not found"
// @Router      /books/{id} [get]
func (h *Handlers) GetBook(c *gin.Context) {
	b, err := h.catalog.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err, "book not found")
		return
	}
	ok(c, http.StatusOK, bookView(*b))
}

// CreateBook godoc
// @ID          createBook
// @Summary     Upload a book
// @Description Stores a new book owned by the caller.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header  string                      true  "User ID"  example(user123)
// @Param       body       body    handlers.CreateBookRequest  true  "Book"
// @Success     201  {object}  handlers.BookView
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Failure     422  {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /books [post]
func (h *Handlers) CreateBook(c *gin.Context) {
	uid, authed := requireUser(c)
	if !authed {
		return
	}
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	b, err := h.catalog.CreateBook(c.Request.Context(), uid, domain.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		CoverImage:  req.CoverImage,
		Category:    req.Category,
		IsPaid:      req.IsPaid,
		FileURL:     req.FileURL,
	})
	if err != nil {
		serviceError(c, err, "book not found")
		return
	}
	ok(c, http.StatusCreated, bookView(b))
}

// UpdateBook godoc
// @ID          updateBook
// @Summary     Update a book
// @Description Merges the provided fields into the book. id, uploadedBy and createdAt cannot change.
// @Tags        Books
// @Accept      json
// @Param       X-User-ID  header  string            true  "User ID"  example(user123)
// @Param       id         path    string            true  "Book ID"  example(book-1)
// @Param       body       body    domain.BookPatch  true  "Fields to change"
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Failure     404  {object}  handlers.ErrorResponse  "Book not found"
// @Failure     422  {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /books/{id} [patch]
func (h *Handlers) UpdateBook(c *gin.Context) {
	if _, authed := requireUser(c); !authed {
		return
	}
	var patch domain.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if _, err := h.catalog.UpdateBook(c.Request.Context(), c.Param("id"), patch); err != nil {
		serviceError(c, err, "book not found")
		return
	}
	noContent(c)
}

// DeleteBook godoc
// @ID          deleteBook
// @Summary     Delete a book
// @Tags        Books
// @Param       X-User-ID  header  string  true  "User ID"  example(user123)
// @Param       id         path    string  true  "Book ID"  example(book-1)
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Failure     404  {object}  handlers.ErrorResponse  "Book not found"
// @Router      /books/{id} [delete]
func (h *Handlers) DeleteBook(c *gin.Context) {
	if _, authed := requireUser(c); !authed {
		return
	}
	if err := h.catalog.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err, "book not found")
		return
	}
	noContent(c)
}

//
// Courses
//

// ListCourses godoc
// @ID          listCourses
// @Summary     List courses
// @Description Returns the courses matching the optional term, category and price filters, in catalog order.
// @Tags        Courses
// @Produce     json
// @Param       q         query  string  false  "Case-insensitive search over title, instructor and description"
// @Param       category  query  string  false  "Exact category, or all"
// @Param       price     query  string  false  "all, free or paid"  Enums(all, free, paid)
// @Success     200  {object}  handlers.ListCoursesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /courses [get]
func (h *Handlers) ListCourses(c *gin.Context) {
	q, valid := parseQuery(c)
	if !valid {
		return
	}
	ok(c, http.StatusOK, ListCoursesResponse{Courses: courseViews(h.catalog.ListCourses(c.Request.Context(), q))})
}

// GetCourse godoc
// @ID          getCourse
// @Summary     Get a course
// @Tags        Courses
// @Produce     json
// @Param       id   path  string  true  "Course ID"  example(course-1)
// @Success     200  {object}  handlers.CourseView
// @Failure     404  {object}  handlers.ErrorResponse  "Course not found"
// @Router      /courses/{id} [get]
func (h *Handlers) GetCourse(c *gin.Context) {
	co, err := h.catalog.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err, "course not found")
		return
	}
	ok(c, http.StatusOK, courseView(*co))
}

// CreateCourse godoc
// @ID          createCourse
// @Summary     Upload a course
// @Tags        Courses
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header  string                        true  "User ID"  example(user123)
// @Param       body       body    handlers.CreateCourseRequest  true  "Course"
// @Success     201  {object}  handlers.CourseView
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Failure     422  {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /courses [post]
func (h *Handlers) CreateCourse(c *gin.Context) {
	uid, authed := requireUser(c)
	if !authed {
		return
	}
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	co, err := h.catalog.CreateCourse(c.Request.Context(), uid, domain.Course{
		Title:       req.Title,
		Instructor:  req.Instructor,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		CoverImage:  req.CoverImage,
		Category:    req.Category,
		IsPaid:      req.IsPaid,
		VideoURL:    req.VideoURL,
		MaterialURL: req.MaterialURL,
	})
	if err != nil {
		serviceError(c, err, "course not found")
		return
	}
	ok(c, http.StatusCreated, courseView(co))
}

// UpdateCourse godoc
// @ID          updateCourse
// @Summary     Update a course
// @Tags        Courses
// @Accept      json
// @Param       X-User-ID  header  string              true  "User ID"    example(user123)
// @Param       id         path    string              true  "Course ID"  example(course-1)
// @Param       body       body    domain.CoursePatch  true  "Fields to change"
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Failure     404  {object}  handlers.ErrorResponse  "Course not found"
// @Failure     422  {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /courses/{id} [patch]
func (h *Handlers) UpdateCourse(c *gin.Context) {
	if _, authed := requireUser(c); !authed {
		return
	}
	var patch domain.CoursePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if _, err := h.catalog.UpdateCourse(c.Request.Context(), c.Param("id"), patch); err != nil {
		serviceError(c, err, "course not found")
		return
	}
	noContent(c)
}

// DeleteCourse godoc
// @ID          deleteCourse
// @Summary     Delete a course
// @Tags        Courses
// @Param       X-User-ID  header  string  true  "User ID"    example(user123)
// @Param       id         path    string  true  "Course ID"  example(course-1)
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Login required"
// @Failure     404  {object}  handlers.ErrorResponse  "Course not found"
// @Router      /courses/{id} [delete]
func (h *Handlers) DeleteCourse(c *gin.Context) {
	if _, authed := requireUser(c); !authed {
		return
	}
	if err := h.catalog.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err, "course not found")
		return
	}
	noContent(c)
}
