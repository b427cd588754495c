// Package services – CatalogService
//
// CatalogService owns uploads, edits and removals of books and courses. It
// normalizes and validates input, stamps the uploader, and keeps the uploader
// index in step with the catalog by running both writes in one store
// transaction. Listing applies the search filter over the stored collection.
package services

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-marketplace/internal/domain"
	"github.com/tbourn/go-marketplace/internal/pricing"
	"github.com/tbourn/go-marketplace/internal/repo"
	"github.com/tbourn/go-marketplace/internal/search"
)

// CatalogService provides catalog reads and uploader writes.
type CatalogService struct {
	Store *repo.Store
}

// NewCatalogService constructs a CatalogService over st.
func NewCatalogService(st *repo.Store) *CatalogService {
	return &CatalogService{Store: st}
}

// Categories lists the selectable categories per item kind.
type Categories struct {
	Books   []string `json:"books"`
	Courses []string `json:"courses"`
}

// Categories returns the category enumerations.
func (s *CatalogService) Categories() Categories {
	return Categories{
		Books:   slices.Clone(domain.BookCategories),
		Courses: slices.Clone(domain.CourseCategories),
	}
}

// ListBooks returns the books matching q in stored order.
func (s *CatalogService) ListBooks(ctx context.Context, q search.Query) []domain.Book {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "ListBooks",
		trace.WithAttributes(
			attribute.String("query.term", q.Term),
			attribute.String("query.category", q.Category),
			attribute.String("query.price", string(q.Paid)),
		),
	)
	defer span.End()

	out := search.Books(repo.ListBooks(ctx, s.Store), q)
	span.SetAttributes(attribute.Int("result.count", len(out)))
	return out
}

// ListCourses returns the courses matching q in stored order.
func (s *CatalogService) ListCourses(ctx context.Context, q search.Query) []domain.Course {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "ListCourses",
		trace.WithAttributes(
			attribute.String("query.term", q.Term),
			attribute.String("query.category", q.Category),
			attribute.String("query.price", string(q.Paid)),
		),
	)
	defer span.End()

	out := search.Courses(repo.ListCourses(ctx, s.Store), q)
	span.SetAttributes(attribute.Int("result.count", len(out)))
	return out
}

// GetBook returns a book or ErrItemNotFound.
func (s *CatalogService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "GetBook",
		trace.WithAttributes(attribute.String("item.id", id)),
	)
	defer span.End()

	b, err := repo.GetBook(ctx, s.Store, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return b, err
}

// GetCourse returns a course or ErrItemNotFound.
func (s *CatalogService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "GetCourse",
		trace.WithAttributes(attribute.String("item.id", id)),
	)
	defer span.End()

	c, err := repo.GetCourse(ctx, s.Store, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return c, err
}

// CreateBook validates b, records userID as its uploader and stores it along
// with its uploader index row. Caller-supplied id and createdAt are ignored.
func (s *CatalogService) CreateBook(ctx context.Context, userID string, b domain.Book) (domain.Book, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "CreateBook",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		return domain.Book{}, ErrUnauthenticated
	}
	normalizeBook(&b)
	if b.CoverImage == "" {
		b.CoverImage = domain.DefaultBookCover
	}
	if err := validateBook(b); err != nil {
		return domain.Book{}, err
	}
	b.UploadedBy = userID

	var out domain.Book
	err := s.Store.Transaction(ctx, func(tx *repo.Tx) error {
		out = repo.CreateBook(ctx, tx, b)
		repo.AddUserBook(ctx, tx, userID, out.ID)
		return nil
	})
	if err != nil {
		return domain.Book{}, err
	}
	span.SetAttributes(attribute.String("item.id", out.ID))
	return out, nil
}

// CreateCourse validates c, records userID as its uploader and stores it.
func (s *CatalogService) CreateCourse(ctx context.Context, userID string, c domain.Course) (domain.Course, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "CreateCourse",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		return domain.Course{}, ErrUnauthenticated
	}
	normalizeCourse(&c)
	if c.CoverImage == "" {
		c.CoverImage = domain.DefaultCourseCover
	}
	if err := validateCourse(c, true); err != nil {
		return domain.Course{}, err
	}
	c.UploadedBy = userID

	var out domain.Course
	err := s.Store.Transaction(ctx, func(tx *repo.Tx) error {
		out = repo.CreateCourse(ctx, tx, c)
		repo.AddUserCourse(ctx, tx, userID, out.ID)
		return nil
	})
	if err != nil {
		return domain.Course{}, err
	}
	span.SetAttributes(attribute.String("item.id", out.ID))
	return out, nil
}

// UpdateBook merges patch into the stored book after validating the merged
// record. It returns ErrItemNotFound for unknown ids and a ValidationError
// without writing when the result would be invalid.
func (s *CatalogService) UpdateBook(ctx context.Context, id string, patch domain.BookPatch) (domain.Book, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "UpdateBook",
		trace.WithAttributes(attribute.String("item.id", id)),
	)
	defer span.End()

	var out domain.Book
	err := s.Store.Transaction(ctx, func(tx *repo.Tx) error {
		cur, err := repo.GetBook(ctx, tx, id)
		if err != nil {
			return ErrItemNotFound
		}
		merged := *cur
		patch.Apply(&merged)
		normalizeBook(&merged)
		if err := validateBook(merged); err != nil {
			return err
		}
		out, _ = repo.UpdateBook(ctx, tx, id, patchFromBook(merged))
		return nil
	})
	return out, err
}

// UpdateCourse is the course counterpart of UpdateBook.
func (s *CatalogService) UpdateCourse(ctx context.Context, id string, patch domain.CoursePatch) (domain.Course, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "UpdateCourse",
		trace.WithAttributes(attribute.String("item.id", id)),
	)
	defer span.End()

	var out domain.Course
	err := s.Store.Transaction(ctx, func(tx *repo.Tx) error {
		cur, err := repo.GetCourse(ctx, tx, id)
		if err != nil {
			return ErrItemNotFound
		}
		merged := *cur
		patch.Apply(&merged)
		normalizeCourse(&merged)
		// Demo courses carry no video; only records that had one must keep it.
		if err := validateCourse(merged, cur.VideoURL != ""); err != nil {
			return err
		}
		out, _ = repo.UpdateCourse(ctx, tx, id, patchFromCourse(merged))
		return nil
	})
	return out, err
}

// DeleteBook removes the book and its uploader index rows. Ledger rows that
// reference it are kept; library views drop them.
func (s *CatalogService) DeleteBook(ctx context.Context, id string) error {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "DeleteBook",
		trace.WithAttributes(attribute.String("item.id", id)),
	)
	defer span.End()

	return s.Store.Transaction(ctx, func(tx *repo.Tx) error {
		if !repo.DeleteBook(ctx, tx, id) {
			return ErrItemNotFound
		}
		repo.RemoveUserBook(ctx, tx, id)
		return nil
	})
}

// DeleteCourse removes the course and its uploader index rows.
func (s *CatalogService) DeleteCourse(ctx context.Context, id string) error {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "DeleteCourse",
		trace.WithAttributes(attribute.String("item.id", id)),
	)
	defer span.End()

	return s.Store.Transaction(ctx, func(tx *repo.Tx) error {
		if !repo.DeleteCourse(ctx, tx, id) {
			return ErrItemNotFound
		}
		repo.RemoveUserCourse(ctx, tx, id)
		return nil
	})
}

// ---- normalization & validation ----

func normalizeBook(b *domain.Book) {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	b.Description = strings.TrimSpace(b.Description)
	b.Category = strings.TrimSpace(b.Category)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))
	b.CoverImage = strings.TrimSpace(b.CoverImage)
	b.FileURL = strings.TrimSpace(b.FileURL)
}

func normalizeCourse(c *domain.Course) {
	c.Title = strings.TrimSpace(c.Title)
	c.Instructor = strings.TrimSpace(c.Instructor)
	c.Description = strings.TrimSpace(c.Description)
	c.Category = strings.TrimSpace(c.Category)
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	c.CoverImage = strings.TrimSpace(c.CoverImage)
	c.VideoURL = strings.TrimSpace(c.VideoURL)
	c.MaterialURL = strings.TrimSpace(c.MaterialURL)
}

func validateBook(b domain.Book) error {
	switch {
	case b.Title == "":
		return invalid("title", msgRequired)
	case b.Author == "":
		return invalid("author", msgRequired)
	case b.Description == "":
		return invalid("description", msgRequired)
	case b.Category == "":
		return invalid("category", msgRequired)
	case !slices.Contains(domain.BookCategories, b.Category):
		return invalid("category", "Unknown book category")
	}
	return validatePrice(b.Price, b.Currency)
}

func validateCourse(c domain.Course, requireVideo bool) error {
	switch {
	case c.Title == "":
		return invalid("title", msgRequired)
	case c.Instructor == "":
		return invalid("instructor", msgRequired)
	case c.Description == "":
		return invalid("description", msgRequired)
	case c.Category == "":
		return invalid("category", msgRequired)
	case requireVideo && c.VideoURL == "":
		return invalid("videoUrl", msgRequired)
	case !slices.Contains(domain.CourseCategories, c.Category):
		return invalid("category", "Unknown course category")
	}
	return validatePrice(c.Price, c.Currency)
}

func validatePrice(price float64, currency string) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return invalid("price", "Price must be a non-negative number")
	}
	if !pricing.ValidCurrency(currency) {
		return invalid("currency", "Unknown currency code")
	}
	return nil
}

// patchFromBook turns a fully merged record into a patch that sets every
// mutable field, so the stored row equals the validated one.
func patchFromBook(b domain.Book) domain.BookPatch {
	return domain.BookPatch{
		Title: &b.Title, Author: &b.Author, Description: &b.Description,
		Price: &b.Price, Currency: &b.Currency, CoverImage: &b.CoverImage,
		Category: &b.Category, IsPaid: &b.IsPaid, FileURL: &b.FileURL,
	}
}

func patchFromCourse(c domain.Course) domain.CoursePatch {
	return domain.CoursePatch{
		Title: &c.Title, Instructor: &c.Instructor, Description: &c.Description,
		Price: &c.Price, Currency: &c.Currency, CoverImage: &c.CoverImage,
		Category: &c.Category, IsPaid: &c.IsPaid, VideoURL: &c.VideoURL,
		MaterialURL: &c.MaterialURL,
	}
}
