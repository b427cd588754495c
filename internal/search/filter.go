// Package search implements the catalog query layer: a case-insensitive
// free-text term, an exact category and a free/paid selector, AND-ed
// together over an in-memory slice.
//
// Properties:
//
//   - Term matching uses Unicode case folding (golang.org/x/text/cases), so
//     "GATSBY", "gatsby" and "Gatsby" are equivalent.
//   - The term is matched as a substring of title, author (or instructor) and
//     description; any field may match.
//   - Category "" or "all" matches every record; otherwise equality.
//   - Results keep the input order. There is no ranking or pagination.
//   - Pure functions; no logging and no shared state.
package search

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tbourn/go-marketplace/internal/domain"
)

// PaidFilter selects records by their paid flag.
type PaidFilter string

const (
	PaidAll  PaidFilter = "all"
	PaidFree PaidFilter = "free"
	PaidOnly PaidFilter = "paid"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// ErrInvalidPaidFilter is returned by ParsePaidFilter for unknown values.
var ErrInvalidPaidFilter = errors.New("price filter must be one of all, free, paid")

// ParsePaidFilter normalizes user input. Empty input means PaidAll.
func ParsePaidFilter(s string) (PaidFilter, error) {
	switch PaidFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", PaidAll:
		return PaidAll, nil
	case PaidFree:
		return PaidFree, nil
	case PaidOnly:
		return PaidOnly, nil
	}
	return "", ErrInvalidPaidFilter
}

// Query is a set of predicates over catalog records.
type Query struct {
	Term     string
	Category string
	Paid     PaidFilter
}

// document is the searchable projection shared by books and courses.
type document struct {
	title, creator, description string
	category                    string
	isPaid                      bool
}

// Books returns the books matching q.
func Books(items []domain.Book, q Query) []domain.Book {
	return apply(items, q, func(b domain.Book) document {
		return document{b.Title, b.Author, b.Description, b.Category, b.IsPaid}
	})
}

// Courses returns the courses matching q. The instructor plays the role of
// the author.
func Courses(items []domain.Course, q Query) []domain.Course {
	return apply(items, q, func(c domain.Course) document {
		return document{c.Title, c.Instructor, c.Description, c.Category, c.IsPaid}
	})
}

func apply[T any](items []T, q Query, project func(T) document) []T {
	// A Caser is stateful; one per call keeps Books/Courses goroutine-safe.
	fold := cases.Fold()
	// Term and category are matched as given; " " only matches text
	// containing a space.
	term := fold.String(q.Term)
	category := q.Category

	out := make([]T, 0, len(items))
	for _, it := range items {
		d := project(it)
		if !matchPaid(q.Paid, d.isPaid) {
			continue
		}
		if category != "" && category != CategoryAll && d.category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(fold.String(d.title), term) &&
			!strings.Contains(fold.String(d.creator), term) &&
			!strings.Contains(fold.String(d.description), term) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchPaid(f PaidFilter, isPaid bool) bool {
	switch f {
	case PaidFree:
		return !isPaid
	case PaidOnly:
		return isPaid
	default:
		return true
	}
}
