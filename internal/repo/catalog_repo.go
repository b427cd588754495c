// This file provides repository functions for the Book and Course
// collections.
//
// Functions:
//
//   - ListBooks / ListCourses(ctx, db) -> all records in insertion order
//   - GetBook / GetCourse(ctx, db, id) -> record or ErrNotFound
//   - CreateBook / CreateCourse(ctx, db, rec) -> stored record with a
//     generated id and createdAt
//   - UpdateBook / UpdateCourse(ctx, db, id, patch) -> (record, found)
//   - DeleteBook / DeleteCourse(ctx, db, id) -> found
//
// Create, update and delete read the whole collection and write it back, so
// concurrent callers must go through Store.Transaction.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tbourn/go-marketplace/internal/domain"
)

// Test seams.
var (
	newUUID = uuid.NewString
	now     = func() time.Time { return time.Now().UTC() }
)

// newID returns prefix+"-"+uuid, drawing again while taken reports a clash.
func newID(prefix string, taken func(string) bool) string {
	for {
		id := prefix + "-" + newUUID()
		if !taken(id) {
			return id
		}
	}
}

// ListBooks returns every stored book.
func ListBooks(ctx context.Context, db DB) []domain.Book {
	return loadList[domain.Book](ctx, db, KeyBooks)
}

// GetBook fetches a book by id.
func GetBook(ctx context.Context, db DB, id string) (*domain.Book, error) {
	for _, b := range ListBooks(ctx, db) {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

// CreateBook appends b with a fresh id and creation time and returns the
// stored record. Any id or createdAt set by the caller is replaced.
func CreateBook(ctx context.Context, db DB, b domain.Book) domain.Book {
	books := ListBooks(ctx, db)
	b.ID = newID("book", func(id string) bool {
		for _, x := range books {
			if x.ID == id {
				return true
			}
		}
		return false
	})
	ts := now()
	b.CreatedAt = &ts

	saveList(ctx, db, KeyBooks, append(books, b))
	return b
}

// UpdateBook merges patch into the book with the given id. It reports false
// without writing when the id does not exist.
func UpdateBook(ctx context.Context, db DB, id string, patch domain.BookPatch) (domain.Book, bool) {
	books := ListBooks(ctx, db)
	for i := range books {
		if books[i].ID == id {
			patch.Apply(&books[i])
			saveList(ctx, db, KeyBooks, books)
			return books[i], true
		}
	}
	return domain.Book{}, false
}

// DeleteBook removes the book with the given id. It reports false without
// writing when the id does not exist.
func DeleteBook(ctx context.Context, db DB, id string) bool {
	books := ListBooks(ctx, db)
	kept := books[:0]
	found := false
	for _, b := range books {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if found {
		saveList(ctx, db, KeyBooks, kept)
	}
	return found
}

// ListCourses returns every stored course.
func ListCourses(ctx context.Context, db DB) []domain.Course {
	return loadList[domain.Course](ctx, db, KeyCourses)
}

// GetCourse fetches a course by id.
func GetCourse(ctx context.Context, db DB, id string) (*domain.Course, error) {
	for _, c := range ListCourses(ctx, db) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// CreateCourse appends c with a fresh id and creation time.
func CreateCourse(ctx context.Context, db DB, c domain.Course) domain.Course {
	courses := ListCourses(ctx, db)
	c.ID = newID("course", func(id string) bool {
		for _, x := range courses {
			if x.ID == id {
				return true
			}
		}
		return false
	})
	ts := now()
	c.CreatedAt = &ts

	saveList(ctx, db, KeyCourses, append(courses, c))
	return c
}

// UpdateCourse merges patch into the course with the given id.
func UpdateCourse(ctx context.Context, db DB, id string, patch domain.CoursePatch) (domain.Course, bool) {
	courses := ListCourses(ctx, db)
	for i := range courses {
		if courses[i].ID == id {
			patch.Apply(&courses[i])
			saveList(ctx, db, KeyCourses, courses)
			return courses[i], true
		}
	}
	return domain.Course{}, false
}

// DeleteCourse removes the course with the given id.
func DeleteCourse(ctx context.Context, db DB, id string) bool {
	courses := ListCourses(ctx, db)
	kept := courses[:0]
	found := false
	for _, c := range courses {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if found {
		saveList(ctx, db, KeyCourses, kept)
	}
	return found
}
