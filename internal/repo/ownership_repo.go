package repo

import (
	"context"

	"github.com/tbourn/go-marketplace/internal/domain"
)

// The userBooks / userCourses collections are a denormalized uploader index.
// Listings are computed from uploadedBy; the index is written alongside every
// create and delete so stores shared with older readers stay consistent.

// AddUserBook indexes bookID under userID. Duplicate rows are not added.
func AddUserBook(ctx context.Context, db DB, userID, bookID string) {
	rows := loadList[domain.UserBook](ctx, db, KeyUserBooks)
	for _, r := range rows {
		if r.UserID == userID && r.BookID == bookID {
			return
		}
	}
	saveList(ctx, db, KeyUserBooks, append(rows, domain.UserBook{UserID: userID, BookID: bookID}))
}

// RemoveUserBook drops every index row for bookID.
func RemoveUserBook(ctx context.Context, db DB, bookID string) {
	rows := loadList[domain.UserBook](ctx, db, KeyUserBooks)
	kept := rows[:0]
	for _, r := range rows {
		if r.BookID != bookID {
			kept = append(kept, r)
		}
	}
	if len(kept) != len(rows) {
		saveList(ctx, db, KeyUserBooks, kept)
	}
}

// ListUserBooks returns the raw index rows.
func ListUserBooks(ctx context.Context, db DB) []domain.UserBook {
	return loadList[domain.UserBook](ctx, db, KeyUserBooks)
}

// AddUserCourse indexes courseID under userID.
func AddUserCourse(ctx context.Context, db DB, userID, courseID string) {
	rows := loadList[domain.UserCourse](ctx, db, KeyUserCourses)
	for _, r := range rows {
		if r.UserID == userID && r.CourseID == courseID {
			return
		}
	}
	saveList(ctx, db, KeyUserCourses, append(rows, domain.UserCourse{UserID: userID, CourseID: courseID}))
}

// RemoveUserCourse drops every index row for courseID.
func RemoveUserCourse(ctx context.Context, db DB, courseID string) {
	rows := loadList[domain.UserCourse](ctx, db, KeyUserCourses)
	kept := rows[:0]
	for _, r := range rows {
		if r.CourseID != courseID {
			kept = append(kept, r)
		}
	}
	if len(kept) != len(rows) {
		saveList(ctx, db, KeyUserCourses, kept)
	}
}

// ListUserCourses returns the raw index rows.
func ListUserCourses(ctx context.Context, db DB) []domain.UserCourse {
	return loadList[domain.UserCourse](ctx, db, KeyUserCourses)
}

// UploadsBy returns the books and courses whose uploadedBy equals userID.
func UploadsBy(ctx context.Context, db DB, userID string) ([]domain.Book, []domain.Course) {
	books := []domain.Book{}
	for _, b := range ListBooks(ctx, db) {
		if b.UploadedBy == userID {
			books = append(books, b)
		}
	}
	courses := []domain.Course{}
	for _, c := range ListCourses(ctx, db) {
		if c.UploadedBy == userID {
			courses = append(courses, c)
		}
	}
	return books, courses
}
