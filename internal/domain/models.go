// Package domain defines the catalog and entitlement records of the
// marketplace. The JSON field names match the persisted collection layout
// (books, courses, purchases, downloadedBooks, accessedCourses, userBooks,
// userCourses), so a store written by one version can be read by another.
package domain

import "time"

// ItemType discriminates the two catalog record kinds.
type ItemType string

const (
	ItemBook   ItemType = "book"
	ItemCourse ItemType = "course"
)

// Valid reports whether t is a known item kind.
func (t ItemType) Valid() bool { return t == ItemBook || t == ItemCourse }

// DefaultCurrency is applied when a record carries no currency code.
const DefaultCurrency = "USD"

// Cover images used when an upload does not provide one.
const (
	DefaultBookCover   = "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?auto=format&fit=crop&w=500&q=80"
	DefaultCourseCover = "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?auto=format&fit=crop&w=500&q=80"
)

// BookCategories and CourseCategories are the values offered by the upload
// forms. The repository stores category as free text.
var (
	BookCategories   = []string{"Fiction", "Non-Fiction", "Science", "Technology", "Business", "Self-Help"}
	CourseCategories = []string{"Programming", "Design", "Business", "Marketing", "Personal Development", "Health"}
)

// Book is a downloadable title.
//
// Fields:
//   - ID: stable identifier; generated at creation ("book-<uuid>"), seed
//     records keep their hand-assigned ids ("book-1").
//   - Price: non-negative; ignored for display when IsPaid is false.
//   - Currency: ISO 4217 code, empty means DefaultCurrency.
//   - UploadedBy: user id of the uploader (empty for seed data).
//   - CreatedAt: set once at creation, nil for seed data.
type Book struct {
	ID          string     `json:"id"                    yaml:"id"`
	Title       string     `json:"title"                 yaml:"title"`
	Author      string     `json:"author"                yaml:"author"`
	Description string     `json:"description"           yaml:"description"`
	Price       float64    `json:"price"                 yaml:"price"`
	Currency    string     `json:"currency,omitempty"    yaml:"currency,omitempty"`
	CoverImage  string     `json:"coverImage,omitempty"  yaml:"coverImage,omitempty"`
	Category    string     `json:"category"              yaml:"category"`
	IsPaid      bool       `json:"isPaid"                yaml:"isPaid"`
	FileURL     string     `json:"fileUrl,omitempty"     yaml:"fileUrl,omitempty"`
	UploadedBy  string     `json:"uploadedBy,omitempty"  yaml:"uploadedBy,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
}

// Course is an online course. It mirrors Book with an instructor and a
// video/material reference instead of a file.
type Course struct {
	ID          string     `json:"id"                    yaml:"id"`
	Title       string     `json:"title"                 yaml:"title"`
	Instructor  string     `json:"instructor"            yaml:"instructor"`
	Description string     `json:"description"           yaml:"description"`
	Price       float64    `json:"price"                 yaml:"price"`
	Currency    string     `json:"currency,omitempty"    yaml:"currency,omitempty"`
	CoverImage  string     `json:"coverImage,omitempty"  yaml:"coverImage,omitempty"`
	Category    string     `json:"category"              yaml:"category"`
	IsPaid      bool       `json:"isPaid"                yaml:"isPaid"`
	VideoURL    string     `json:"videoUrl,omitempty"    yaml:"videoUrl,omitempty"`
	MaterialURL string     `json:"materialUrl,omitempty" yaml:"materialUrl,omitempty"`
	UploadedBy  string     `json:"uploadedBy,omitempty"  yaml:"uploadedBy,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
}

// Purchase records that a user bought an item. At most one exists per
// (UserID, ItemID). IdempotencyKey is the client key sent with the request
// that created the row, if any; a retry carrying the same key is a replay.
type Purchase struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	ItemID         string    `json:"itemId"`
	ItemType       ItemType  `json:"itemType"`
	PurchaseDate   time.Time `json:"purchaseDate"`
	IdempotencyKey string    `json:"idempotencyKey,omitempty"`
}

// DownloadRecord records the first download of a book by a user.
type DownloadRecord struct {
	UserID       string    `json:"userId"`
	BookID       string    `json:"bookId"`
	DownloadDate time.Time `json:"downloadDate"`
}

// AccessRecord records the first access of a course by a user.
type AccessRecord struct {
	UserID     string    `json:"userId"`
	CourseID   string    `json:"courseId"`
	AccessDate time.Time `json:"accessDate"`
}

// UserBook and UserCourse are rows of the denormalized uploader index.
type UserBook struct {
	UserID string `json:"userId"`
	BookID string `json:"bookId"`
}

type UserCourse struct {
	UserID   string `json:"userId"`
	CourseID string `json:"courseId"`
}

// EffectivePrice is the amount a buyer pays: zero for free items.
func (b Book) EffectivePrice() float64 {
	if !b.IsPaid {
		return 0
	}
	return b.Price
}

// EffectivePrice is the amount a buyer pays: zero for free items.
func (c Course) EffectivePrice() float64 {
	if !c.IsPaid {
		return 0
	}
	return c.Price
}

// BookPatch carries the mutable Book fields for a partial update.
// Nil fields are left untouched. ID, UploadedBy and CreatedAt are immutable.
type BookPatch struct {
	Title       *string  `json:"title,omitempty"`
	Author      *string  `json:"author,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	CoverImage  *string  `json:"coverImage,omitempty"`
	Category    *string  `json:"category,omitempty"`
	IsPaid      *bool    `json:"isPaid,omitempty"`
	FileURL     *string  `json:"fileUrl,omitempty"`
}

// Apply merges p into b.
func (p BookPatch) Apply(b *Book) {
	setString(&b.Title, p.Title)
	setString(&b.Author, p.Author)
	setString(&b.Description, p.Description)
	setString(&b.Currency, p.Currency)
	setString(&b.CoverImage, p.CoverImage)
	setString(&b.Category, p.Category)
	setString(&b.FileURL, p.FileURL)
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.IsPaid != nil {
		b.IsPaid = *p.IsPaid
	}
}

// CoursePatch carries the mutable Course fields for a partial update.
type CoursePatch struct {
	Title       *string  `json:"title,omitempty"`
	Instructor  *string  `json:"instructor,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	CoverImage  *string  `json:"coverImage,omitempty"`
	Category    *string  `json:"category,omitempty"`
	IsPaid      *bool    `json:"isPaid,omitempty"`
	VideoURL    *string  `json:"videoUrl,omitempty"`
	MaterialURL *string  `json:"materialUrl,omitempty"`
}

// Apply merges p into c.
func (p CoursePatch) Apply(c *Course) {
	setString(&c.Title, p.Title)
	setString(&c.Instructor, p.Instructor)
	setString(&c.Description, p.Description)
	setString(&c.Currency, p.Currency)
	setString(&c.CoverImage, p.CoverImage)
	setString(&c.Category, p.Category)
	setString(&c.VideoURL, p.VideoURL)
	setString(&c.MaterialURL, p.MaterialURL)
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.IsPaid != nil {
		c.IsPaid = *p.IsPaid
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
