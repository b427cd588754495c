package repo

import (
	"context"

	"github.com/tbourn/go-marketplace/internal/domain"
)

// RecordPurchase stores a purchase of itemID by userID. If the pair is
// already recorded the existing row is returned with created=false and the
// ledger is left unchanged.
func RecordPurchase(ctx context.Context, db DB, userID, itemID string, itemType domain.ItemType, key string) (p domain.Purchase, created bool) {
	purchases := loadList[domain.Purchase](ctx, db, KeyPurchases)
	for _, x := range purchases {
		if x.UserID == userID && x.ItemID == itemID {
			return x, false
		}
	}

	p = domain.Purchase{
		ID: newID("purchase", func(id string) bool {
			for _, x := range purchases {
				if x.ID == id {
					return true
				}
			}
			return false
		}),
		UserID:         userID,
		ItemID:         itemID,
		ItemType:       itemType,
		PurchaseDate:   now(),
		IdempotencyKey: key,
	}
	saveList(ctx, db, KeyPurchases, append(purchases, p))
	return p, true
}

// PurchasedWithKey reports whether userID's purchase of itemID was created
// by a request carrying key. An empty key never matches.
func PurchasedWithKey(ctx context.Context, db DB, userID, itemID, key string) bool {
	if key == "" {
		return false
	}
	for _, p := range loadList[domain.Purchase](ctx, db, KeyPurchases) {
		if p.UserID == userID && p.ItemID == itemID {
			return p.IdempotencyKey == key
		}
	}
	return false
}

// HasPurchased reports whether userID has a purchase row for itemID.
func HasPurchased(ctx context.Context, db DB, userID, itemID string) bool {
	for _, p := range loadList[domain.Purchase](ctx, db, KeyPurchases) {
		if p.UserID == userID && p.ItemID == itemID {
			return true
		}
	}
	return false
}

// ListPurchases returns the purchase rows of userID in ledger order.
func ListPurchases(ctx context.Context, db DB, userID string) []domain.Purchase {
	out := []domain.Purchase{}
	for _, p := range loadList[domain.Purchase](ctx, db, KeyPurchases) {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// RecordDownload appends a download row unless (userID, bookID) is already
// present. It never checks payment.
func RecordDownload(ctx context.Context, db DB, userID, bookID string) (domain.DownloadRecord, bool) {
	rows := loadList[domain.DownloadRecord](ctx, db, KeyDownloadedBooks)
	for _, r := range rows {
		if r.UserID == userID && r.BookID == bookID {
			return r, false
		}
	}
	r := domain.DownloadRecord{UserID: userID, BookID: bookID, DownloadDate: now()}
	saveList(ctx, db, KeyDownloadedBooks, append(rows, r))
	return r, true
}

// ListDownloads returns the download rows of userID.
func ListDownloads(ctx context.Context, db DB, userID string) []domain.DownloadRecord {
	out := []domain.DownloadRecord{}
	for _, r := range loadList[domain.DownloadRecord](ctx, db, KeyDownloadedBooks) {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// RecordAccess appends a course access row unless (userID, courseID) is
// already present.
func RecordAccess(ctx context.Context, db DB, userID, courseID string) (domain.AccessRecord, bool) {
	rows := loadList[domain.AccessRecord](ctx, db, KeyAccessedCourses)
	for _, r := range rows {
		if r.UserID == userID && r.CourseID == courseID {
			return r, false
		}
	}
	r := domain.AccessRecord{UserID: userID, CourseID: courseID, AccessDate: now()}
	saveList(ctx, db, KeyAccessedCourses, append(rows, r))
	return r, true
}

// ListAccesses returns the course access rows of userID.
func ListAccesses(ctx context.Context, db DB, userID string) []domain.AccessRecord {
	out := []domain.AccessRecord{}
	for _, r := range loadList[domain.AccessRecord](ctx, db, KeyAccessedCourses) {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}
