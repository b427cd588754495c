// Package services – EntitlementService
//
// EntitlementService records purchases, downloads and course accesses and
// answers the per-user library views. Purchases are idempotent per
// (user, item). Download and Access apply the client-trusted gate: a paid
// item needs a purchase first. Library views join ledger rows with the
// current catalog and drop rows whose item has been deleted.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-marketplace/internal/domain"
	"github.com/tbourn/go-marketplace/internal/observability"
	"github.com/tbourn/go-marketplace/internal/repo"
)

var entitlements = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "marketplace_entitlements_total",
		Help: "Purchase, download and access attempts by outcome.",
	},
	[]string{"kind", "outcome"},
)

func init() {
	prometheus.MustRegister(entitlements)
}

// Outcome label values.
const (
	outcomeCreated         = "created"
	outcomeExisting        = "existing"
	outcomeNotFound        = "not_found"
	outcomePaymentRequired = "payment_required"
)

// EntitlementService owns the purchase, download and access ledgers.
type EntitlementService struct {
	Store *repo.Store
}

// NewEntitlementService constructs an EntitlementService over st.
func NewEntitlementService(st *repo.Store) *EntitlementService {
	return &EntitlementService{Store: st}
}

// PurchasedItem is a purchase joined with its current catalog record.
// Exactly one of Book and Course is set.
type PurchasedItem struct {
	domain.Purchase
	Book   *domain.Book   `json:"book,omitempty"`
	Course *domain.Course `json:"course,omitempty"`
}

// Purchase records that userID bought itemID. It returns the purchase and
// whether it was newly created; repeated calls return the first row. key is
// the request's Idempotency-Key (may be empty) and is stored on a new row.
// Unknown items yield ErrItemNotFound.
func (s *EntitlementService) Purchase(ctx context.Context, userID, itemID string, kind domain.ItemType, key string) (domain.Purchase, bool, error) {
	ctx, span := otel.Tracer("services/EntitlementService").Start(ctx, "Purchase",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("item.id", itemID),
			attribute.String("item.type", string(kind)),
		),
	)
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		return domain.Purchase{}, false, ErrUnauthenticated
	}
	if !kind.Valid() {
		return domain.Purchase{}, false, invalid("itemType", "Item type must be book or course")
	}

	var (
		p       domain.Purchase
		created bool
	)
	err := s.Store.Transaction(ctx, func(tx *repo.Tx) error {
		if !itemExists(ctx, tx, itemID, kind) {
			return ErrItemNotFound
		}
		p, created = repo.RecordPurchase(ctx, tx, userID, itemID, kind, key)
		return nil
	})
	observability.Outcome(span, err, ErrItemNotFound)
	if err != nil {
		entitlements.WithLabelValues("purchase", outcomeNotFound).Inc()
		return domain.Purchase{}, false, err
	}
	if created {
		entitlements.WithLabelValues("purchase", outcomeCreated).Inc()
	} else {
		entitlements.WithLabelValues("purchase", outcomeExisting).Inc()
	}
	span.SetAttributes(attribute.Bool("purchase.created", created))
	return p, created, nil
}

// IsPurchaseReplay reports whether userID's purchase of itemID was created by
// a request with the same Idempotency-Key.
func (s *EntitlementService) IsPurchaseReplay(ctx context.Context, userID, itemID, key string) bool {
	if userID == "" {
		return false
	}
	return repo.PurchasedWithKey(ctx, s.Store, userID, itemID, key)
}

// HasPurchased reports whether userID holds a purchase of itemID.
func (s *EntitlementService) HasPurchased(ctx context.Context, userID, itemID string) bool {
	if userID == "" {
		return false
	}
	return repo.HasPurchased(ctx, s.Store, userID, itemID)
}

// DownloadBook returns the book after recording the download. A paid book
// without a purchase yields ErrPaymentRequired and records nothing.
func (s *EntitlementService) DownloadBook(ctx context.Context, userID, bookID string) (domain.Book, error) {
	ctx, span := otel.Tracer("services/EntitlementService").Start(ctx, "DownloadBook",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("item.id", bookID),
		),
	)
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		return domain.Book{}, ErrUnauthenticated
	}

	var (
		book    domain.Book
		created bool
	)
	err := s.Store.Transaction(ctx, func(tx *repo.Tx) error {
		b, err := repo.GetBook(ctx, tx, bookID)
		if err != nil {
			return ErrItemNotFound
		}
		if b.IsPaid && !repo.HasPurchased(ctx, tx, userID, bookID) {
			return ErrPaymentRequired
		}
		book = *b
		_, created = repo.RecordDownload(ctx, tx, userID, bookID)
		return nil
	})
	observe("download", created, err)
	observability.Outcome(span, err, ErrItemNotFound, ErrPaymentRequired)
	return book, err
}

// AccessCourse is the course counterpart of DownloadBook.
func (s *EntitlementService) AccessCourse(ctx context.Context, userID, courseID string) (domain.Course, error) {
	ctx, span := otel.Tracer("services/EntitlementService").Start(ctx, "AccessCourse",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("item.id", courseID),
		),
	)
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		return domain.Course{}, ErrUnauthenticated
	}

	var (
		course  domain.Course
		created bool
	)
	err := s.Store.Transaction(ctx, func(tx *repo.Tx) error {
		c, err := repo.GetCourse(ctx, tx, courseID)
		if err != nil {
			return ErrItemNotFound
		}
		if c.IsPaid && !repo.HasPurchased(ctx, tx, userID, courseID) {
			return ErrPaymentRequired
		}
		course = *c
		_, created = repo.RecordAccess(ctx, tx, userID, courseID)
		return nil
	})
	observe("access", created, err)
	observability.Outcome(span, err, ErrItemNotFound, ErrPaymentRequired)
	return course, err
}

// ListPurchases returns the raw purchase rows of userID.
func (s *EntitlementService) ListPurchases(ctx context.Context, userID string) []domain.Purchase {
	ctx, span := otel.Tracer("services/EntitlementService").Start(ctx, "ListPurchases",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()
	return repo.ListPurchases(ctx, s.Store, userID)
}

// ListPurchasedItems joins the purchases of userID with the current catalog.
func (s *EntitlementService) ListPurchasedItems(ctx context.Context, userID string) []PurchasedItem {
	ctx, span := otel.Tracer("services/EntitlementService").Start(ctx, "ListPurchasedItems",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	books := indexBy(repo.ListBooks(ctx, s.Store), func(b domain.Book) string { return b.ID })
	courses := indexBy(repo.ListCourses(ctx, s.Store), func(c domain.Course) string { return c.ID })

	out := []PurchasedItem{}
	for _, p := range repo.ListPurchases(ctx, s.Store, userID) {
		switch p.ItemType {
		case domain.ItemBook:
			if b, ok := books[p.ItemID]; ok {
				out = append(out, PurchasedItem{Purchase: p, Book: &b})
			}
		case domain.ItemCourse:
			if c, ok := courses[p.ItemID]; ok {
				out = append(out, PurchasedItem{Purchase: p, Course: &c})
			}
		}
	}
	return out
}

// ListDownloads returns the books userID has downloaded, in download order,
// skipping books that no longer exist.
func (s *EntitlementService) ListDownloads(ctx context.Context, userID string) []domain.Book {
	ctx, span := otel.Tracer("services/EntitlementService").Start(ctx, "ListDownloads",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	books := indexBy(repo.ListBooks(ctx, s.Store), func(b domain.Book) string { return b.ID })
	out := []domain.Book{}
	for _, r := range repo.ListDownloads(ctx, s.Store, userID) {
		if b, ok := books[r.BookID]; ok {
			out = append(out, b)
		}
	}
	return out
}

// ListAccessed returns the courses userID has opened, skipping deleted ones.
func (s *EntitlementService) ListAccessed(ctx context.Context, userID string) []domain.Course {
	ctx, span := otel.Tracer("services/EntitlementService").Start(ctx, "ListAccessed",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	courses := indexBy(repo.ListCourses(ctx, s.Store), func(c domain.Course) string { return c.ID })
	out := []domain.Course{}
	for _, r := range repo.ListAccesses(ctx, s.Store, userID) {
		if c, ok := courses[r.CourseID]; ok {
			out = append(out, c)
		}
	}
	return out
}

func itemExists(ctx context.Context, db repo.DB, id string, kind domain.ItemType) bool {
	var err error
	if kind == domain.ItemCourse {
		_, err = repo.GetCourse(ctx, db, id)
	} else {
		_, err = repo.GetBook(ctx, db, id)
	}
	return err == nil
}

func observe(kind string, created bool, err error) {
	switch {
	case errors.Is(err, ErrPaymentRequired):
		entitlements.WithLabelValues(kind, outcomePaymentRequired).Inc()
	case errors.Is(err, ErrItemNotFound):
		entitlements.WithLabelValues(kind, outcomeNotFound).Inc()
	case err != nil:
	case created:
		entitlements.WithLabelValues(kind, outcomeCreated).Inc()
	default:
		entitlements.WithLabelValues(kind, outcomeExisting).Inc()
	}
}

func indexBy[T any](items []T, key func(T) string) map[string]T {
	m := make(map[string]T, len(items))
	for _, it := range items {
		m[key(it)] = it
	}
	return m
}
