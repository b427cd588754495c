package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-marketplace/internal/domain"
	"github.com/tbourn/go-marketplace/internal/repo"
)

// Uploads groups the items a user has uploaded.
type Uploads struct {
	Books   []domain.Book   `json:"books"`
	Courses []domain.Course `json:"courses"`
}

// OwnershipService answers "what did this user upload".
type OwnershipService struct {
	Store *repo.Store
}

// NewOwnershipService constructs an OwnershipService over st.
func NewOwnershipService(st *repo.Store) *OwnershipService {
	return &OwnershipService{Store: st}
}

// ListUploadsFor returns the books and courses whose uploader is userID.
// The result is derived from the catalog, so deleted items never appear.
func (s *OwnershipService) ListUploadsFor(ctx context.Context, userID string) (Uploads, error) {
	ctx, span := otel.Tracer("services/OwnershipService").Start(ctx, "ListUploadsFor",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		return Uploads{}, ErrUnauthenticated
	}
	books, courses := repo.UploadsBy(ctx, s.Store, userID)
	return Uploads{Books: books, Courses: courses}, nil
}
