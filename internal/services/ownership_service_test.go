package services

import (
	"context"
	"errors"
	"testing"
)

func TestOwnershipService_ListUploadsFor(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)
	catalog := NewCatalogService(st)
	svc := NewOwnershipService(st)

	b, err := catalog.CreateBook(ctx, "u1", validBook())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.CreateCourse(ctx, "u2", validCourse()); err != nil {
		t.Fatal(err)
	}

	up, err := svc.ListUploadsFor(ctx, "u1")
	if err != nil {
		t.Fatalf("ListUploadsFor: %v", err)
	}
	if len(up.Books) != 1 || up.Books[0].ID != b.ID || len(up.Courses) != 0 {
		t.Fatalf("unexpected uploads: %+v", up)
	}

	if err := catalog.DeleteBook(ctx, b.ID); err != nil {
		t.Fatal(err)
	}
	up, _ = svc.ListUploadsFor(ctx, "u1")
	if len(up.Books) != 0 {
		t.Fatalf("deleted upload still listed: %+v", up.Books)
	}

	if _, err := svc.ListUploadsFor(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
