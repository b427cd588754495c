package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestItemType_Valid(t *testing.T) {
	cases := []struct {
		in   ItemType
		want bool
	}{
		{ItemBook, true},
		{ItemCourse, true},
		{"", false},
		{"video", false},
	}
	for _, tc := range cases {
		if got := tc.in.Valid(); got != tc.want {
			t.Fatalf("ItemType(%q).Valid() = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestEffectivePrice_FreeIgnoresStoredPrice(t *testing.T) {
	b := Book{Price: 12.5, IsPaid: false}
	if got := b.EffectivePrice(); got != 0 {
		t.Fatalf("free book EffectivePrice = %v; want 0", got)
	}
	b.IsPaid = true
	if got := b.EffectivePrice(); got != 12.5 {
		t.Fatalf("paid book EffectivePrice = %v; want 12.5", got)
	}

	c := Course{Price: 49.99}
	if got := c.EffectivePrice(); got != 0 {
		t.Fatalf("free course EffectivePrice = %v; want 0", got)
	}
}

func TestBookPatch_ApplyOnlySetFields(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	b := Book{
		ID: "book-1", Title: "Old", Author: "A", Description: "D",
		Price: 1, Category: "Fiction", UploadedBy: "u1", CreatedAt: &created,
	}
	title := "New"
	price := 9.99
	paid := true
	BookPatch{Title: &title, Price: &price, IsPaid: &paid}.Apply(&b)

	if b.Title != "New" || b.Price != 9.99 || !b.IsPaid {
		t.Fatalf("patch not applied: %+v", b)
	}
	if b.Author != "A" || b.Description != "D" || b.Category != "Fiction" {
		t.Fatalf("untouched fields changed: %+v", b)
	}
	if b.ID != "book-1" || b.UploadedBy != "u1" || !b.CreatedAt.Equal(created) {
		t.Fatalf("immutable fields changed: %+v", b)
	}
}

func TestCoursePatch_ApplyOnlySetFields(t *testing.T) {
	c := Course{ID: "course-1", Title: "T", Instructor: "I", VideoURL: "v1"}
	video := "v2"
	empty := ""
	CoursePatch{VideoURL: &video, MaterialURL: &empty}.Apply(&c)
	if c.VideoURL != "v2" || c.Title != "T" || c.Instructor != "I" {
		t.Fatalf("unexpected course after patch: %+v", c)
	}
}

func TestBook_JSONLayout(t *testing.T) {
	b := Book{ID: "book-1", Title: "The Great Gatsby", IsPaid: false, CoverImage: "x"}
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	for _, key := range []string{`"coverImage":"x"`, `"isPaid":false`, `"id":"book-1"`} {
		if !strings.Contains(s, key) {
			t.Fatalf("expected %s in %s", key, s)
		}
	}
	// Seed-style records have no uploader or creation time.
	if strings.Contains(s, "uploadedBy") || strings.Contains(s, "createdAt") {
		t.Fatalf("empty uploader/createdAt should be omitted: %s", s)
	}
}
