package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tbourn/go-marketplace/internal/kv"
)

func TestDefaultSeed_Contents(t *testing.T) {
	s := DefaultSeed()
	if len(s.Books) != 3 || len(s.Courses) != 3 {
		t.Fatalf("expected 3 books and 3 courses, got %d/%d", len(s.Books), len(s.Courses))
	}
	if s.Books[0].ID != "book-1" || s.Courses[2].ID != "course-3" {
		t.Fatalf("unexpected seed ids: %s, %s", s.Books[0].ID, s.Courses[2].ID)
	}
	for _, b := range s.Books {
		if b.UploadedBy != "" || b.CreatedAt != nil {
			t.Fatalf("seed book should have no uploader/createdAt: %+v", b)
		}
	}
}

func TestInitialize_SeedsAbsentKeys(t *testing.T) {
	ctx := context.Background()
	st, mem := newTestStore(t)
	st.Initialize(ctx, DefaultSeed())

	keys, _ := mem.Keys(ctx)
	if len(keys) != 7 {
		t.Fatalf("expected 7 keys, got %v", keys)
	}
	if len(ListBooks(ctx, st)) != 3 || len(ListCourses(ctx, st)) != 3 {
		t.Fatal("catalog not seeded")
	}
	for _, k := range []string{KeyPurchases, KeyUserBooks, KeyUserCourses, KeyDownloadedBooks, KeyAccessedCourses} {
		if v, _, _ := mem.Get(ctx, k); v != "[]" {
			t.Fatalf("%s = %q; want []", k, v)
		}
	}
}

func TestInitialize_NeverOverwrites(t *testing.T) {
	ctx := context.Background()
	st, mem := newTestStore(t)
	_ = mem.Set(ctx, KeyBooks, "[]")
	_ = mem.Set(ctx, KeyPurchases, `[{"id":"p1","userId":"u","itemId":"book-1","itemType":"book","purchaseDate":"2024-01-01T00:00:00Z"}]`)

	st.Initialize(ctx, DefaultSeed())
	st.Initialize(ctx, DefaultSeed())

	if got := ListBooks(ctx, st); len(got) != 0 {
		t.Fatalf("existing empty books overwritten: %v", got)
	}
	if !HasPurchased(ctx, st, "u", "book-1") {
		t.Fatal("existing purchases overwritten")
	}
	if len(ListCourses(ctx, st)) != 3 {
		t.Fatal("absent courses should be seeded")
	}
}

func TestInitialize_SkipsUnreadableKeys(t *testing.T) {
	ctx := context.Background()
	f := &failingKV{Memory: kv.NewMemory(), badGet: map[string]bool{KeyBooks: true}}
	st := NewStore(f)
	st.Initialize(ctx, DefaultSeed())

	if _, ok, _ := f.Memory.Get(ctx, KeyBooks); ok {
		t.Fatal("unreadable key must not be written")
	}
	if _, ok, _ := f.Memory.Get(ctx, KeyCourses); !ok {
		t.Fatal("readable absent key should be seeded")
	}
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "seed.yaml")
	doc := "books:\n  - id: book-x\n    title: Custom\n    author: Me\n    price: 3.5\n    isPaid: true\n    category: Science\ncourses: []\n"
	if err := os.WriteFile(p, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSeedFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Books) != 1 || s.Books[0].Price != 3.5 || !s.Books[0].IsPaid {
		t.Fatalf("unexpected seed: %+v", s)
	}

	if _, err := LoadSeedFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := ParseSeed([]byte("books: [:")); err == nil {
		t.Fatal("expected parse error")
	}
}
