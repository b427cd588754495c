// Package repo implements the data-access layer of the marketplace on top of
// a kv.Store. Every collection (books, courses, purchases, …) is a single
// JSON array stored under a well-known key; reads parse the whole array and
// writes replace it.
//
// Failure semantics:
//   - A store error on read is logged and treated as an absent key, so
//     callers see an empty collection.
//   - A store error on write is logged and dropped.
//   - A store error on read inside Store.Transaction drops the whole
//     transaction's writes, so a failed read never overwrites a collection.
//   - Malformed stored JSON is logged and treated as an empty collection.
//
// Nothing in this package returns storage errors to callers. Lookups by id
// return ErrNotFound; updates and deletes report a found/not-found boolean.
//
// Read-modify-write sequences (append then persist) must run inside
// Store.Transaction, which serializes writers and commits buffered writes
// only when the callback succeeds.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-marketplace/internal/kv"
)

// Well-known collection keys.
const (
	KeyBooks           = "books"
	KeyCourses         = "courses"
	KeyPurchases       = "purchases"
	KeyUserBooks       = "userBooks"
	KeyUserCourses     = "userCourses"
	KeyDownloadedBooks = "downloadedBooks"
	KeyAccessedCourses = "accessedCourses"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// storeDegraded counts operations that fell back to the degraded path.
var storeDegraded = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "marketplace_store_degraded_total",
		Help: "Store operations that degraded to an empty read or a dropped write.",
	},
	[]string{"op"},
)

func init() {
	prometheus.MustRegister(storeDegraded)
}

// DB is the handle accepted by repository functions. It is implemented by
// *Store (each call is applied immediately) and *Tx (writes are buffered
// until the enclosing transaction commits).
type DB interface {
	get(ctx context.Context, key string) (string, bool)
	put(ctx context.Context, key, value string)
}

// Store adapts a kv.Store to JSON collections.
type Store struct {
	kv kv.Store
	mu sync.RWMutex
}

// NewStore wraps backend. A nil backend behaves like kv.Unavailable.
func NewStore(backend kv.Store) *Store {
	if backend == nil {
		backend = kv.Unavailable{}
	}
	return &Store{kv: backend}
}

// Available reports whether a host store backs s. Without one every read is
// empty and every write is dropped.
func (s *Store) Available() bool {
	_, none := s.kv.(kv.Unavailable)
	return !none
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(ctx, key)
}

func (s *Store) put(ctx context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(ctx, key, value)
}

// read and write assume the caller holds mu.
func (s *Store) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.readFailed(ctx, key, err)
		return "", false
	}
	return v, ok
}

func (s *Store) readFailed(ctx context.Context, key string, err error) {
	storeDegraded.WithLabelValues("read").Inc()
	zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("store read failed; treating as empty")
}

func (s *Store) write(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		storeDegraded.WithLabelValues("write").Inc()
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("store write failed; change not persisted")
	}
}

// Tx is a buffered view of a Store used inside Transaction.
// Reads observe the transaction's own pending writes. A failed backend read
// marks the transaction degraded: the callback still sees an empty value,
// but nothing it wrote is committed.
type Tx struct {
	st       *Store
	writes   map[string]string
	order    []string
	degraded bool
}

func (tx *Tx) get(ctx context.Context, key string) (string, bool) {
	if v, ok := tx.writes[key]; ok {
		return v, true
	}
	v, ok, err := tx.st.kv.Get(ctx, key)
	if err != nil {
		tx.degraded = true
		tx.st.readFailed(ctx, key, err)
		return "", false
	}
	return v, ok
}

func (tx *Tx) put(_ context.Context, key, value string) {
	if _, seen := tx.writes[key]; !seen {
		tx.order = append(tx.order, key)
	}
	tx.writes[key] = value
}

// Transaction runs fn with exclusive access to the store. Writes made through
// tx are applied in order after fn returns nil and discarded otherwise.
// When a read inside fn failed, the writes were computed from an empty
// collection; they are dropped (logged and counted) and Transaction still
// returns nil. fn must not use s directly.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{st: s, writes: make(map[string]string)}
	if err := fn(tx); err != nil {
		return err
	}
	if tx.degraded {
		if len(tx.order) > 0 {
			storeDegraded.WithLabelValues("write").Add(float64(len(tx.order)))
			zerolog.Ctx(ctx).Warn().Strs("keys", tx.order).
				Msg("store read failed inside transaction; changes not persisted")
		}
		return nil
	}
	for _, k := range tx.order {
		s.write(ctx, k, tx.writes[k])
	}
	return nil
}

// loadList decodes the JSON array stored under key. Absent, unreadable or
// malformed values yield an empty, non-nil slice.
func loadList[T any](ctx context.Context, db DB, key string) []T {
	raw, ok := db.get(ctx, key)
	if !ok {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		storeDegraded.WithLabelValues("decode").Inc()
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("malformed stored collection; treating as empty")
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// saveList replaces the collection stored under key.
func saveList[T any](ctx context.Context, db DB, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("key", key).Msg("encode collection")
		return
	}
	db.put(ctx, key, string(raw))
}
