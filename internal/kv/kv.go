// Package kv provides the string-keyed key-value stores that back the
// marketplace collections. A Store holds opaque string values (the repo
// layer stores JSON documents in them) and is safe for concurrent use.
//
// Backends:
//   - Memory:      process-local map, lost on restart
//   - SQL:         GORM table on SQLite or Postgres
//   - Redis:       go-redis client with a key prefix
//   - Unavailable: the "no host store" case; every call fails
package kv

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by stores that cannot serve requests at all.
var ErrUnavailable = errors.New("kv: store unavailable")

// Store is the capability the data-access layer needs from its host storage.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// Keys lists every key currently present, in no particular order.
	Keys(ctx context.Context) ([]string, error)
}

// Closer is implemented by stores holding external connections.
type Closer interface {
	Close() error
}

// Close releases s if it holds resources. Stores without resources are a no-op.
func Close(s Store) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}
