package kv

import (
	"fmt"
	"strings"
)

// Drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverNone     = "none"
)

// Options selects and configures a backend for Open.
type Options struct {
	Driver string

	SQLitePath  string
	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// Tracing installs the GORM OpenTelemetry plugin on SQL backends.
	Tracing bool
}

// Open builds the Store described by opts.
func Open(opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverNone:
		return Unavailable{}, nil
	case DriverSQLite, "":
		db, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", opts.SQLitePath, err)
		}
		if opts.Tracing {
			if err := EnableTracing(db); err != nil {
				return nil, fmt.Errorf("gorm tracing: %w", err)
			}
		}
		return NewSQL(db)
	case DriverPostgres:
		db, err := OpenPostgres(opts.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if opts.Tracing {
			if err := EnableTracing(db); err != nil {
				return nil, fmt.Errorf("gorm tracing: %w", err)
			}
		}
		return NewSQL(db)
	case DriverRedis:
		client, err := NewRedisClient(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		if err != nil {
			return nil, err
		}
		return NewRedis(client, opts.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("kv: unknown driver %q", opts.Driver)
	}
}
