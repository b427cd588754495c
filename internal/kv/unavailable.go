package kv

import "context"

// Unavailable models a host that provides no persistent store. Every call
// returns ErrUnavailable; callers are expected to degrade to empty reads and
// skipped writes.
type Unavailable struct{}

func (Unavailable) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrUnavailable
}

func (Unavailable) Set(context.Context, string, string) error { return ErrUnavailable }

func (Unavailable) Keys(context.Context) ([]string, error) { return nil, ErrUnavailable }
