package kv

import (
	"context"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestRedis_PrefixedGetSetKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(mr.Addr(), "", 0)
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	s := NewRedis(client, "market:")
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "books"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "books", "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "purchases", `[{"id":"p"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// A foreign key outside the prefix must not leak into Keys.
	mr.Set("other:books", "x")

	if got, _ := mr.Get("market:books"); got != "[]" {
		t.Fatalf("raw redis value = %q; want []", got)
	}
	v, ok, err := s.Get(ctx, "purchases")
	if err != nil || !ok || v != `[{"id":"p"}]` {
		t.Fatalf("Get = %q ok=%v err=%v", v, ok, err)
	}

	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "books" || keys[1] != "purchases" {
		t.Fatalf("Keys = %v", keys)
	}
}

func TestRedis_ErrorsWhenServerGone(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(mr.Addr(), "", 0)
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	s := NewRedis(client, "")
	t.Cleanup(func() { _ = s.Close() })
	mr.Close()

	if err := s.Set(context.Background(), "books", "[]"); err == nil {
		t.Fatalf("expected error after server shutdown")
	}
}

func TestNewRedisClient_PingFailure(t *testing.T) {
	if _, err := NewRedisClient("127.0.0.1:1", "", 0); err == nil {
		t.Fatalf("expected ping failure on closed port")
	}
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := Open(Options{Driver: DriverRedis, RedisAddr: mr.Addr(), RedisPrefix: "m:"})
	if err != nil {
		t.Fatalf("Open redis: %v", err)
	}
	t.Cleanup(func() { _ = Close(s) })
	if err := s.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !mr.Exists("m:k") {
		t.Fatalf("expected prefixed key m:k in redis")
	}
}
