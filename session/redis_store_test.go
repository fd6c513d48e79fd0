package session

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisStore(rdb, "fx", 0)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyRefreshToken, "refresh-1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, KeyRefreshToken)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "refresh-1" {
		t.Fatalf("expected refresh-1, got %q", got)
	}
}

func TestRedisStoreMissingKey(t *testing.T) {
	store := newTestRedisStore(t)

	_, err := store.Get(context.Background(), KeyAccessToken)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisStoreDeleteIdempotent(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyUser, `{"id":"u1","email":"a@b.c"}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Delete(ctx, KeyUser); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := store.Delete(ctx, KeyUser); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if _, err := store.Get(ctx, KeyUser); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := NewRedisStore(rdb, "fx", 0)

	mr.Close()

	if err := store.Set(context.Background(), KeyAccessToken, "tok"); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
