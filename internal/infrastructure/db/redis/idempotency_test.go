package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestIdempotencyKey(t *testing.T) {
	if got := idempotencyKey("register", "abc"); got != "idem:register:abc" {
		t.Fatalf("unexpected key %q", got)
	}
	if idempotencyKey("accommodation:u1", "k") == idempotencyKey("accommodation:u2", "k") {
		t.Fatal("keys for different scopes must differ")
	}
}

func TestIdempotencyStore_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, found, err := store.Lookup(ctx, "register", "k")
	if err == nil {
		t.Fatal("expected error from unreachable server")
	}
	if errors.Is(err, redis.Nil) || found {
		t.Fatalf("lookup must not report a hit on failure: found=%v err=%v", found, err)
	}
	if err := store.Remember(ctx, "register", "k", "id"); err == nil {
		t.Fatal("expected error from unreachable server")
	}
	if err := PingCheck(client)(ctx); err == nil {
		t.Fatal("expected ping check to fail")
	}
}
