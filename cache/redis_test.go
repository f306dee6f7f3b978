package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	c := CreateRedisCacheWithClient(client)
	t.Cleanup(func() { c.Close() })

	return c, srv
}

func TestLookup_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.SetWithTTL(ctx, "search:supply:42", `{"supply_id":42}`, time.Hour); err != nil {
		t.Fatalf("SetWithTTL() error = %v", err)
	}

	val, res, err := c.Lookup(ctx, "search:supply:42")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if res != Hit {
		t.Errorf("Lookup() result = %v, want Hit", res)
	}
	if val != `{"supply_id":42}` {
		t.Errorf("Lookup() value = %q", val)
	}

	ttl, err := c.TTL(ctx, "search:supply:42")
	if err != nil {
		t.Fatalf("TTL() error = %v", err)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("TTL() = %v, want within (0, 1h]", ttl)
	}
}

func TestLookup_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	val, res, err := c.Lookup(context.Background(), "search:supply:404")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if res != Miss {
		t.Errorf("Lookup() result = %v, want Miss", res)
	}
	if val != "" {
		t.Errorf("Lookup() value = %q, want empty", val)
	}
}

func TestLookup_ExpiryForcesMiss(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	if err := c.SetWithTTL(ctx, "search:supply:7", "payload", time.Hour); err != nil {
		t.Fatalf("SetWithTTL() error = %v", err)
	}

	srv.FastForward(time.Hour + time.Second)

	_, res, err := c.Lookup(ctx, "search:supply:7")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if res != Miss {
		t.Errorf("Lookup() after expiry = %v, want Miss", res)
	}
}

func TestLookup_UnavailableWhenServerDown(t *testing.T) {
	c, srv := newTestCache(t)
	srv.Close()

	_, res, err := c.Lookup(context.Background(), "search:supply:1")
	if res != Unavailable {
		t.Errorf("Lookup() result = %v, want Unavailable", res)
	}
	if err == nil {
		t.Error("Lookup() expected error when server is down")
	}
}

func TestDelete_Idempotent(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.SetWithTTL(ctx, "search:supply:9", "payload", time.Hour); err != nil {
		t.Fatalf("SetWithTTL() error = %v", err)
	}

	if err := c.Delete(ctx, "search:supply:9"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := c.Delete(ctx, "search:supply:9"); err != nil {
		t.Errorf("Delete() second call error = %v", err)
	}
	if err := c.Delete(ctx, "search:supply:never-existed"); err != nil {
		t.Errorf("Delete() missing key error = %v", err)
	}
}

func TestSetWithTTL_OverwriteResetsTTL(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	if err := c.SetWithTTL(ctx, "search:supply:3", "old", time.Hour); err != nil {
		t.Fatalf("SetWithTTL() error = %v", err)
	}
	srv.FastForward(30 * time.Minute)

	if err := c.SetWithTTL(ctx, "search:supply:3", "new", time.Hour); err != nil {
		t.Fatalf("SetWithTTL() overwrite error = %v", err)
	}

	ttl, err := c.TTL(ctx, "search:supply:3")
	if err != nil {
		t.Fatalf("TTL() error = %v", err)
	}
	if ttl <= 30*time.Minute {
		t.Errorf("TTL() = %v, want reset to a full hour", ttl)
	}

	val, _, _ := c.Lookup(ctx, "search:supply:3")
	if val != "new" {
		t.Errorf("Lookup() = %q, want %q", val, "new")
	}
}
