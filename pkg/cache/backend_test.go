package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// exerciseBackend runs the behavior every Cache implementation shares.
func exerciseBackend(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "algoviz-test:missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "algoviz-test:key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "algoviz-test:key")
	if err != nil || !hit || string(data) != "value" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "algoviz-test:key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "algoviz-test:key"); hit {
		t.Error("Get after Delete should miss")
	}

	if cl, ok := c.(Clearer); ok {
		_ = c.Set(ctx, "algoviz-test:a", []byte("a"), 0)
		if err := cl.Clear(ctx); err != nil {
			t.Fatalf("Clear: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "algoviz-test:a"); hit {
			t.Error("Get after Clear should miss")
		}
	}
}

func TestFileBackend(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	exerciseBackend(t, c)
}

func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("ALGOVIZ_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ALGOVIZ_TEST_REDIS_ADDR not set")
	}
	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: addr, Prefix: "algoviz-test:"})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	exerciseBackend(t, c)
}

func TestMongoBackend(t *testing.T) {
	uri := os.Getenv("ALGOVIZ_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("ALGOVIZ_TEST_MONGO_URI not set")
	}
	c, err := NewMongoCache(context.Background(), MongoConfig{URI: uri, Database: "algoviz_test"})
	if err != nil {
		t.Fatalf("NewMongoCache: %v", err)
	}
	defer c.Close()
	exerciseBackend(t, c)
}
