package cache

import (
	"context"
	"time"
)

// NullCache stores nothing: every Get misses. It backs the "none" backend
// and --no-cache, so the pipeline never needs a nil check.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return &NullCache{} }

func (c *NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (c *NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (c *NullCache) Delete(context.Context, string) error { return nil }

// Clear succeeds trivially.
func (c *NullCache) Clear(context.Context) error { return nil }

func (c *NullCache) Close() error { return nil }

var (
	_ Cache   = (*NullCache)(nil)
	_ Clearer = (*NullCache)(nil)
)
