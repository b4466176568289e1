package cache

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Options selects and configures a backend.
type Options struct {
	Backend string

	Dir string // file

	Addr     string // redis
	Password string
	DB       int
	Prefix   string

	URI        string // mongo
	Database   string
	Collection string
}

// Open builds the cache selected by opts.Backend. An empty backend selects
// the file cache in [DefaultDir] unless opts.Dir is set.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendFile:
		dir := opts.Dir
		if dir == "" {
			d, err := DefaultDir()
			if err != nil {
				return nil, fmt.Errorf("cache dir: %w", err)
			}
			dir = d
		}
		c, err := NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		c, err := NewRedisCache(ctx, RedisConfig{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
			Prefix:   opts.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendMongo:
		c, err := NewMongoCache(ctx, MongoConfig{
			URI:        opts.URI,
			Database:   opts.Database,
			Collection: opts.Collection,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendNone:
		return NewNullCache(), nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q (must be one of: file, redis, mongo, none)", ErrInvalidConfig, opts.Backend)
}
