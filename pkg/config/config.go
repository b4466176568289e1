// Package config loads algoviz settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/algoviz/config.toml, falling back to
// ~/.config/algoviz/config.toml. A missing file is not an error: [Default]
// applies. Keys present in the file override the defaults one by one.
//
//	[tree]
//	levels = 4
//	nodes = 12
//	mode = "random"
//
//	[search]
//	algorithm = "astar"
//
//	[cache]
//	backend = "redis"
//	addr = "localhost:6379"
//	ttl = "12h"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/algoviz/pkg/cache"
	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/tree"
)

const appName = "algoviz"

// Duration is a time.Duration written as a Go duration string ("30m").
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// TreeConfig holds default generation parameters.
type TreeConfig struct {
	Levels      int    `toml:"levels"`
	Nodes       int    `toml:"nodes"`
	MaxChildren int    `toml:"max_children"`
	Mode        string `toml:"mode"`
	Seed        uint64 `toml:"seed,omitempty"` // 0 picks a fresh seed per run
}

// SearchConfig holds default search settings.
type SearchConfig struct {
	Algorithm         string `toml:"algorithm"`
	DepthLimit        int    `toml:"depth_limit"`
	MaxIterativeDepth int    `toml:"max_iterative_depth"`
}

// RenderConfig holds default render settings.
type RenderConfig struct {
	Format   string  `toml:"format"`
	Width    float64 `toml:"width,omitempty"`
	Detailed bool    `toml:"detailed,omitempty"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend    string   `toml:"backend"` // file, redis, mongo, none
	Dir        string   `toml:"dir,omitempty"`
	Addr       string   `toml:"addr,omitempty"`
	Password   string   `toml:"password,omitempty"`
	DB         int      `toml:"db,omitempty"`
	Prefix     string   `toml:"prefix,omitempty"`
	URI        string   `toml:"uri,omitempty"`
	Database   string   `toml:"database,omitempty"`
	Collection string   `toml:"collection,omitempty"`
	TTL        Duration `toml:"ttl,omitempty"` // 0 keeps per-kind defaults
}

// ServerConfig holds API server settings.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	SessionTTL      Duration `toml:"session_ttl"`
	MaxBodyBytes    int64    `toml:"max_body_bytes"`
}

// Config is the top-level configuration.
type Config struct {
	Tree   TreeConfig   `toml:"tree"`
	Search SearchConfig `toml:"search"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tree: TreeConfig{
			Levels:      tree.DefaultLevels,
			Nodes:       tree.DefaultNodes,
			MaxChildren: tree.DefaultMaxChildren,
			Mode:        string(tree.DefaultMode),
		},
		Search: SearchConfig{
			Algorithm:         string(search.DefaultAlgorithm),
			DepthLimit:        search.DefaultDepthLimit,
			MaxIterativeDepth: search.DefaultMaxIterativeDepth,
		},
		Render: RenderConfig{
			Format: "svg",
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
		},
		Server: ServerConfig{
			Addr:            "localhost:8080",
			ReadTimeout:     Duration(10 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
			SessionTTL:      Duration(30 * time.Minute),
			MaxBodyBytes:    1 << 20,
		},
	}
}

// Dir returns the XDG config directory for algoviz.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Path returns the full path to config.toml.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// Load reads the config file from the XDG config directory.
// Returns Default if the file doesn't exist.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns Default if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parsing config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the enumerated settings. Numeric ranges are checked where
// the values are used.
func (c Config) Validate() error {
	if _, err := tree.ParseMode(c.Tree.Mode); err != nil {
		return err
	}
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", cache.BackendFile, cache.BackendRedis, cache.BackendMongo, cache.BackendNone:
	default:
		return fmt.Errorf("invalid cache backend: %q (must be one of: file, redis, mongo, none)", c.Cache.Backend)
	}
	return nil
}

// TreeParams converts the [tree] section to generation parameters.
func (c Config) TreeParams() tree.Params {
	mode, _ := tree.ParseMode(c.Tree.Mode)
	return tree.Params{
		Levels:      c.Tree.Levels,
		Nodes:       c.Tree.Nodes,
		MaxChildren: c.Tree.MaxChildren,
		Mode:        mode,
		Seed:        c.Tree.Seed,
	}
}

// SearchOptions converts the [search] section to engine options.
func (c Config) SearchOptions() search.Options {
	return search.Options{
		DepthLimit:        c.Search.DepthLimit,
		MaxIterativeDepth: c.Search.MaxIterativeDepth,
	}
}

// CacheOptions converts the [cache] section to backend options.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:    c.Cache.Backend,
		Dir:        c.Cache.Dir,
		Addr:       c.Cache.Addr,
		Password:   c.Cache.Password,
		DB:         c.Cache.DB,
		Prefix:     c.Cache.Prefix,
		URI:        c.Cache.URI,
		Database:   c.Cache.Database,
		Collection: c.Cache.Collection,
	}
}
