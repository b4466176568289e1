// Package cache stores derived artifacts: generated trees, visit logs and
// rendered output.
//
// Everything cached here is a pure function of its key, so entries can be
// dropped at any time. Four backends implement [Cache]:
//
//   - [FileCache]: JSON files under a directory (CLI default)
//   - [NullCache]: never stores anything (caching disabled)
//   - [RedisCache]: shared cache for multiple API servers
//   - [MongoCache]: document store with a TTL index
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes every input that affects
// the cached value; [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Entry lifetimes per artifact kind.
const (
	TTLTree     = 24 * time.Hour
	TTLSearch   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// TreeKeyOpts holds the generation parameters that determine a tree.
type TreeKeyOpts struct {
	Levels      int    `json:"levels"`
	Nodes       int    `json:"nodes"`
	MaxChildren int    `json:"max_children"`
	Mode        string `json:"mode"`
	Seed        uint64 `json:"seed"`
}

// SearchKeyOpts holds the search inputs that determine a visit log.
type SearchKeyOpts struct {
	Algorithm         string `json:"algorithm"`
	Target            string `json:"target"`
	DepthLimit        int    `json:"depth_limit"`
	MaxIterativeDepth int    `json:"max_iterative_depth"`
}

// ArtifactKeyOpts holds the render inputs that determine an artifact.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Algorithm string `json:"algorithm,omitempty"`
	Target    string `json:"target,omitempty"`
	Step      int    `json:"step"`

	// Depth limits change which nodes dls and iddfs visit.
	DepthLimit        int `json:"depth_limit,omitempty"`
	MaxIterativeDepth int `json:"max_iterative_depth,omitempty"`

	Width    float64 `json:"width,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// TreeKey identifies a generated tree.
	TreeKey(opts TreeKeyOpts) string

	// SearchKey identifies a visit log over the tree with the given hash.
	SearchKey(treeHash string, opts SearchKeyOpts) string

	// ArtifactKey identifies a rendered artifact of the tree with the given hash.
	ArtifactKey(treeHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key inputs into fixed-length keys with a kind prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) TreeKey(opts TreeKeyOpts) string {
	return hashKey("tree", opts)
}

func (DefaultKeyer) SearchKey(treeHash string, opts SearchKeyOpts) string {
	return hashKey("search", treeHash, opts)
}

func (DefaultKeyer) ArtifactKey(treeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", treeHash, opts)
}

var _ Keyer = DefaultKeyer{}
