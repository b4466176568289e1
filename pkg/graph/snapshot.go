package graph

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/heuristic"
	"github.com/matzehuels/algoviz/pkg/search"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ParseFormat validates an export format name. An empty name selects JSON;
// "yml" is accepted as YAML.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be json or yaml)", s)
}

// =============================================================================
// Snapshot - Search Run Serialization
// =============================================================================

// Snapshot bundles a tree with one search run over it. It is what the API
// returns for a search and what the CLI exports.
type Snapshot struct {
	Tree       Graph            `json:"tree" yaml:"tree" bson:"tree"`
	Log        search.Log       `json:"log" yaml:"log" bson:"log"`
	Path       string           `json:"path" yaml:"path" bson:"path"`
	Heuristics *heuristic.Table `json:"heuristics,omitempty" yaml:"heuristics,omitempty" bson:"heuristics,omitempty"`
}

// NewSnapshot assembles a snapshot. Heuristics are attached only for
// informed strategies.
func NewSnapshot(g Graph, l search.Log, h *heuristic.Table) Snapshot {
	s := Snapshot{Tree: g, Log: l, Path: l.Path()}
	if l.Algorithm.Informed() {
		s.Heuristics = h
	}
	return s
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalLog serializes a visit log as indented JSON or YAML.
func MarshalLog(l search.Log, format string) ([]byte, error) {
	return marshal(l, format)
}

// UnmarshalLog decodes a JSON visit log.
func UnmarshalLog(data []byte) (search.Log, error) {
	var l search.Log
	if err := json.Unmarshal(data, &l); err != nil {
		return search.Log{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode log")
	}
	return l, nil
}

// MarshalSnapshot serializes a snapshot as indented JSON or YAML.
func MarshalSnapshot(s Snapshot, format string) ([]byte, error) {
	return marshal(s, format)
}

// WriteSnapshotFile writes a snapshot to path in the given format.
func WriteSnapshotFile(s Snapshot, path, format string) error {
	data, err := MarshalSnapshot(s, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func marshal(v any, format string) ([]byte, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == FormatYAML {
		return yaml.Marshal(v)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
