package graph

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// =============================================================================
// Tree Serialization API
// =============================================================================

// MarshalTree converts a tree to indented JSON bytes.
func MarshalTree(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTreeTo(t, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTreeFile writes a tree to a JSON file.
// The file is created with 0644 permissions.
func WriteTreeFile(t *tree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTreeTo(t, f)
}

// WriteTree writes a tree as JSON to an io.Writer.
func WriteTree(t *tree.Tree, w io.Writer) error {
	return writeTreeTo(t, w)
}

// ReadTreeFile reads a JSON file and returns the decoded tree.
func ReadTreeFile(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readTreeFrom(f)
}

// ReadTree decodes a JSON tree from an io.Reader.
func ReadTree(r io.Reader) (*tree.Tree, error) {
	return readTreeFrom(r)
}

// UnmarshalTree decodes JSON bytes into a validated tree.
func UnmarshalTree(data []byte) (*tree.Tree, error) {
	g, err := UnmarshalGraph(data)
	if err != nil {
		return nil, err
	}
	return ToTree(g)
}

// UnmarshalGraph deserializes JSON bytes to a Graph without validating it.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode tree")
	}
	return g, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTreeTo(t *tree.Tree, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromTree(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readTreeFrom(r io.Reader) (*tree.Tree, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode tree")
	}
	return ToTree(g)
}
