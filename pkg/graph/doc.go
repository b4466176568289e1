// Package graph provides serialization types for search trees and search runs.
//
// This package defines the canonical wire format for algoviz data, used for
// JSON files, API requests and responses, caching, and exports.
//
// # Architecture
//
// The package sits at the serialization boundary between internal
// representations and external formats:
//
//   - [Graph], [Snapshot]: Serialization types (this package)
//   - pkg/tree.Tree: Internal tree representation
//   - pkg/search.Log: Visit log of one search run
//
// Use [FromTree]/[ToTree] to convert between them.
//
// # Tree Serialization
//
// Trees use a node-link JSON format. Nodes carry their level, canvas
// position and the cost of the edge from their parent:
//
//	{
//	  "levels": 2,
//	  "max_children": 2,
//	  "nodes": [{"id": "A", "level": 0, "x": 250, "y": 100, "cost": 0},
//	            {"id": "B", "level": 1, "x": 150, "y": 200, "cost": 3, "parent": "A"}],
//	  "edges": [{"from": "A", "to": "B", "cost": 3}]
//	}
//
// Common operations:
//
//	t, _ := graph.ReadTreeFile("tree.json")    // File → Tree
//	graph.WriteTreeFile(t, "output.json")      // Tree → File
//	data, _ := graph.MarshalTree(t)            // Tree → []byte
//	t, _ = graph.UnmarshalTree(data)           // []byte → Tree
//
// [ToTree] rejects structures that are not trees (several roots, nodes with
// two parents, unreachable nodes) with errors.ErrCodeInvalidTree.
//
// # Logs and Snapshots
//
// Visit logs and snapshots export as JSON or YAML:
//
//	data, _ := graph.MarshalLog(log, graph.FormatYAML)
//
// # Concurrency
//
// All functions are safe for concurrent use on distinct values.
package graph
