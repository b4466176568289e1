// Package pkg holds the libraries behind the algoviz CLI and HTTP API.
//
// # Overview
//
// algoviz generates small labelled trees, runs one of eleven traversal and
// search strategies toward a target, and records the order in which nodes
// are visited. A visit log can then be replayed one step at a time, rendered
// as a highlighted diagram, or exported. A second engine runs classical
// ciphers and records every step of the transformation in the same way.
//
// # Architecture
//
//	[tree] generate (levels, nodes, mode, seed)
//	   ↓
//	[search] run strategy toward a target → visit log
//	   ↓                          ↘
//	[session] step through log    [heuristic] h(n) table and audit
//	   ↓
//	[render] frame → SVG, DOT, Graphviz, PNG/PDF
//
// [pipeline] ties these stages together behind a [cache], emitting
// [observability] hooks. [server] and the CLI in internal/cli are thin
// layers over the pipeline.
//
// # Main Packages
//
//   - [tree]: node model, label scheme, flexible and random generators
//   - [heuristic]: the A*/greedy estimate, with an admissibility audit
//   - [search]: the eleven strategies and the visit log
//   - [session]: cursor over a visit log, with an in-memory store
//   - [cipher]: classical ciphers producing step traces
//   - [graph]: JSON/YAML wire format for trees and search snapshots
//   - [render]: frames and SVG output; [render/nodelink] via Graphviz
//   - [pipeline]: validated options, cached generate → search → render
//   - [cache]: file, redis, mongo and null backends with hashed keys
//   - [config]: TOML configuration with documented defaults
//   - [errors]: coded errors and input validation
//   - [observability]: hook registry and Prometheus metrics
//   - [server]: chi-based HTTP API with stepping sessions
//
// # Quick Start
//
//	t, _ := tree.Generate(tree.Params{Nodes: 12, Levels: 4, Seed: 7})
//	log := search.Run(t, "K", search.AStar, search.Options{})
//	svg := render.SVG(t, render.NewFrame(log, log.Len()), render.Options{})
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/tree
// [heuristic]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/heuristic
// [search]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/search
// [session]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/session
// [cipher]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/cipher
// [graph]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/observability
// [server]: https://pkg.go.dev/github.com/matzehuels/algoviz/pkg/server
package pkg
