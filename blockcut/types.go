// Package blockcut option plumbing and error definitions for the
// block-cutpoint builder over a core.Graph.
package blockcut

import "errors"

// Sentinel errors for Build and BlockCutTree lookups.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed to Build.
	ErrNilGraph = errors.New("blockcut: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("blockcut: graph has no vertices")

	// ErrDirectedGraph is returned when the graph is directed by default
	// or contains at least one directed edge. Block decomposition is
	// defined on undirected graphs only.
	ErrDirectedGraph = errors.New("blockcut: graph must be undirected")

	// ErrStartVertexNotFound is returned when WithStartVertex names an
	// ID absent from the graph.
	ErrStartVertexNotFound = errors.New("blockcut: start vertex not found")

	// ErrDisconnected is returned by Build under WithConnectivityCheck
	// when the graph has more than one connected component.
	ErrDisconnected = errors.New("blockcut: graph is disconnected")

	// ErrVertexNotFound is returned by BlockCutTree lookups for a vertex
	// that does not exist in the source graph.
	ErrVertexNotFound = errors.New("blockcut: vertex not found")
)

// Option configures Build behavior via functional arguments.
type Option func(*Options)

// Options holds parameters that customize the decomposition.
type Options struct {
	// StartVertex is the DFS root. Empty means "lexicographically
	// smallest vertex ID", which keeps Build deterministic.
	StartVertex string

	// CheckConnectivity, when true, makes Build reject a disconnected
	// graph with ErrDisconnected instead of silently covering only the
	// start vertex's component.
	CheckConnectivity bool
}

// DefaultOptions returns Options with sane defaults:
//   - StartVertex: "" (smallest vertex ID)
//   - CheckConnectivity: false (partial coverage tolerated).
func DefaultOptions() Options {
	return Options{
		StartVertex:       "",
		CheckConnectivity: false,
	}
}

// WithStartVertex roots the traversal at id. The id must exist in the
// graph or Build fails with ErrStartVertexNotFound.
func WithStartVertex(id string) Option {
	return func(o *Options) {
		o.StartVertex = id
	}
}

// WithConnectivityCheck makes Build verify that the whole graph is
// reachable from the start vertex before decomposing it.
func WithConnectivityCheck() Option {
	return func(o *Options) {
		o.CheckConnectivity = true
	}
}
