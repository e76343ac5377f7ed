// File: view.go
// Role: Non-mutating graph views: snapshot views (cloning topology with altered
//       properties) and the lazy, predicate-filtered MaskView.
// Determinism:
//   - Preserves vertex/edge IDs and directedness. No reordering guarantees beyond core rules.
// Concurrency:
//   - Snapshot views take read locks on the source; results are fresh graph instances.
//   - MaskView holds no locks of its own; each query delegates to the base graph's
//     locked read methods.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - UnweightedView returns Weighted()==false and sets all edge weights to 0.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.
//   - MaskView is lazy: no copying; base mutations remain visible through the view.

package core

import (
	"sort"
	"sync/atomic"
)

// viewEdgeWeightZero is the canonical weight value used by views that enforce unweighted semantics.
// It is a named constant to make "forced zero weight" intentional and grep-friendly.
const viewEdgeWeightZero float64 = 0

// UnweightedView returns a new Graph with identical topology but with all edge
// weights set to zero and the weighted flag turned off. The input graph is not
// mutated. Edge IDs and directedness are preserved.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func UnweightedView(g *Graph) *Graph {
	// AI-HINT: Useful when algorithms require zero weights without touching original graph.

	// Build a graph with same directedness/mode but unweighted.
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	if g.MixedEdges() {
		opts = append(opts, WithMixedEdges())
	}
	out := NewGraph(opts...)

	// Copy vertices
	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	// Copy edges with zero weight, preserving IDs and directedness.
	g.muEdgeAdj.RLock()
	// Snapshot the edge ID counter under the same lock as the edge catalog snapshot.
	// This ensures the view continues generating IDs strictly after the last ID used by 'g'.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e, ne *Edge
	for eid, e = range g.edges {
		// Force weight to zero regardless of the source weight; directedness and IDs are preserved.
		ne = &Edge{ID: eid, From: e.From, To: e.To, Weight: viewEdgeWeightZero, Directed: e.Directed}
		out.edges[eid] = ne
		ensureAdjacency(out, ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(out, ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	// Carry over the edge ID counter so future AddEdge() calls cannot collide with copied IDs.
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	// AI-HINT: Build problem-specific slices of the graph without side effects on 'g'.

	// Reuse the same configuration as g (including weighted flag).
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	if g.MixedEdges() {
		opts = append(opts, WithMixedEdges())
	}
	out := NewGraph(opts...)

	// Copy only kept vertices.
	g.muVert.RLock()
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	// Copy only edges whose endpoints are both kept; preserve ID and directedness.
	g.muEdgeAdj.RLock()
	// Snapshot the edge ID counter under the same lock as the edge catalog snapshot.
	// Even if the induced subgraph filters out some edges, carrying the counter forward
	// prevents reusing historical IDs and keeps monotonicity aligned with the source graph.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e, ne *Edge
	for eid, e = range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		out.edges[eid] = ne
		ensureAdjacency(out, ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(out, ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	// Carry over the edge ID counter so future AddEdge() calls cannot collide with copied IDs.
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// MaskView is an immutable, lazily-filtered, read-only view over a base Graph.
//
// A MaskView reports only the vertices satisfying keepVertex and the edges
// whose endpoints are both kept and which satisfy keepEdge. Nothing is copied:
// queries delegate to the base graph and filter on the fly, so a MaskView over
// a large graph costs O(1) to create. The view exposes no mutation surface;
// mutations of the base graph performed after creation remain visible through
// the view (lazy semantics), while nothing done with the view ever propagates
// back to the base.
//
// A *MaskView has stable pointer identity and is therefore usable as a map key
// or as an opaque vertex handle in derived graphs.
type MaskView struct {
	base       *Graph
	keepVertex func(id string) bool
	keepEdge   func(e *Edge) bool
}

// NewMaskView builds a lazy filtered view over g.
// A nil keepVertex or keepEdge predicate keeps everything in that dimension.
// Predicates must be pure and fast; they run on every query.
//
// Complexity: O(1). Concurrency: safe; queries use the base graph's read locks.
func NewMaskView(g *Graph, keepVertex func(id string) bool, keepEdge func(e *Edge) bool) *MaskView {
	// AI-HINT: nil predicate == keep-all; predicates run per query, keep them O(1).
	if keepVertex == nil {
		keepVertex = func(string) bool { return true }
	}
	if keepEdge == nil {
		keepEdge = func(*Edge) bool { return true }
	}

	return &MaskView{base: g, keepVertex: keepVertex, keepEdge: keepEdge}
}

// Base returns the underlying graph the view filters.
func (m *MaskView) Base() *Graph { return m.base }

// visible reports whether edge e passes the mask: both endpoints kept and
// the edge predicate satisfied.
func (m *MaskView) visible(e *Edge) bool {
	return m.keepVertex(e.From) && m.keepVertex(e.To) && m.keepEdge(e)
}

// HasVertex reports whether id exists in the base graph and passes the vertex mask.
// Complexity: O(1) plus one predicate call.
func (m *MaskView) HasVertex(id string) bool {
	return m.base.HasVertex(id) && m.keepVertex(id)
}

// Vertices returns the kept vertex IDs in lexicographic ascending order.
// Complexity: O(V log V) (inherited from the base enumeration).
func (m *MaskView) Vertices() []string {
	all := m.base.Vertices()
	out := make([]string, 0, len(all))
	for _, id := range all {
		if m.keepVertex(id) {
			out = append(out, id)
		}
	}

	return out
}

// VertexCount returns the number of kept vertices. Complexity: O(V).
func (m *MaskView) VertexCount() int {
	count := 0
	for _, id := range m.base.Vertices() {
		if m.keepVertex(id) {
			count++
		}
	}

	return count
}

// Edges returns the kept edges sorted by Edge.ID asc.
// Returned pointers refer to live base-catalog edges; treat them as read-only.
// Complexity: O(E log E) (inherited from the base enumeration).
func (m *MaskView) Edges() []*Edge {
	all := m.base.Edges()
	out := make([]*Edge, 0, len(all))
	var e *Edge
	for _, e = range all {
		if m.visible(e) {
			out = append(out, e)
		}
	}

	return out
}

// EdgeCount returns the number of kept edges. Complexity: O(E).
func (m *MaskView) EdgeCount() int {
	count := 0
	for _, e := range m.base.Edges() {
		if m.visible(e) {
			count++
		}
	}

	return count
}

// HasEdge reports whether at least one kept edge from→to exists.
// Complexity: O(d) over the incident edges of from.
func (m *MaskView) HasEdge(from, to string) bool {
	if !m.HasVertex(from) || !m.HasVertex(to) {
		return false
	}
	edges, err := m.base.Neighbors(from)
	if err != nil {
		return false
	}
	for _, e := range edges {
		if m.visible(e) && e.Opposite(from) == to {
			return true
		}
	}

	return false
}

// Neighbors returns the kept edges incident to id, sorted by Edge.ID asc,
// following the base graph's neighborhood policy.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is absent from the base graph or masked out.
//
// Complexity: O(d log d) (inherited), plus predicate calls.
func (m *MaskView) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !m.keepVertex(id) {
		return nil, ErrVertexNotFound
	}
	all, err := m.base.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]*Edge, 0, len(all))
	var e *Edge
	for _, e = range all {
		if m.visible(e) {
			out = append(out, e)
		}
	}

	return out, nil
}

// NeighborIDs returns the unique kept vertex IDs adjacent to id,
// sorted lexicographically ascending.
// Errors propagate from Neighbors. Complexity: O(d + k log k).
func (m *MaskView) NeighborIDs(id string) ([]string, error) {
	edges, err := m.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Opposite(id)] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}
