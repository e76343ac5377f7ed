// Package blockcut computes the block-cutpoint graph (BC-tree) of an
// undirected core.Graph: the cut vertices, the biconnected components
// ("blocks"), and the bipartite tree that connects them.
//
// What:
//
//   - Build(g, opts...): runs a single Hopcroft-Tarjan style depth-first
//     search over g and returns a *BlockCutTree holding:
//   - every cut vertex (vertex whose removal disconnects its component)
//   - every block, exposed as a lazy read-only view of g (no copying)
//   - the BC-tree itself: one node per block, one node per cut vertex
//     (a singleton block), and an edge between a cut vertex and every
//     block that contains it
//   - the rooted DFS tree built during traversal, for diagnostics
//
// Why:
//   - Locate articulation points before planning redundancy in a network
//   - Decompose a graph into 2-connected pieces for per-block algorithms
//     (planarity, SPQR, cycle space) that only make sense on blocks
//   - Reduce tree-like questions about a general graph to its BC-tree
//
// Key Types:
//
//   - BlockCutTree: immutable result; safe for concurrent readers
//   - Block: opaque handle for one tree node; Subgraph() yields a
//     core.MaskView of the source graph restricted to the block
//   - Option / Options: functional options (start vertex, connectivity)
//
// Complexity:
//
//   - Build:  Time O(V + E), Memory O(V + E) (edge stack + index maps)
//   - All BlockCutTree accessors are O(1) or O(answer)
//
// Errors:
//
//   - ErrNilGraph               g is nil
//   - ErrEmptyGraph             g has no vertices
//   - ErrDirectedGraph          g is directed or carries directed edges
//   - ErrStartVertexNotFound    WithStartVertex id absent from g
//   - ErrDisconnected           WithConnectivityCheck on a disconnected g
//   - ErrVertexNotFound         lookup of a vertex absent from g
//
// Without WithConnectivityCheck, a disconnected graph is accepted and the
// result covers only the component of the start vertex; vertices outside
// it have no block.
//
// Functions:
//
//   - Build(g *core.Graph, opts ...Option) (*BlockCutTree, error)
//   - DefaultOptions(), WithStartVertex(id), WithConnectivityCheck()
package blockcut
