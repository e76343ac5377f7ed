package blockcut_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostralek/bcgraph/bfs"
	"github.com/ostralek/bcgraph/blockcut"
	"github.com/ostralek/bcgraph/core"
)

// buildTriangle creates the 3-cycle A-B-C.
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("A", "C", 0)

	return g
}

// buildPath3 creates the path 1-2-3 (vertex 2 is the only cut vertex).
func buildPath3() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("1", "2", 0)
	g.AddEdge("2", "3", 0)

	return g
}

// buildBarbell creates two triangles A-B-C and D-E-F joined by the
// bridge C-D. Cut vertices: C and D. Blocks: {A,B,C}, {C,D}, {D,E,F}.
func buildBarbell() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("A", "C", 0)
	g.AddEdge("C", "D", 0)
	g.AddEdge("D", "E", 0)
	g.AddEdge("E", "F", 0)
	g.AddEdge("D", "F", 0)

	return g
}

// blockSignatures renders each proper block as a comma-joined sorted
// vertex list, with the list of signatures itself sorted, so block
// partitions can be compared independently of discovery order.
func blockSignatures(t *blockcut.BlockCutTree) []string {
	blocks := t.Blocks()
	sigs := make([]string, 0, len(blocks))
	for _, b := range blocks {
		sigs = append(sigs, strings.Join(b.Vertices(), ","))
	}
	sort.Strings(sigs)

	return sigs
}

func TestBuild_NilGraph(t *testing.T) {
	res, err := blockcut.Build(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, blockcut.ErrNilGraph)
}

func TestBuild_EmptyGraph(t *testing.T) {
	res, err := blockcut.Build(core.NewGraph())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, blockcut.ErrEmptyGraph)
}

func TestBuild_DirectedGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 0)

	res, err := blockcut.Build(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, blockcut.ErrDirectedGraph)
}

func TestBuild_MixedEdgeRejected(t *testing.T) {
	// Default-undirected graph with one per-edge directed override.
	g := core.NewGraph(core.WithMixedEdges())
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0, core.WithEdgeDirected(true))

	res, err := blockcut.Build(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, blockcut.ErrDirectedGraph)
}

func TestBuild_StartVertexNotFound(t *testing.T) {
	res, err := blockcut.Build(buildTriangle(), blockcut.WithStartVertex("Z"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, blockcut.ErrStartVertexNotFound)
}

func TestBuild_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))

	res, err := blockcut.Build(g)
	require.NoError(t, err)

	assert.Empty(t, res.Cutpoints())
	assert.Empty(t, res.Blocks())
	assert.Equal(t, 0, res.Tree().VertexCount())

	// Known but edgeless vertex: no block, no error.
	blk, err := res.Block("X")
	assert.NoError(t, err)
	assert.Nil(t, blk)
}

func TestBuild_Triangle(t *testing.T) {
	res, err := blockcut.Build(buildTriangle())
	require.NoError(t, err)

	assert.Empty(t, res.Cutpoints(), "a cycle has no cut vertices")
	require.Len(t, res.Blocks(), 1)
	assert.Equal(t, []string{"A", "B", "C"}, res.Blocks()[0].Vertices())

	// Tree is the single block node with no edges.
	assert.Equal(t, 1, res.Tree().VertexCount())
	assert.Equal(t, 0, res.Tree().EdgeCount())

	// All three vertices share the same canonical block.
	ba, err := res.Block("A")
	require.NoError(t, err)
	bb, err := res.Block("B")
	require.NoError(t, err)
	assert.Same(t, ba, bb)
}

func TestBuild_Path(t *testing.T) {
	res, err := blockcut.Build(buildPath3())
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, res.Cutpoints())
	assert.Equal(t, []string{"1,2", "2,3"}, blockSignatures(res))

	// Canonical block of the cut vertex is its singleton.
	b2, err := res.Block("2")
	require.NoError(t, err)
	assert.True(t, b2.IsCutpoint())
	assert.Equal(t, []string{"2"}, b2.Vertices())

	// The cut vertex belongs to both proper blocks.
	both, err := res.BlocksOf("2")
	require.NoError(t, err)
	assert.Len(t, both, 2)

	// Tree: 2 blocks + 1 singleton, star around the singleton.
	assert.Equal(t, 3, res.Tree().VertexCount())
	assert.Equal(t, 2, res.Tree().EdgeCount())
}

func TestBuild_TwoTrianglesSharedVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("A", "C", 0)
	g.AddEdge("C", "D", 0)
	g.AddEdge("D", "E", 0)
	g.AddEdge("C", "E", 0)

	res, err := blockcut.Build(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"C"}, res.Cutpoints())
	assert.Equal(t, []string{"A,B,C", "C,D,E"}, blockSignatures(res))

	shared, err := res.BlocksOf("C")
	require.NoError(t, err)
	assert.Len(t, shared, 2)

	assert.Equal(t, 3, res.Tree().VertexCount())
	assert.Equal(t, 2, res.Tree().EdgeCount())
}

func TestBuild_Star(t *testing.T) {
	// Center A with leaves B, C, D: every edge is its own block and the
	// root of the traversal (A, smallest ID) is a cut vertex, which
	// exercises the post-traversal root out-degree rule.
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("A", "C", 0)
	g.AddEdge("A", "D", 0)

	res, err := blockcut.Build(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, res.Cutpoints())
	assert.Equal(t, []string{"A,B", "A,C", "A,D"}, blockSignatures(res))
	assert.Equal(t, 4, res.Tree().VertexCount())
	assert.Equal(t, 3, res.Tree().EdgeCount())
}

func TestBuild_RootNotCutpoint(t *testing.T) {
	// Rooting at a leaf of the path must not make it a cut vertex even
	// though block closure fires at it.
	res, err := blockcut.Build(buildPath3(), blockcut.WithStartVertex("1"))
	require.NoError(t, err)

	cut, err := res.IsCutpoint("1")
	require.NoError(t, err)
	assert.False(t, cut)
	assert.Equal(t, []string{"2"}, res.Cutpoints())
}

func TestBuild_Barbell(t *testing.T) {
	res, err := blockcut.Build(buildBarbell())
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "D"}, res.Cutpoints())
	assert.Equal(t, []string{"A,B,C", "C,D", "D,E,F"}, blockSignatures(res))

	// Tree: 3 blocks + 2 singletons arranged in a path of 5 nodes.
	assert.Equal(t, 5, res.Tree().VertexCount())
	assert.Equal(t, 4, res.Tree().EdgeCount())

	// The bridge block {C,D} contains both cut vertices.
	bridge, err := res.BlocksOf("C")
	require.NoError(t, err)
	var found bool
	for _, b := range bridge {
		if b.Contains("D") {
			found = true
			assert.Equal(t, []string{"C", "D"}, b.Vertices())
		}
	}
	assert.True(t, found, "bridge block {C,D} must exist")
}

func TestBuild_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	g.AddEdge("A", "B", 0)
	g.AddEdge("A", "A", 0)

	res, err := blockcut.Build(g)
	require.NoError(t, err)

	assert.Empty(t, res.Cutpoints())
	assert.Equal(t, []string{"A,B"}, blockSignatures(res))
}

func TestBuild_ParallelEdges(t *testing.T) {
	// A second parallel edge to the DFS parent does not create a cycle:
	// the multigraph path behaves exactly like the simple path.
	g := core.NewGraph(core.WithMultiEdges())
	g.AddEdge("1", "2", 0)
	g.AddEdge("1", "2", 0)
	g.AddEdge("2", "3", 0)

	res, err := blockcut.Build(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, res.Cutpoints())
	assert.Equal(t, []string{"1,2", "2,3"}, blockSignatures(res))
}

func TestBuild_Disconnected_PartialCoverage(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("X", "Y", 0)

	// Default mode: only the start vertex's component is decomposed.
	res, err := blockcut.Build(g, blockcut.WithStartVertex("A"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A,B"}, blockSignatures(res))

	// X is a known vertex of the source graph but has no block.
	blk, err := res.Block("X")
	assert.NoError(t, err)
	assert.Nil(t, blk)

	cut, err := res.IsCutpoint("X")
	assert.NoError(t, err)
	assert.False(t, cut)
}

func TestBuild_Disconnected_Strict(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("X", "Y", 0)

	res, err := blockcut.Build(g, blockcut.WithConnectivityCheck())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, blockcut.ErrDisconnected)
}

func TestBuild_StartVertexChoiceDoesNotChangePartition(t *testing.T) {
	base, err := blockcut.Build(buildBarbell())
	require.NoError(t, err)

	for _, start := range []string{"A", "C", "D", "F"} {
		res, berr := blockcut.Build(buildBarbell(), blockcut.WithStartVertex(start))
		require.NoError(t, berr)
		assert.Equal(t, base.Cutpoints(), res.Cutpoints(), "start=%s", start)
		assert.Equal(t, blockSignatures(base), blockSignatures(res), "start=%s", start)
	}
}

func TestBuild_DeterminismUnderRelabeling(t *testing.T) {
	relabel := map[string]string{"A": "q9", "B": "q1", "C": "q5", "D": "q3", "E": "q8", "F": "q2"}

	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"A", "C"}, {"C", "D"}, {"D", "E"}, {"E", "F"}, {"D", "F"},
	} {
		g.AddEdge(relabel[pair[0]], relabel[pair[1]], 0)
	}

	res, err := blockcut.Build(g)
	require.NoError(t, err)

	// Same structure as the barbell: the partition must map over.
	assert.Equal(t, []string{relabel["D"], relabel["C"]}, res.Cutpoints()) // q3 < q5
	assert.Equal(t, []string{"q1,q5,q9", "q2,q3,q8", "q3,q5"}, blockSignatures(res))
}

func TestBlockCutTree_TreeShape(t *testing.T) {
	res, err := blockcut.Build(buildBarbell())
	require.NoError(t, err)

	tree := res.Tree()
	nodes := res.Nodes()
	require.Equal(t, len(nodes), tree.VertexCount())

	// A tree on n nodes has n-1 edges and is connected.
	assert.Equal(t, tree.VertexCount()-1, tree.EdgeCount())
	reach, err := bfs.BFS(tree, nodes[0].ID())
	require.NoError(t, err)
	assert.Len(t, reach.Order, tree.VertexCount())

	// Bipartite: every tree edge joins a singleton and a proper block.
	for _, e := range tree.Edges() {
		from, nerr := res.Node(e.From)
		require.NoError(t, nerr)
		to, nerr := res.Node(e.To)
		require.NoError(t, nerr)
		assert.NotEqual(t, from.IsCutpoint(), to.IsCutpoint(),
			"tree edge %s-%s must join a cut vertex to a block", e.From, e.To)
	}

	// Leaves of the BC-tree are always proper blocks.
	for _, n := range nodes {
		deg, nerr := tree.NeighborIDs(n.ID())
		require.NoError(t, nerr)
		if len(deg) <= 1 {
			assert.False(t, n.IsCutpoint(), "leaf %s must be a block", n.ID())
		}
	}
}

func TestBlockCutTree_Coverage(t *testing.T) {
	g := buildBarbell()
	res, err := blockcut.Build(g)
	require.NoError(t, err)

	// Every vertex appears in at least one proper block; non-cut
	// vertices in exactly one.
	for _, v := range g.Vertices() {
		blocks, berr := res.BlocksOf(v)
		require.NoError(t, berr)
		cut, cerr := res.IsCutpoint(v)
		require.NoError(t, cerr)
		if cut {
			assert.GreaterOrEqual(t, len(blocks), 2, "cut vertex %s", v)
		} else {
			assert.Len(t, blocks, 1, "ordinary vertex %s", v)
		}
	}

	// Any two proper blocks share at most one vertex, and a shared
	// vertex is a cut vertex.
	blocks := res.Blocks()
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			shared := blocks[i].VertexSet().Intersect(blocks[j].VertexSet())
			assert.LessOrEqual(t, shared.Cardinality(), 1)
			for _, v := range shared.ToSlice() {
				cut, cerr := res.IsCutpoint(v)
				require.NoError(t, cerr)
				assert.True(t, cut, "shared vertex %s must be a cut vertex", v)
			}
		}
	}

	// Every edge lies in exactly one proper block: per-block edge
	// counts partition the edge set.
	total := 0
	for _, b := range blocks {
		total += b.Subgraph().EdgeCount()
	}
	assert.Equal(t, g.EdgeCount(), total)
}

func TestBlock_Subgraph(t *testing.T) {
	g := buildBarbell()
	res, err := blockcut.Build(g)
	require.NoError(t, err)

	blk, err := res.Block("A")
	require.NoError(t, err)
	require.NotNil(t, blk)
	assert.False(t, blk.IsCutpoint())

	view := blk.Subgraph()
	assert.Same(t, g, view.Base())
	assert.Equal(t, []string{"A", "B", "C"}, view.Vertices())
	assert.Equal(t, 3, view.EdgeCount())
	assert.False(t, view.HasVertex("D"))

}

func TestBlock_Subgraph_IsLazy(t *testing.T) {
	// Views read through to the base graph: edges added inside the
	// block after Build become visible without rebuilding.
	g := core.NewGraph(core.WithMultiEdges())
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("A", "C", 0)

	res, err := blockcut.Build(g)
	require.NoError(t, err)

	blk, err := res.Block("A")
	require.NoError(t, err)
	view := blk.Subgraph()

	before := view.EdgeCount()
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, before+1, view.EdgeCount())
}

func TestBlockCutTree_UnknownVertex(t *testing.T) {
	res, err := blockcut.Build(buildTriangle())
	require.NoError(t, err)

	_, err = res.IsCutpoint("Z")
	assert.ErrorIs(t, err, blockcut.ErrVertexNotFound)
	_, err = res.Block("Z")
	assert.ErrorIs(t, err, blockcut.ErrVertexNotFound)
	_, err = res.BlocksOf("Z")
	assert.ErrorIs(t, err, blockcut.ErrVertexNotFound)
	_, err = res.Node("nope")
	assert.ErrorIs(t, err, blockcut.ErrVertexNotFound)
}

func TestBlockCutTree_DFSTree(t *testing.T) {
	res, err := blockcut.Build(buildPath3(), blockcut.WithStartVertex("1"))
	require.NoError(t, err)

	dt := res.DFSTree()
	assert.True(t, dt.Directed())
	assert.Equal(t, "1", res.Start())
	assert.Equal(t, 3, dt.VertexCount())
	assert.Equal(t, 2, dt.EdgeCount())
	assert.True(t, dt.HasEdge("1", "2"))
	assert.True(t, dt.HasEdge("2", "3"))
}
