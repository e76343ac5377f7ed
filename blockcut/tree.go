package blockcut

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ostralek/bcgraph/core"
)

// Block is one node of the BC-tree: either a proper biconnected
// component of the source graph, or the singleton block of a cut
// vertex. Blocks are immutable once Build returns; the pointer itself
// is the tree handle, so two blocks are the same node iff the pointers
// are equal.
type Block struct {
	id       string
	vertices []string           // sorted lex asc
	set      mapset.Set[string] // same membership as vertices
	cut      bool               // singleton node of a cut vertex
	source   *core.Graph
}

// ID returns the block's handle in Tree(): "B1", "B2", ... for proper
// blocks and "C1", "C2", ... for cut vertex singletons.
func (b *Block) ID() string { return b.id }

// Vertices returns the block's vertex IDs, sorted lexicographically.
// The slice is a fresh copy and safe to retain.
func (b *Block) Vertices() []string {
	out := make([]string, len(b.vertices))
	copy(out, b.vertices)

	return out
}

// Contains reports whether v belongs to the block.
func (b *Block) Contains(v string) bool { return b.set.Contains(v) }

// VertexSet returns a clone of the block's vertex set, safe to mutate.
func (b *Block) VertexSet() mapset.Set[string] { return b.set.Clone() }

// IsCutpoint reports whether this node is the singleton block of a cut
// vertex rather than a proper biconnected component.
func (b *Block) IsCutpoint() bool { return b.cut }

// Subgraph returns a lazy read-only view of the source graph restricted
// to the block's vertices. No edges or vertices are copied; the view
// reads through to the source graph on every call.
func (b *Block) Subgraph() *core.MaskView {
	return core.NewMaskView(b.source, b.Contains, nil)
}

// BlockCutTree is the immutable result of Build: the cut vertices, the
// blocks, and the bipartite tree connecting them. All accessors are
// safe for concurrent use.
type BlockCutTree struct {
	source  *core.Graph
	tree    *core.Graph // undirected; vertex IDs are block handles
	dfsTree *core.Graph // directed; rooted at start
	start   string

	cutpoints mapset.Set[string]
	blocks    []*Block            // proper blocks, in closing order
	nodes     map[string]*Block   // handle -> node (blocks + singletons)
	canonical map[string]*Block   // vertex -> canonical block
	blocksOf  map[string][]*Block // vertex -> proper blocks containing it
}

// Start returns the DFS root vertex the decomposition was built from.
func (t *BlockCutTree) Start() string { return t.start }

// Cutpoints returns the cut vertices of the traversed component, sorted
// lexicographically. The slice is a fresh copy.
func (t *BlockCutTree) Cutpoints() []string {
	out := t.cutpoints.ToSlice()
	sort.Strings(out)

	return out
}

// CutpointSet returns a clone of the cut vertex set, safe to mutate.
func (t *BlockCutTree) CutpointSet() mapset.Set[string] {
	return t.cutpoints.Clone()
}

// IsCutpoint reports whether v is a cut vertex.
// Returns ErrVertexNotFound if v is not a vertex of the source graph.
func (t *BlockCutTree) IsCutpoint(v string) (bool, error) {
	if !t.source.HasVertex(v) {
		return false, ErrVertexNotFound
	}

	return t.cutpoints.Contains(v), nil
}

// Block returns the canonical block of v: for a cut vertex its
// singleton block, for any other vertex the unique proper block
// containing it. Returns ErrVertexNotFound if v is not a vertex of the
// source graph. A known vertex with no block (edgeless, or outside the
// traversed component of a disconnected graph) yields (nil, nil).
func (t *BlockCutTree) Block(v string) (*Block, error) {
	if !t.source.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	return t.canonical[v], nil
}

// BlocksOf returns every proper block containing v: exactly one for an
// ordinary vertex, two or more for a cut vertex, none for an edgeless
// or unreached vertex. Returns ErrVertexNotFound if v is not a vertex
// of the source graph. The slice is a fresh copy.
func (t *BlockCutTree) BlocksOf(v string) ([]*Block, error) {
	if !t.source.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	bs := t.blocksOf[v]
	out := make([]*Block, len(bs))
	copy(out, bs)

	return out, nil
}

// Tree returns the block-cutpoint graph itself: an undirected tree
// whose vertex IDs are block handles (resolve them with Node) and whose
// edges join each cut vertex singleton to every proper block containing
// that cut vertex. Treat the returned graph as read-only.
func (t *BlockCutTree) Tree() *core.Graph { return t.tree }

// Node resolves a Tree() vertex ID back to its Block.
// Returns ErrVertexNotFound for an unknown handle.
func (t *BlockCutTree) Node(handle string) (*Block, error) {
	b, ok := t.nodes[handle]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return b, nil
}

// Blocks returns the proper biconnected components, in the order the
// traversal closed them. The slice is a fresh copy.
func (t *BlockCutTree) Blocks() []*Block {
	out := make([]*Block, len(t.blocks))
	copy(out, t.blocks)

	return out
}

// Nodes returns every node of the tree (proper blocks and cut vertex
// singletons), sorted by handle. The slice is a fresh copy.
func (t *BlockCutTree) Nodes() []*Block {
	out := make([]*Block, 0, len(t.nodes))
	for _, b := range t.nodes {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// DFSTree returns the directed rooted tree recorded during traversal;
// each edge points from a vertex to one of its DFS children. Treat the
// returned graph as read-only.
func (t *BlockCutTree) DFSTree() *core.Graph { return t.dfsTree }
