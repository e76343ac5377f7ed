// Package blockcut implements the block-cutpoint decomposition of an
// undirected core.Graph via a single depth-first search.
//
// The traversal assigns 1-based discovery numbers and propagates low
// values from child to parent as frames unwind. Tree edges and back
// edges are pushed on an explicit edge stack; whenever a child's low
// value reaches the discovery number of its parent, the edges
// accumulated since that child was entered form one biconnected
// component and are popped off as a block. The DFS root is special: it
// is a cut vertex iff it has more than one child in the DFS tree,
// which is decided after the traversal.
//
// The DFS itself runs on an explicit frame stack rather than recursion,
// so arbitrarily deep or skewed graphs cannot exhaust the goroutine
// stack; each frame keeps its edge-iterator position and running low
// value and resumes where it left off.
package blockcut

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ostralek/bcgraph/bfs"
	"github.com/ostralek/bcgraph/core"
)

// stackEdge is a traversal edge tagged with its orientation: source is
// the vertex the DFS was at when the edge was pushed.
type stackEdge struct {
	source, target string
}

// frame is one suspended DFS position: the vertex, its tree parent, the
// incident edges with the resume index, and the running low value.
type frame struct {
	v, parent string
	edges     []*core.Edge
	idx       int
	low       int
}

// builder carries the traversal state for one Build call.
type builder struct {
	g      *core.Graph
	order  map[string]int // 1-based discovery numbers; 0 = unvisited
	count  int
	stack  []stackEdge
	frames []frame
	t      *BlockCutTree
}

// Build computes the block-cutpoint tree of g.
//
// The graph must be undirected; directed default direction or any
// per-edge directed override is rejected with ErrDirectedGraph. By
// default the traversal is rooted at the lexicographically smallest
// vertex ID and covers only that vertex's connected component; pass
// WithConnectivityCheck to reject disconnected input instead.
//
// The returned BlockCutTree is immutable and safe for concurrent use.
func Build(g *core.Graph, opts ...Option) (*BlockCutTree, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirectedGraph
	}

	// 2. Apply options
	bopts := DefaultOptions()
	for _, fn := range opts {
		fn(&bopts)
	}

	// 3. Resolve the DFS root
	start := bopts.StartVertex
	if start == "" {
		start = g.Vertices()[0] // Vertices() is sorted lex asc
	} else if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Optional strict connectivity gate
	if bopts.CheckConnectivity {
		reach, err := bfs.BFS(g, start)
		if err != nil {
			return nil, fmt.Errorf("blockcut: connectivity check: %w", err)
		}
		if len(reach.Order) != g.VertexCount() {
			return nil, ErrDisconnected
		}
	}

	// 5. Initialize result and traversal state
	n := g.VertexCount()
	t := &BlockCutTree{
		source:    g,
		tree:      core.NewGraph(),
		dfsTree:   core.NewGraph(core.WithDirected(true)),
		start:     start,
		cutpoints: mapset.NewSet[string](),
		nodes:     make(map[string]*Block),
		canonical: make(map[string]*Block, n),
		blocksOf:  make(map[string][]*Block, n),
	}
	b := &builder{
		g:     g,
		order: make(map[string]int, n),
		t:     t,
	}

	// 6. Single DFS from the root
	if err := b.t.dfsTree.AddVertex(start); err != nil {
		return nil, fmt.Errorf("blockcut: dfs tree root: %w", err)
	}
	if err := b.traverse(start); err != nil {
		return nil, err
	}

	// 7. Root fixup: the root is a cut vertex iff it has >1 DFS children
	if _, rootChildren, _, err := t.dfsTree.Degree(start); err != nil {
		return nil, fmt.Errorf("blockcut: dfs tree degree: %w", err)
	} else if rootChildren > 1 {
		t.cutpoints.Add(start)
	}

	// 8. One singleton block per cut vertex, linked to its proper blocks
	if err := b.linkCutpoints(); err != nil {
		return nil, err
	}

	return t, nil
}

// enter assigns v its discovery number and suspends a fresh frame for
// it on the frame stack.
func (b *builder) enter(v, parent string) error {
	b.count++
	b.order[v] = b.count

	edges, err := b.g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("blockcut: neighbors of %q: %w", v, err)
	}
	b.frames = append(b.frames, frame{v: v, parent: parent, edges: edges, low: b.count})

	return nil
}

// traverse runs the depth-first search from start on an explicit frame
// stack. Descending suspends the current frame; when a frame is
// exhausted its low value folds into the parent, and the closure test
// fires exactly where the recursive formulation would run it.
func (b *builder) traverse(start string) error {
	if err := b.enter(start, ""); err != nil {
		return err
	}

	for len(b.frames) > 0 {
		// Note: f is invalidated by enter (frame append); every descent
		// re-fetches the top frame on the next iteration.
		f := &b.frames[len(b.frames)-1]

		if f.idx < len(f.edges) {
			e := f.edges[f.idx]
			f.idx++

			n := e.Opposite(f.v)
			if n == f.v {
				continue // self-loops never affect biconnectivity
			}

			if b.order[n] == 0 {
				// Tree edge: descend into n.
				if _, err := b.t.dfsTree.AddEdge(f.v, n, 0); err != nil {
					return fmt.Errorf("blockcut: dfs tree edge %q->%q: %w", f.v, n, err)
				}
				b.stack = append(b.stack, stackEdge{source: f.v, target: n})
				if err := b.enter(n, f.v); err != nil {
					return err
				}
				continue
			}

			// Back edge: strictly older target, and never the parent link
			// (this also skips parallel edges to the immediate parent).
			if b.order[n] < b.order[f.v] && n != f.parent {
				b.stack = append(b.stack, stackEdge{source: f.v, target: n})
				if b.order[n] < f.low {
					f.low = b.order[n]
				}
			}
			continue
		}

		// Frame exhausted: unwind to the parent frame.
		child, childLow := f.v, f.low
		b.frames = b.frames[:len(b.frames)-1]
		if len(b.frames) == 0 {
			break
		}
		p := &b.frames[len(b.frames)-1]

		if childLow < p.low {
			p.low = childLow
		}

		// No descendant of child escapes above p.v: the edges pushed
		// since child was entered close one biconnected component.
		if childLow >= b.order[p.v] {
			if p.v != b.t.start {
				b.t.cutpoints.Add(p.v)
			}
			if err := b.closeBlock(child); err != nil {
				return err
			}
		}
	}

	return nil
}

// closeBlock pops the biconnected component whose subtree root is the
// DFS child n: every stacked edge whose source was discovered at or
// after n, plus the boundary edge into n itself.
func (b *builder) closeBlock(n string) error {
	verts := mapset.NewSet[string]()

	e := b.pop()
	for len(b.stack) > 0 && b.order[e.source] >= b.order[n] {
		verts.Add(e.source)
		verts.Add(e.target)
		e = b.pop()
	}
	verts.Add(e.source)
	verts.Add(e.target)

	return b.newBlock(verts)
}

// pop removes and returns the top stacked edge.
func (b *builder) pop() stackEdge {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	return top
}

// newBlock registers a proper block over the given vertex set: assigns
// its handle, adds it as a tree node, and indexes every member vertex.
func (b *builder) newBlock(verts mapset.Set[string]) error {
	ids := verts.ToSlice()
	sort.Strings(ids)

	blk := &Block{
		id:       fmt.Sprintf("B%d", len(b.t.blocks)+1),
		vertices: ids,
		set:      verts,
		source:   b.g,
	}
	b.t.blocks = append(b.t.blocks, blk)
	b.t.nodes[blk.id] = blk
	if err := b.t.tree.AddVertex(blk.id); err != nil {
		return fmt.Errorf("blockcut: tree node %q: %w", blk.id, err)
	}

	for _, w := range ids {
		b.t.blocksOf[w] = append(b.t.blocksOf[w], blk)
		// Canonical assignment is first-wins; cut vertices are
		// repointed to their singleton in linkCutpoints.
		if _, seen := b.t.canonical[w]; !seen {
			b.t.canonical[w] = blk
		}
	}

	return nil
}

// linkCutpoints creates the singleton block of every cut vertex and
// joins it to each proper block containing that vertex, completing the
// bipartite tree. Handles are assigned in sorted cut vertex order so
// the result is stable for a fixed input.
func (b *builder) linkCutpoints() error {
	cuts := b.t.cutpoints.ToSlice()
	sort.Strings(cuts)

	for i, c := range cuts {
		blk := &Block{
			id:       fmt.Sprintf("C%d", i+1),
			vertices: []string{c},
			set:      mapset.NewSet(c),
			cut:      true,
			source:   b.g,
		}
		b.t.nodes[blk.id] = blk
		b.t.canonical[c] = blk
		if err := b.t.tree.AddVertex(blk.id); err != nil {
			return fmt.Errorf("blockcut: tree node %q: %w", blk.id, err)
		}

		for _, pb := range b.t.blocksOf[c] {
			if _, err := b.t.tree.AddEdge(blk.id, pb.id, 0); err != nil {
				return fmt.Errorf("blockcut: tree edge %q-%q: %w", blk.id, pb.id, err)
			}
		}
	}

	return nil
}
