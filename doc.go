// Package bcgraph is an in-memory toolkit for biconnectivity analysis of
// undirected graphs: cut vertices (articulation points), biconnected
// components (blocks), and the derived block-cutpoint tree.
//
// 🚀 What is bcgraph?
//
//	A thread-safe, pure-Go library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Non-mutating views: UnweightedView, InducedSubgraph, lazy MaskView
//		• Traversal: BFS with hooks, depth limits and neighbor filtering
//		• Biconnectivity: cutpoint detection, block extraction, BC-tree assembly
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     - fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/      - breadth-first search (unweighted distances, parents, visit order)
//	blockcut/ - the block-cutpoint tree builder
//
// Quick ASCII example: two triangles sharing the vertex C:
//
//	A───B   D───E
//	 \ /     \ /
//	  C───────C      (the same C)
//
//	g := core.NewGraph()
//	for _, e := range [][2]string{{"A","B"},{"B","C"},{"C","A"},{"C","D"},{"D","E"},{"E","C"}} {
//	    g.AddEdge(e[0], e[1], 0)
//	}
//	t, _ := blockcut.Build(g)
//	t.Cutpoints()   // [C]
//	len(t.Blocks()) // 2: {A,B,C} and {C,D,E}
//
// All write operations on core.Graph are guarded by R/W locks; result objects
// produced by the algorithm packages are immutable after construction and
// safe for concurrent readers.
//
//	go get github.com/ostralek/bcgraph
package bcgraph
