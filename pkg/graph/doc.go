// Package graph provides a generic adjacency structure over comparable
// node keys with simple-path enumeration.
//
// # Overview
//
// A [Graph] stores directed or undirected edges between caller-supplied
// keys of any comparable type and answers one question: which simple
// paths (no repeated node) connect two keys. Two query variants exist,
// one unbounded and one capped at a maximum path length expressed as a
// node count.
//
// # Basic Usage
//
// Create a graph with [New] (undirected) or [NewDirected], add edges with
// [Graph.AddEdge], and query with [Graph.FindAllPaths] or
// [Graph.FindPathsWithMaxSteps]:
//
//	g := graph.New[int]()
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 3)
//	paths := g.FindAllPaths(1, 3) // [[1 2 3]]
//
// Nodes come into existence through edge insertion; there is no separate
// node-insertion operation. In a directed graph only the source side of
// an edge gains an adjacency entry, so a pure sink is never enumerated by
// [Graph.Nodes].
//
// # Ordering
//
// Neighbor sets are hash sets, so the order in which paths are returned
// is unspecified and can differ between runs. Callers needing stable
// output must sort the result themselves. The nodes *within* a path are
// always in visit order, start to end.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must
// synchronize access if multiple goroutines read or modify the same
// graph. Queries on a graph that is no longer being mutated can safely
// run in parallel across goroutines.
package graph
