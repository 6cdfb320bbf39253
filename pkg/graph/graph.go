package graph

import "slices"

// Graph is an adjacency structure over comparable node keys T with
// simple-path enumeration. Directedness is fixed at construction and
// controls whether edge insertion is symmetric.
//
// The zero value is not usable - use [New] or [NewDirected].
// Graph is not safe for concurrent use without external synchronization.
type Graph[T comparable] struct {
	directed  bool
	adjacency map[T]Set[T]
}

// New creates an empty undirected graph. Every inserted edge (x, y) is
// recorded in both directions.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{adjacency: make(map[T]Set[T])}
}

// NewDirected creates an empty directed graph. An inserted edge (x, y) is
// recorded as x→y only.
func NewDirected[T comparable]() *Graph[T] {
	return &Graph[T]{directed: true, adjacency: make(map[T]Set[T])}
}

// IsDirected reports whether the graph was created with NewDirected.
func (g *Graph[T]) IsDirected() bool { return g.directed }

// AddEdge records the edge x→y, creating x's adjacency entry if absent.
// For an undirected graph the reverse edge y→x is recorded as well.
//
// Neither node needs to pre-exist, repeated insertion of the same edge is
// idempotent, and self-loops (x == y) are legal. AddEdge never removes
// existing entries and cannot fail.
func (g *Graph[T]) AddEdge(x, y T) {
	g.link(x, y)
	if !g.directed {
		g.link(y, x)
	}
}

func (g *Graph[T]) link(from, to T) {
	s, ok := g.adjacency[from]
	if !ok {
		s = make(Set[T])
		g.adjacency[from] = s
	}
	s.Add(to)
}

// HasNode reports whether id has an adjacency entry, i.e. at least one
// outgoing edge. In a directed graph a node that only ever appears as an
// edge target has no entry and HasNode returns false for it.
func (g *Graph[T]) HasNode(id T) bool {
	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether the edge x→y has been recorded.
func (g *Graph[T]) HasEdge(x, y T) bool {
	return g.adjacency[x].Has(y)
}

// Neighbors returns a copy of x's neighbor set in unspecified order.
// Returns an empty slice if x has no adjacency entry.
func (g *Graph[T]) Neighbors(x T) []T {
	return g.adjacency[x].Values()
}

// Nodes returns every key with an adjacency entry in unspecified order.
func (g *Graph[T]) Nodes() []T {
	nodes := make([]T, 0, len(g.adjacency))
	for id := range g.adjacency {
		nodes = append(nodes, id)
	}
	return nodes
}

// NodeCount returns the number of keys with an adjacency entry.
func (g *Graph[T]) NodeCount() int { return len(g.adjacency) }

// FindAllPaths returns every simple path from start to end, each as the
// ordered sequence of node keys visited, endpoints included.
//
// If start == end the result is exactly one single-node path, for any
// graph. If end is unreachable, or start has no adjacency entry and
// differs from end, the result is empty. The order of the returned paths
// is unspecified (it follows neighbor-set iteration order).
//
// Dense cyclic graphs can hold exponentially many simple paths; the walk
// always terminates because the visited set caps any path at the number
// of distinct nodes, but there is no other limit - use
// [Graph.FindPathsWithMaxSteps] to bound the search.
func (g *Graph[T]) FindAllPaths(start, end T) [][]T {
	return g.findPaths(start, end, unbounded)
}

// FindPathsWithMaxSteps returns the simple paths from start to end whose
// node count does not exceed maxSteps. The limit counts nodes, not edges:
// a path of k nodes has k-1 edges.
//
// The end-equality check runs before the length guard, so a path that
// lands on end with exactly maxSteps nodes is still returned - and
// FindPathsWithMaxSteps(s, s, 0) yields the single-node path even though
// the start alone already exceeds the limit. A negative maxSteps means
// no limit. All other semantics match [Graph.FindAllPaths].
func (g *Graph[T]) FindPathsWithMaxSteps(start, end T, maxSteps int) [][]T {
	return g.findPaths(start, end, maxSteps)
}

// unbounded disables the length guard in findPaths.
const unbounded = -1

// findPaths is the shared backtracking walk behind both query variants.
// The visited set and path accumulator are mutated in place: each
// neighbor is marked and appended before the recursive call and restored
// immediately after, so sibling branches always observe identical state.
func (g *Graph[T]) findPaths(start, end T, maxSteps int) [][]T {
	var paths [][]T
	visited := make(Set[T])
	path := make([]T, 0, 8)

	path = append(path, start)
	visited.Add(start)

	var walk func(current T)
	walk = func(current T) {
		if current == end {
			paths = append(paths, slices.Clone(path))
			return
		}
		if maxSteps >= 0 && len(path) >= maxSteps {
			return
		}
		for neighbor := range g.adjacency[current] {
			if visited.Has(neighbor) {
				continue
			}
			visited.Add(neighbor)
			path = append(path, neighbor)
			walk(neighbor)
			path = path[:len(path)-1]
			visited.Remove(neighbor)
		}
	}
	walk(start)

	return paths
}
