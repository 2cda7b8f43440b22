// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for construction flags, Stats snapshot, nil probing.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph, but reads still go through muVert
//     so the race detector sees a consistent happens-before edge.

package core

// IsNil reports whether the receiver is a nil *Graph. It lets consumers that
// hold the graph behind an interface detect a typed nil without reflection.
func (g *Graph) IsNil() bool { return g == nil }

// Directed reports whether edges are stored one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) returns ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// If false, a second AddEdge(from,to,...) returns ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes,
// including how many self-loops and parallel edges the graph currently holds.
//
// Implementation:
//   - Stage 1: Under muVert, snapshot flags and the vertex count.
//   - Stage 2: Under muEdgeAdj, snapshot the edge count and scan adjacency buckets.
//
// The two phases never hold both locks at once. Under concurrent mutation the
// snapshot is consistent per phase, not across phases.
//
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	// Each bucket holds the edges of one ordered endpoint pair. Undirected
	// non-loop edges sit in two mirrored buckets, so count only from<to there.
	var (
		from, to string
		toMap    map[string]map[string]struct{}
		bucket   map[string]struct{}
	)
	for from, toMap = range g.adjacencyList {
		for to, bucket = range toMap {
			if len(bucket) < 2 {
				continue
			}
			if !g.directed && from > to {
				continue
			}
			stats.ParallelEdgeCount += len(bucket) - 1
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
