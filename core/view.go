// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.
//   - A vertex set S is a clique iff InducedSubgraph(g, S) has |S|(|S|-1)/2 edges
//     in a simple undirected graph.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the vertex IDs in keep:
// the result contains only those vertices and every edge whose endpoints are
// both kept. Edge IDs and flags are preserved; unknown IDs in keep are ignored.
//
// Complexity: O(V + E). Concurrency: read locks only on the source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.options()...)
	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = struct{}{}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	// Carry the counter so future AddEdge calls on the view never reuse an ID.
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		ensureAdjacency(out, e.From, e.To)
		out.adjacencyList[e.From][e.To][eid] = struct{}{}
		if !out.directed && e.From != e.To {
			ensureAdjacency(out, e.To, e.From)
			out.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
	}

	return out
}
