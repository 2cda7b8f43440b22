// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID sequence.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all edges leaving id: every incident edge in an
// undirected graph, outgoing edges in a directed one. A self-loop appears once.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d), d = number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators, so the vertex cannot vanish between
	// validation and the adjacency snapshot.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	for _, bucket := range g.adjacencyList[id] {
		for eid = range bucket {
			if e := g.edges[eid]; e != nil {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, sorted ascending.
// A vertex with a self-loop lists itself. Parallel edges collapse to one entry.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(k log k), k = number of distinct neighbours.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	toMap := g.adjacencyList[id]
	ids := make([]string, 0, len(toMap))
	for to, bucket := range toMap {
		if len(bucket) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency guarantees that adjacencyList[from][to] is initialized.
// Must be called under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e.ID from from→to and, for undirected non-loop
// edges, from the mirrored to→from bucket. Empty buckets are pruned.
// Must be called under the muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	unlink(g, e.From, e.To, e.ID)
	if !g.directed && e.From != e.To {
		unlink(g, e.To, e.From, e.ID)
	}
}

func unlink(g *Graph, from, to, eid string) {
	bucket := g.adjacencyList[from][to]
	if bucket == nil {
		return
	}
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacencyList[from], to)
	}
}
