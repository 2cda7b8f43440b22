// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID so edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import "sync/atomic"

// options rebuilds the GraphOption list that reproduces g's flags.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

// CloneEmpty returns a new Graph with identical flags and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: flags, vertices, edges and adjacency.
// Edge IDs are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
	}
	for from, toMap := range g.adjacencyList {
		for to, bucket := range toMap {
			ensureAdjacency(clone, from, to)
			for eid := range bucket {
				clone.adjacencyList[from][to][eid] = struct{}{}
			}
		}
	}

	return clone
}

// Clear removes all vertices and edges and resets the edge ID counter.
// Flags are preserved.
// Complexity: O(1) (maps are reallocated).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]struct{})
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
