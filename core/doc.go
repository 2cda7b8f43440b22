// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph that the clique
// package enumerates over.
//
// The Graph G = (V,E) is undirected and simple by default. Construction
// flags relax that for callers that need it (and let the clique package
// prove it rejects such graphs):
//
//   - WithDirected(true)  store edges one-way (from→to only)
//   - WithLoops()         permit self-loops (from == to)
//   - WithMultiEdges()    permit parallel edges between the same endpoints
//   - WithWeighted()      permit non-zero edge weights
//
// Storage is a nested map adjacencyList[from][to][edgeID] = struct{}{}, so
// HasEdge and AddEdge are O(1). Undirected edges are mirrored into
// adjacencyList[to][from]. Vertices are plain string IDs.
//
// Locking: muVert guards the vertex catalog, muEdgeAdj guards the edge
// catalog and adjacency. Methods that need both take them in the order
// muVert → muEdgeAdj.
//
// Determinism: Vertices(), Edges(), Neighbors() and NeighborIDs() return
// sorted results, so every algorithm built on top of them (clique search
// included) is reproducible for a fixed graph.
//
// Core methods:
//
//	AddVertex(id) error                          O(1)
//	HasVertex(id) bool                           O(1)
//	RemoveVertex(id) error                       O(E)
//	AddEdge(from, to, weight) (edgeID, error)    O(1)
//	RemoveEdge(edgeID) error                     O(1)+cleanup
//	HasEdge(from, to) bool                       O(1)
//	Neighbors(id) ([]*Edge, error)               O(d log d)
//	NeighborIDs(id) ([]string, error)            O(d log d)
//	Vertices() []string                          O(V log V)
//	Edges() []*Edge                              O(E log E)
//	Degree(id) (int, error)                      O(d)
//	Clone() / CloneEmpty() / Clear()
//	InducedSubgraph(g, keep) *Graph              O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       zero-length vertex ID
//	ErrVertexNotFound      missing vertex
//	ErrEdgeNotFound        missing edge
//	ErrBadWeight           non-zero weight on an unweighted graph
//	ErrLoopNotAllowed      self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed parallel edge when multi-edges are disabled
package core
