// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Structural checks run once by NewFinder and Degeneracy.
// Contract:
//   - Rejects directed graphs, self-loops, duplicate neighbour entries,
//     parallel edges (when EdgeCount is exposed) and adjacency that
//     disagrees between NeighborIDs and HasEdge.
//   - All rejections wrap ErrInvalidGraph.

package clique

import "fmt"

type nilChecker interface{ IsNil() bool }

type directedness interface{ Directed() bool }

type edgeCounter interface{ EdgeCount() int }

// isNilGraph reports whether g is nil, including a typed-nil pointer that
// exposes IsNil.
func isNilGraph(g Graph) bool {
	if g == nil {
		return true
	}
	if nc, ok := g.(nilChecker); ok {
		return nc.IsNil()
	}

	return false
}

// validateSimple verifies that g is an undirected simple graph.
func validateSimple(g Graph) error {
	if d, ok := g.(directedness); ok && d.Directed() {
		return fmt.Errorf("clique: directed graph: %w", ErrInvalidGraph)
	}

	vs := g.Vertices()
	known := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		if _, dup := known[v]; dup {
			return fmt.Errorf("clique: vertex %q listed twice: %w", v, ErrInvalidGraph)
		}
		known[v] = struct{}{}
	}

	endpoints := 0
	for _, v := range vs {
		nb, err := g.NeighborIDs(v)
		if err != nil {
			return fmt.Errorf("clique: neighbours of %q: %v: %w", v, err, ErrInvalidGraph)
		}
		seen := make(map[string]struct{}, len(nb))
		for _, w := range nb {
			if w == v {
				return fmt.Errorf("clique: self-loop on %q: %w", v, ErrInvalidGraph)
			}
			if _, ok := known[w]; !ok {
				return fmt.Errorf("clique: neighbour %q of %q is not a vertex: %w", w, v, ErrInvalidGraph)
			}
			if _, dup := seen[w]; dup {
				return fmt.Errorf("clique: %q listed twice as neighbour of %q: %w", w, v, ErrInvalidGraph)
			}
			seen[w] = struct{}{}
			if !g.HasEdge(v, w) || !g.HasEdge(w, v) {
				return fmt.Errorf("clique: asymmetric adjacency %q-%q: %w", v, w, ErrInvalidGraph)
			}
		}
		endpoints += len(nb)
	}

	if ec, ok := g.(edgeCounter); ok && 2*ec.EdgeCount() != endpoints {
		return fmt.Errorf("clique: %d edges over %d adjacent pairs, parallel edges present: %w",
			ec.EdgeCount(), endpoints/2, ErrInvalidGraph)
	}

	return nil
}
