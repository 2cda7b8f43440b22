// SPDX-License-Identifier: MIT
//
// File: sets.go
// Role: Candidate-set algebra over dense vertex indices.
// Determinism:
//   - Vertices are indexed in Graph.Vertices() order; every set iterates
//     ascending by index, so the search order is fixed for a given graph.
// Complexity:
//   - restrict/difference/union: O(n/64) words.

package clique

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// index maps vertex IDs to dense positions and stores one adjacency row per vertex.
type index struct {
	ids  []string
	pos  map[string]uint
	nbrs []*bitset.BitSet
}

// buildIndex snapshots g into bitset adjacency rows.
func buildIndex(g Graph) (*index, error) {
	ids := g.Vertices()
	n := uint(len(ids))
	ix := &index{
		ids:  ids,
		pos:  make(map[string]uint, len(ids)),
		nbrs: make([]*bitset.BitSet, len(ids)),
	}
	for i, id := range ids {
		if _, dup := ix.pos[id]; dup {
			return nil, fmt.Errorf("clique: vertex %q listed twice: %w", id, ErrInvalidGraph)
		}
		ix.pos[id] = uint(i)
	}

	for i, id := range ids {
		row := bitset.New(n)
		nb, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("clique: neighbours of %q: %v: %w", id, err, ErrInvalidGraph)
		}
		for _, w := range nb {
			j, ok := ix.pos[w]
			if !ok {
				return nil, fmt.Errorf("clique: neighbour %q of %q is not a vertex: %w", w, id, ErrInvalidGraph)
			}
			row.Set(j)
		}
		ix.nbrs[i] = row
	}

	return ix, nil
}

// size returns the number of indexed vertices.
func (ix *index) size() uint { return uint(len(ix.ids)) }

// empty returns a set with room for every vertex and no members.
func (ix *index) empty() *bitset.BitSet { return bitset.New(ix.size()) }

// universe returns the set of all vertices.
func (ix *index) universe() *bitset.BitSet {
	return ix.empty().Complement()
}

// restrict returns s ∩ N(v) as a new set.
func (ix *index) restrict(s *bitset.BitSet, v uint) *bitset.BitSet {
	return s.Intersection(ix.nbrs[v])
}

// degreeIn returns |s ∩ N(v)|.
func (ix *index) degreeIn(s *bitset.BitSet, v uint) uint {
	return s.IntersectionCardinality(ix.nbrs[v])
}

// difference returns a \ b as a new set.
func difference(a, b *bitset.BitSet) *bitset.BitSet { return a.Difference(b) }

// union returns a ∪ b as a new set.
func union(a, b *bitset.BitSet) *bitset.BitSet { return a.Union(b) }

// members lists the indices in s in ascending order.
func members(s *bitset.BitSet) []uint {
	out := make([]uint, 0, s.Count())
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		out = append(out, i)
	}

	return out
}
