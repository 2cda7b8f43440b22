// SPDX-License-Identifier: MIT
//
// File: pivot.go
// Role: Branch-set selection for one search level.
// Contract:
//   - The returned set is always a subset of P and never aliases P.
//   - Pivot ties are broken by the lowest vertex index.

package clique

import "github.com/bits-and-blooms/bitset"

// branchRule returns the vertices of P the current level must branch on.
type branchRule func(ix *index, p, x *bitset.BitSet) *bitset.BitSet

// ruleFor maps a strategy to the branch rule used below the outermost level.
func ruleFor(s Strategy) branchRule {
	if s == StrategyPlain {
		return allCandidates
	}

	return tomitaBranch
}

// allCandidates branches on every vertex of P.
func allCandidates(_ *index, p, _ *bitset.BitSet) *bitset.BitSet {
	return p.Clone()
}

// tomitaBranch branches on P \ N(u) for the pivot u chosen by choosePivot.
func tomitaBranch(ix *index, p, x *bitset.BitSet) *bitset.BitSet {
	u, ok := choosePivot(ix, p, x)
	if !ok {
		return p.Clone()
	}

	return difference(p, ix.nbrs[u])
}

// choosePivot picks u ∈ P ∪ X maximising |P ∩ N(u)|.
// Returns false when P ∪ X is empty.
func choosePivot(ix *index, p, x *bitset.BitSet) (uint, bool) {
	var (
		best    uint
		bestDeg uint
		found   bool
	)
	cand := union(p, x)
	for u, ok := cand.NextSet(0); ok; u, ok = cand.NextSet(u + 1) {
		d := ix.degreeIn(p, u)
		if !found || d > bestDeg {
			best, bestDeg, found = u, d, true
		}
	}

	return best, found
}
