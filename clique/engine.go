// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Backtracking search over (R, P, X).
// Contract:
//   - R is reported iff P and X are both empty on entry.
//   - The deadline is checked on entry to every recursive call; once it
//     fails, ErrTimedOut unwinds the whole search.
//   - After branching on v: P ← P \ {v}, X ← X ∪ {v}.
//   - An empty graph yields no cliques (the empty set is never reported).

package clique

import "github.com/bits-and-blooms/bitset"

// engine carries the state shared by every level of one search.
type engine struct {
	ix         *index
	rule       branchRule
	guard      *deadline
	out        *collector
	r          []uint
	expansions uint64
}

func newEngine(ix *index, s Strategy, guard *deadline) *engine {
	return &engine{
		ix:    ix,
		rule:  ruleFor(s),
		guard: guard,
		out:   newCollector(ix),
		r:     make([]uint, 0, ix.size()),
	}
}

// run enumerates every maximal clique with the given strategy.
func (e *engine) run(s Strategy) error {
	if e.ix.size() == 0 {
		return nil
	}
	if s == StrategyDegeneracy {
		return e.runOrdered()
	}

	return e.expand(e.ix.universe(), e.ix.empty())
}

// runOrdered is the outermost level of the degeneracy strategy: each vertex v
// in degeneracy order is searched with P = later neighbours, X = earlier ones.
func (e *engine) runOrdered() error {
	order, _ := degeneracyOrder(e.ix)
	later := e.ix.universe()
	earlier := e.ix.empty()
	for _, v := range order {
		later.Clear(v)
		e.r = append(e.r[:0], v)
		if err := e.expand(e.ix.restrict(later, v), e.ix.restrict(earlier, v)); err != nil {
			return err
		}
		earlier.Set(v)
	}
	e.r = e.r[:0]

	return nil
}

// expand is one level of the recursion. p and x are owned by this call.
func (e *engine) expand(p, x *bitset.BitSet) error {
	e.expansions++
	if !e.guard.remaining() {
		return ErrTimedOut
	}
	if p.None() {
		if x.None() {
			e.out.add(e.r)
		}
		return nil
	}

	branch := e.rule(e.ix, p, x)
	for v, ok := branch.NextSet(0); ok; v, ok = branch.NextSet(v + 1) {
		e.r = append(e.r, v)
		err := e.expand(e.ix.restrict(p, v), e.ix.restrict(x, v))
		e.r = e.r[:len(e.r)-1]
		if err != nil {
			return err
		}
		p.Clear(v)
		x.Set(v)
	}

	return nil
}
