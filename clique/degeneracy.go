// SPDX-License-Identifier: MIT
//
// File: degeneracy.go
// Role: Degeneracy ordering (Matula–Beck min-degree peeling).
// Contract:
//   - order lists every vertex exactly once; each vertex has at most k
//     neighbours later in the order, where k is the graph's degeneracy.
//   - Ties on the current degree are broken by the lowest vertex index.
// Complexity:
//   - O((V + E) log V) with a binary heap and lazy deletion.

package clique

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// peelItem is one heap entry: vertex v with its degree at push time.
type peelItem struct {
	deg int
	v   uint
}

func peelLess(a, b interface{}) int {
	x, y := a.(peelItem), b.(peelItem)
	switch {
	case x.deg != y.deg:
		return utils.IntComparator(x.deg, y.deg)
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	default:
		return 0
	}
}

// degeneracyOrder repeatedly removes a vertex of minimum remaining degree.
// Stale heap entries (degree changed since the push) are skipped on pop.
func degeneracyOrder(ix *index) (order []uint, k int) {
	n := ix.size()
	deg := make([]int, n)
	removed := make([]bool, n)
	heap := binaryheap.NewWith(peelLess)
	for v := uint(0); v < n; v++ {
		deg[v] = int(ix.nbrs[v].Count())
		heap.Push(peelItem{deg: deg[v], v: v})
	}

	order = make([]uint, 0, n)
	for uint(len(order)) < n {
		top, ok := heap.Pop()
		if !ok {
			break
		}
		it := top.(peelItem)
		if removed[it.v] || it.deg != deg[it.v] {
			continue
		}
		removed[it.v] = true
		order = append(order, it.v)
		if it.deg > k {
			k = it.deg
		}
		row := ix.nbrs[it.v]
		for w, more := row.NextSet(0); more; w, more = row.NextSet(w + 1) {
			if removed[w] {
				continue
			}
			deg[w]--
			heap.Push(peelItem{deg: deg[w], v: w})
		}
	}

	return order, k
}

// Degeneracy returns a degeneracy ordering of g and its degeneracy k:
// every vertex has at most k neighbours appearing after it in order.
// The graph must satisfy the same requirements as NewFinder.
func Degeneracy(g Graph) ([]string, int, error) {
	if isNilGraph(g) {
		return nil, 0, ErrNilGraph
	}
	if err := validateSimple(g); err != nil {
		return nil, 0, err
	}
	ix, err := buildIndex(g)
	if err != nil {
		return nil, 0, err
	}

	order, k := degeneracyOrder(ix)
	ids := make([]string, len(order))
	for i, v := range order {
		ids[i] = ix.ids[v]
	}

	return ids, k, nil
}
