// SPDX-License-Identifier: MIT

package clique

import "slices"

// collector accumulates maximal cliques in discovery order and tracks the
// largest size seen so far.
type collector struct {
	ids     []string
	cliques []Clique
	maxSize int
}

func newCollector(ix *index) *collector {
	return &collector{ids: ix.ids}
}

// add records the clique formed by the vertex indices in r.
// r is copied; the caller keeps ownership of its stack.
func (c *collector) add(r []uint) {
	cl := make(Clique, len(r))
	for i, v := range r {
		cl[i] = c.ids[v]
	}
	slices.Sort(cl)

	c.cliques = append(c.cliques, cl)
	if len(cl) > c.maxSize {
		c.maxSize = len(cl)
	}
}
