// SPDX-License-Identifier: MIT

package clique

// IsClique reports whether every pair of distinct members of c is adjacent in g.
// Repeated members make c invalid. The empty set and singletons are cliques.
func IsClique(g Graph, c Clique) bool {
	seen := make(map[string]struct{}, len(c))
	for i, u := range c {
		if _, dup := seen[u]; dup {
			return false
		}
		seen[u] = struct{}{}
		for _, v := range c[i+1:] {
			if u != v && !g.HasEdge(u, v) {
				return false
			}
		}
	}

	return true
}

// IsMaximal reports whether c is a clique of g that no other vertex of g
// can extend. The empty set is maximal only in a graph without vertices.
func IsMaximal(g Graph, c Clique) bool {
	if !IsClique(g, c) {
		return false
	}
	if len(c) == 0 {
		return len(g.Vertices()) == 0
	}

	// Any extension must be a neighbour of c[0].
	nb, err := g.NeighborIDs(c[0])
	if err != nil {
		return false
	}
	in := make(map[string]struct{}, len(c))
	for _, v := range c {
		in[v] = struct{}{}
	}
	for _, w := range nb {
		if _, ok := in[w]; ok {
			continue
		}
		extends := true
		for _, v := range c {
			if !g.HasEdge(w, v) {
				extends = false
				break
			}
		}
		if extends {
			return false
		}
	}

	return true
}
