// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

// centerVertexID is the fixed hub ID used by Star and Wheel.
const centerVertexID = "Center"

// addVertices inserts ids in order, wrapping failures with the method tag.
func addVertices(g *core.Graph, method string, ids ...string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// indexIDs returns cfg.idFn(from), ..., cfg.idFn(from+n-1).
func indexIDs(cfg builderConfig, from, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(from + i)
	}

	return ids
}

// link adds u-v with weight 0. On a directed graph the reverse arc is added
// too, so every constructor yields symmetric adjacency in both modes.
func link(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v, 0); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u, 0); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, v, u, err)
		}
	}

	return nil
}
