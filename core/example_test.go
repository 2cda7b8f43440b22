// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

func ExampleGraph_NeighborIDs() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)

	ids, _ := g.NeighborIDs("A")
	fmt.Println(ids)
	// Output: [B C]
}

func ExampleInducedSubgraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "C": true})
	fmt.Println(sub.VertexCount(), sub.EdgeCount())
	// Output: 3 3
}
