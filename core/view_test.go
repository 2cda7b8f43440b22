// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/core"
)

func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B")
	mustEdge(t, g, "B", "C")
	mustEdge(t, g, "A", "C")
	mustEdge(t, g, "C", "D")

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "C": true, "Q": true})

	assert.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	assert.Equal(t, 3, sub.EdgeCount(), "a triangle: |S|(|S|-1)/2 edges")
	assert.False(t, sub.HasVertex("D"))
	assert.Equal(t, 4, g.EdgeCount(), "source untouched")

	// New edges on the view never collide with source IDs.
	eid := mustEdge(t, sub, "A", "Z")
	assert.Equal(t, "e5", eid)
}

func TestInducedSubgraph_KeepsFlags(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	mustEdge(t, g, "A", "B")
	mustEdge(t, g, "B", "A")

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true})
	require.True(t, sub.Directed())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge("B", "A"))
}
