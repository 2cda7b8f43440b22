// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Z"))
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B")
	mustEdge(t, g, "B", "C")
	mustEdge(t, g, "A", "C")

	require.NoError(t, g.RemoveVertex("B"))
	require.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)

	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "B"))
	nb, err := g.NeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nb)
}

func TestAddEdge_ModePolicies(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("A", "B", 5)
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("", "B", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	mustEdge(t, g, "A", "B")
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected mirror counts as the same pair")

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.False(t, g.HasEdge("", "A"))
}

func TestAddEdge_MultiAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops(), core.WithWeighted())
	mustEdge(t, g, "A", "B")
	_, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	st := g.Stats()
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, 1, st.LoopCount)
	assert.Equal(t, 1, st.ParallelEdgeCount)
	assert.True(t, st.AllowsMulti)
	assert.True(t, st.AllowsLoops)
	assert.True(t, st.Weighted)

	nb, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, nb, "parallel edges collapse, loop lists itself")

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, d, "two parallel edges plus a loop counted twice")
}

func TestDirectedGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	mustEdge(t, g, "A", "B")

	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	nb, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Empty(t, nb)

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestEdges_CreationOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		mustEdge(t, g, "hub", string(rune('a'+i)))
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e12", edges[11].ID)

	e, err := g.GetEdge("e10")
	require.NoError(t, err)
	assert.Equal(t, "j", e.To)
	_, err = g.GetEdge("e99")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid := mustEdge(t, g, "A", "B")

	require.NoError(t, g.RemoveEdge(eid))
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 2, g.VertexCount(), "vertices survive edge removal")
}

func TestNeighbors(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "C")
	mustEdge(t, g, "A", "B")

	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)

	_, err = g.NeighborIDs("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestCloneAndClear(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	mustEdge(t, g, "A", "B")
	mustEdge(t, g, "B", "B")

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, 2, c.EdgeCount())
	assert.True(t, c.Looped())

	// Edge IDs on the clone keep counting from the source.
	eid := mustEdge(t, c, "A", "C")
	assert.Equal(t, "e3", eid)
	assert.False(t, g.HasVertex("C"))

	empty := g.CloneEmpty()
	assert.Equal(t, 2, empty.VertexCount())
	assert.Zero(t, empty.EdgeCount())

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, "e1", mustEdge(t, g, "X", "Y"))
}

func TestIsNil(t *testing.T) {
	var g *core.Graph
	assert.True(t, g.IsNil())
	assert.False(t, core.NewGraph().IsNil())
}

func mustEdge(t *testing.T, g *core.Graph, u, v string) string {
	t.Helper()
	eid, err := g.AddEdge(u, v, 0)
	require.NoError(t, err)

	return eid
}
