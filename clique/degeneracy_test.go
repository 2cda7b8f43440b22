// SPDX-License-Identifier: MIT

package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
)

func TestDegeneracy_KnownValues(t *testing.T) {
	cases := []struct {
		name  string
		graph *core.Graph
		want  int
	}{
		{"empty", core.NewGraph(), 0},
		{"isolated", graphOf(t, "a", "b"), 0},
		{"path", build(t, nil, builder.Path(6)), 1},
		{"star", build(t, nil, builder.Star(7)), 1},
		{"cycle", build(t, nil, builder.Cycle(6)), 2},
		{"grid", build(t, nil, builder.Grid(3, 3)), 2},
		{"wheel", build(t, nil, builder.Wheel(8)), 3},
		{"K5", build(t, nil, builder.Complete(5)), 4},
		{"2-regular", build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(12, 2)), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, k, err := clique.Degeneracy(tc.graph)
			require.NoError(t, err)
			assert.Equal(t, tc.want, k)
			assert.ElementsMatch(t, tc.graph.Vertices(), order)

			// Each vertex has at most k neighbours later in the order.
			pos := map[string]int{}
			for i, v := range order {
				pos[v] = i
			}
			for i, v := range order {
				nb, err := tc.graph.NeighborIDs(v)
				require.NoError(t, err)
				later := 0
				for _, w := range nb {
					if pos[w] > i {
						later++
					}
				}
				assert.LessOrEqual(t, later, k, "vertex %s", v)
			}
		})
	}
}

func TestDegeneracy_Errors(t *testing.T) {
	_, _, err := clique.Degeneracy(nil)
	require.ErrorIs(t, err, clique.ErrNilGraph)

	directed := core.NewGraph(core.WithDirected(true))
	_, err = directed.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, _, err = clique.Degeneracy(directed)
	require.ErrorIs(t, err, clique.ErrInvalidGraph)
}
