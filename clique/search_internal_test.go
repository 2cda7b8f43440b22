// SPDX-License-Identifier: MIT

package clique

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/core"
)

func indexOf(t *testing.T, g Graph) *index {
	t.Helper()
	ix, err := buildIndex(g)
	require.NoError(t, err)

	return ix
}

func setOf(ix *index, members ...uint) *bitset.BitSet {
	s := ix.empty()
	for _, m := range members {
		s.Set(m)
	}

	return s
}

func TestBuildIndex(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("b", "a", 0)
	_, _ = g.AddEdge("b", "c", 0)
	ix := indexOf(t, g)

	assert.Equal(t, []string{"a", "b", "c"}, ix.ids)
	assert.Equal(t, []uint{1}, members(ix.nbrs[0]))
	assert.Equal(t, []uint{0, 2}, members(ix.nbrs[1]))
	assert.Equal(t, []uint{0, 1, 2}, members(ix.universe()))
	assert.True(t, ix.empty().None())
}

func TestSetAlgebra(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4)) // 0-1-2-3
	require.NoError(t, err)
	ix := indexOf(t, g)

	all := ix.universe()
	assert.Equal(t, []uint{0, 2}, members(ix.restrict(all, 1)))
	assert.Equal(t, uint(2), ix.degreeIn(all, 2))
	assert.Equal(t, []uint{0, 3}, members(difference(all, setOf(ix, 1, 2))))
	assert.Equal(t, []uint{1, 3}, members(union(setOf(ix, 1), setOf(ix, 3))))

	// restrict never aliases its input.
	r := ix.restrict(all, 1)
	r.Set(3)
	assert.Equal(t, []uint{0, 1, 2, 3}, members(all))
}

func TestChoosePivot(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(4)) // Center + leaves 1..3
	require.NoError(t, err)
	ix := indexOf(t, g) // ids: 1,2,3,Center
	center := ix.pos["Center"]

	u, ok := choosePivot(ix, ix.universe(), ix.empty())
	require.True(t, ok)
	assert.Equal(t, center, u, "hub covers the most candidates")

	// Ties go to the lowest index, whether the vertex sits in P or X.
	u, ok = choosePivot(ix, setOf(ix, 2), setOf(ix, 1))
	require.True(t, ok)
	assert.Equal(t, uint(1), u)

	_, ok = choosePivot(ix, ix.empty(), ix.empty())
	assert.False(t, ok)
}

func TestBranchRules(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	ix := indexOf(t, g)
	p := ix.universe()

	plain := ruleFor(StrategyPlain)(ix, p, ix.empty())
	assert.Equal(t, members(p), members(plain))
	plain.Clear(0)
	assert.True(t, p.Test(0), "branch set must not alias P")

	piv := ruleFor(StrategyPivot)(ix, p, ix.empty())
	assert.Equal(t, []uint{ix.pos["Center"]}, members(piv))
}

func TestDegeneracyOrder_Bound(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(50, 0.2))
	require.NoError(t, err)
	ix := indexOf(t, g)

	order, k := degeneracyOrder(ix)
	require.Len(t, order, 50)

	later := ix.universe()
	for _, v := range order {
		later.Clear(v)
		assert.LessOrEqual(t, int(ix.degreeIn(later, v)), k)
	}
}

func TestEngine_EmptyGraphReportsNothing(t *testing.T) {
	ix := indexOf(t, core.NewGraph())
	for _, s := range []Strategy{StrategyPlain, StrategyPivot, StrategyDegeneracy} {
		e := newEngine(ix, s, startDeadline(DefaultOptions().Clock, noLimit))
		require.NoError(t, e.run(s))
		assert.Empty(t, e.out.cliques)
		assert.Zero(t, e.out.maxSize)
	}
}
