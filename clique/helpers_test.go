// SPDX-License-Identifier: MIT

package clique_test

import (
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
)

var allStrategies = []clique.Strategy{
	clique.StrategyPlain,
	clique.StrategyPivot,
	clique.StrategyDegeneracy,
}

// graphOf builds an undirected simple graph from "u-v" pairs and bare vertex IDs.
func graphOf(t testing.TB, items ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, it := range items {
		u, v, isEdge := strings.Cut(it, "-")
		if !isEdge {
			require.NoError(t, g.AddVertex(u))
			continue
		}
		_, err := g.AddEdge(u, v, 0)
		require.NoError(t, err)
	}

	return g
}

func build(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

// canon renders cliques as sorted "a,b,c" keys, independent of discovery order.
func canon(cs []clique.Clique) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = strings.Join(c, ",")
	}
	slices.Sort(out)

	return out
}

// countingGraph counts neighbour queries so tests can tell whether a search ran.
type countingGraph struct {
	*core.Graph
	calls atomic.Int64
}

func (c *countingGraph) NeighborIDs(id string) ([]string, error) {
	c.calls.Add(1)
	return c.Graph.NeighborIDs(id)
}

// steppingClock advances by step every time elapsed time is measured.
type steppingClock struct {
	*testingclock.FakePassiveClock
	step time.Duration
}

func newSteppingClock(step time.Duration) *steppingClock {
	return &steppingClock{
		FakePassiveClock: testingclock.NewFakePassiveClock(time.Unix(1_700_000_000, 0)),
		step:             step,
	}
}

func (c *steppingClock) Since(ts time.Time) time.Duration {
	c.SetTime(c.Now().Add(c.step))
	return c.FakePassiveClock.Since(ts)
}

// mapGraph is a hand-written Graph used to feed malformed adjacency.
type mapGraph struct {
	order []string
	adj   map[string][]string
}

func (m mapGraph) Vertices() []string { return m.order }

func (m mapGraph) NeighborIDs(id string) ([]string, error) {
	nb, ok := m.adj[id]
	if !ok {
		return nil, core.ErrVertexNotFound
	}
	return nb, nil
}

func (m mapGraph) HasEdge(u, v string) bool {
	return slices.Contains(m.adj[u], v)
}
