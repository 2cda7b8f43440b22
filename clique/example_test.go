// SPDX-License-Identifier: MIT

package clique_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
)

func ExampleFinder_All() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_ = g.AddVertex("E")

	f, err := clique.NewFinder(g, clique.WithDuration(time.Second))
	if err != nil {
		fmt.Println(err)
		return
	}
	all, err := f.All()
	if err != nil {
		fmt.Println(err)
		return
	}
	for c := range all {
		fmt.Println(c)
	}
	// Output:
	// {A, B, C}
	// {C, D}
	// {E}
}

func ExampleFinder_Maximum() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Wheel(6))

	f, _ := clique.NewFinder(g, clique.WithStrategy(clique.StrategyDegeneracy))
	size, _ := f.MaxSize()
	maximum, _ := f.MaximumCliques()
	fmt.Println(size, len(maximum))
	// Output: 3 5
}

func ExampleNewFinder_timeout() {
	g, _ := builder.BuildGraph(nil, nil, builder.CompleteMultipartite(12, 3))

	f, _ := clique.NewFinder(g, clique.WithTimeout(1, time.Nanosecond))
	_, err := f.All()
	fmt.Println(errors.Is(err, clique.ErrTimedOut), f.State())
	// Output: true failed
}
