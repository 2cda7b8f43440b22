// Package lvclique is an in-memory toolkit for listing the maximal cliques
// of undirected graphs.
//
// The module is organised in three packages and one command:
//
//	core/    - thread-safe Graph with vertices, edges and mode policies
//	builder/ - deterministic and seeded topology constructors (complete,
//	           cycle, wheel, multipartite, grid, random sparse/regular …)
//	clique/  - Bron–Kerbosch enumeration with plain, Tomita-pivot and
//	           degeneracy-ordered strategies, an optional time budget and a
//	           lazy, memoized Finder
//	cmd/lvclique - command-line front end reading edge lists or YAML
//
// Quick example:
//
//	    A───B
//	     ╲ ╱
//	      C───D     E
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 0)
//	g.AddEdge("B", "C", 0)
//	g.AddEdge("A", "C", 0)
//	g.AddEdge("C", "D", 0)
//	g.AddVertex("E")
//
//	cliques, _ := clique.Find(g, clique.WithDuration(time.Second))
//	// {A, B, C} {C, D} {E}
//
// A bounded search is all-or-nothing: it either returns every maximal
// clique or fails with clique.ErrTimedOut.
//
//	go get github.com/katalvlaran/lvclique
package lvclique
