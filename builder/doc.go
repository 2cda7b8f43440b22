// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from composable
// constructors: classic topologies (paths, cycles, wheels, complete graphs),
// partite graphs whose maximal cliques are known in closed form, and seeded
// random graphs for property tests of the clique search.
//
// The package offers the following key components:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator. Creates the graph,
//     resolves builderConfig from BuilderOption values and runs constructors
//     in order.
//   - Constructors: Path, Cycle, Star, Wheel, Complete, CompleteBipartite,
//     CompleteMultipartite, Grid, RandomSparse, RandomRegular.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A"…"Z","AA",…), SymbolNumberIDFn(prefix) ("v0","v1",…).
//
// Known clique structure (useful as test oracles):
//
//   - Complete(n):                   one maximal clique of size n.
//   - Cycle(n), n ≥ 4:               n maximal cliques, all edges.
//   - Wheel(n), n ≥ 5:               n-1 triangles through "Center".
//   - CompleteBipartite(a, b):       a·b maximal cliques, all edges.
//   - CompleteMultipartite(k, s):    s^k maximal cliques, all of size k
//     (the Moon–Moser extremal graph for s = 3).
//   - Grid(r, c), r·c ≥ 2:           triangle-free, every edge is maximal.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graph.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with %w.
//   - Edges carry weight 0, which every core.Graph mode accepts.
package builder
