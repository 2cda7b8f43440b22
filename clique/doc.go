// SPDX-License-Identifier: MIT

// Package clique enumerates every maximal clique of an undirected simple graph
// with the Bron–Kerbosch family of backtracking algorithms.
//
// What:
//
//   - A clique is a vertex set whose members are pairwise adjacent. It is
//     maximal when no outside vertex is adjacent to all of its members.
//   - Finder runs the search at most once, memoizes the outcome and serves
//     two restartable views: All() (every maximal clique, discovery order)
//     and Maximum() (only the cliques of the largest size).
//   - The search is all-or-nothing. If the time budget runs out, the run
//     fails with ErrTimedOut and no partial cliques are exposed.
//
// Strategies (WithStrategy):
//
//   - StrategyPlain       classic Bron–Kerbosch, every candidate is branched on.
//   - StrategyPivot       Tomita pivoting: branch only on P \ N(u) for the pivot
//     u ∈ P ∪ X that maximises |P ∩ N(u)|. Default.
//   - StrategyDegeneracy  Eppstein–Löffler–Strash: the outermost level walks a
//     degeneracy ordering, inner levels pivot as above.
//
// All strategies return the same set of cliques for the same graph. The order
// is deterministic for a fixed graph and strategy.
//
// Search state per level is the classic triple (R, P, X): R the clique being
// grown, P the candidates that can still extend it, X the vertices already
// tried at this level. R is reported when P and X are both empty; an isolated
// vertex is therefore reported as a singleton clique.
//
// Options:
//
//   - WithStrategy(s)            branching strategy.
//   - WithTimeout(value, unit)   time budget; value 0 means no limit.
//   - WithDuration(d)            shorthand for WithTimeout(int64(d), time.Nanosecond).
//   - WithLogger(l)              *zap.Logger for run diagnostics (default no-op).
//   - WithClock(c)               clock behind the time budget (default real clock).
//
// Errors:
//
//   - ErrNilGraph        graph is nil.
//   - ErrInvalidGraph    graph is directed, has self-loops or parallel edges,
//     or reports inconsistent adjacency.
//   - ErrInvalidTimeout  timeout converts to a non-positive duration.
//   - ErrUnknownStrategy strategy value outside the enumeration.
//   - ErrTimedOut        the budget expired during the search; cached on the Finder.
//
// Complexity:
//
//   - Plain:      O(3^(n/3)) worst case, more recursive calls than the others.
//   - Pivot:      O(3^(n/3)) worst case (Tomita et al.), optimal for n vertices.
//   - Degeneracy: O(d·n·3^(d/3)) for degeneracy d.
//   - Memory:     O(n²/64) words for the adjacency bitsets plus O(n) bitsets per level.
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("A", "B", 0)
//	_, _ = g.AddEdge("B", "C", 0)
//	f, err := clique.NewFinder(g, clique.WithDuration(time.Second))
//	if err != nil { ... }
//	all, err := f.All() // {A,B} {B,C}
package clique
