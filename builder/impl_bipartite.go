// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs "{leftPrefix}{i}", right IDs "{rightPrefix}{j}"
//     (prefixes default to "L"/"R").
//   • Emits every cross pair L_i - R_j, i asc then j asc.
//
// Complexity:
//   • Time: O(n1 + n2) vertices + O(n1·n2) edges. Space: O(n1 + n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
// The graph is triangle-free: its n1·n2 edges are its maximal cliques.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := SymbolNumberIDFn(cfg.leftPrefix)
		right := SymbolNumberIDFn(cfg.rightPrefix)
		leftIDs := make([]string, n1)
		for i := range leftIDs {
			leftIDs[i] = left(i)
		}
		rightIDs := make([]string, n2)
		for j := range rightIDs {
			rightIDs[j] = right(j)
		}
		if err := addVertices(g, methodCompleteBipartite, leftIDs...); err != nil {
			return err
		}
		if err := addVertices(g, methodCompleteBipartite, rightIDs...); err != nil {
			return err
		}

		for _, u := range leftIDs {
			for _, v := range rightIDs {
				if err := link(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
