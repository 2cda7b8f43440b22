// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in order i - (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges. Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// C_3 is a triangle; for n ≥ 4 every edge is a maximal clique.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodCycle, ids...); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
