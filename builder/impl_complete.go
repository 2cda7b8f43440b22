// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once
//     (mirrored j→i only on directed graphs).
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.
//   • Space: O(n) for the ID slice.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// K_n is its own unique maximal clique.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodComplete, ids...); err != nil {
			return err
		}

		return completeOn(g, methodComplete, ids)
	}
}

// completeOn links every unordered pair of ids.
func completeOn(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := link(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
