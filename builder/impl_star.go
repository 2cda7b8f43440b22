// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center".
//   - Adds leaves via cfg.idFn for i = 1..n-1 and links Center - leaf[i].
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub "Center" and n-1 leaves.
// Every spoke is a maximal clique.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := addVertices(g, methodStar, centerVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addVertices(g, methodStar, leaf); err != nil {
				return err
			}
			if err := link(g, methodStar, centerVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
