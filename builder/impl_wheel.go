// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e. a cycle of size (n-1) plus a hub vertex.
//   • Therefore n ≥ 4 (the rim must be a valid cycle).
//
// Contract:
//   • Builds the rim with Cycle(n-1) under the same cfg.
//   • Adds hub "Center" and spokes to rim vertices in index order.
//
// Complexity:
//   • Time: O(n) vertices + O(2n-2) edges. Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
// For n ≥ 5 its maximal cliques are the n-1 triangles through the hub;
// W_4 is K_4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := addVertices(g, methodWheel, centerVertexID); err != nil {
			return err
		}
		for _, rim := range indexIDs(cfg, 0, n-1) {
			if err := link(g, methodWheel, centerVertexID, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
