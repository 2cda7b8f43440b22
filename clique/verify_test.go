// SPDX-License-Identifier: MIT

package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
)

func TestIsCliqueAndIsMaximal(t *testing.T) {
	g := graphOf(t, "A-B", "B-C", "A-C", "C-D")

	assert.True(t, clique.IsClique(g, clique.Clique{"A", "B", "C"}))
	assert.True(t, clique.IsMaximal(g, clique.Clique{"A", "B", "C"}))
	assert.True(t, clique.IsMaximal(g, clique.Clique{"C", "D"}))

	assert.True(t, clique.IsClique(g, clique.Clique{"A", "B"}))
	assert.False(t, clique.IsMaximal(g, clique.Clique{"A", "B"}), "C extends it")
	assert.False(t, clique.IsClique(g, clique.Clique{"A", "D"}))
	assert.False(t, clique.IsClique(g, clique.Clique{"A", "A"}), "repeated member")
	assert.False(t, clique.IsMaximal(g, clique.Clique{"Z"}), "unknown vertex")

	assert.True(t, clique.IsClique(g, nil))
	assert.False(t, clique.IsMaximal(g, nil))
	assert.True(t, clique.IsMaximal(core.NewGraph(), nil))
}
