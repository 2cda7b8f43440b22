// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvclique/core"
)

// TestConcurrentMutationAndReads hammers the graph from writers and readers;
// run with -race to check the locking discipline.
func TestConcurrentMutationAndReads(t *testing.T) {
	g := core.NewGraph()
	const writers, perWriter = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				u := "w" + strconv.Itoa(w)
				v := "v" + strconv.Itoa(w) + "_" + strconv.Itoa(i)
				_, _ = g.AddEdge(u, v, 0)
			}
		}(w)
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = g.Vertices()
				_, _ = g.NeighborIDs("w" + strconv.Itoa(w))
				_ = g.Stats()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, g.EdgeCount())
	assert.Equal(t, writers+writers*perWriter, g.VertexCount())
}
