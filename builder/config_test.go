// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()

	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
}

func TestNewBuilderConfig_LastOptionWins(t *testing.T) {
	cfg := newBuilderConfig(WithSymbolIDs(), WithExcelColumnIDs())
	assert.Equal(t, "AB", cfg.idFn(27))

	cfg = newBuilderConfig(WithSymbolIDs(), WithDefaultIDs())
	assert.Equal(t, "3", cfg.idFn(3))
}

func TestNewBuilderConfig_PartitionPrefixFallback(t *testing.T) {
	cfg := newBuilderConfig(WithPartitionPrefix("", "B"))

	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, "B", cfg.rightPrefix)
}

func TestNewBuilderConfig_Seeded(t *testing.T) {
	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithRand(r))
	assert.Same(t, r, c.rng)
}

func TestSimplePairing(t *testing.T) {
	assert.True(t, simplePairing([]int{0, 1, 2, 3}))
	assert.False(t, simplePairing([]int{0, 0, 1, 2}))
	assert.False(t, simplePairing([]int{0, 1, 1, 0}))
}
