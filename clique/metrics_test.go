// SPDX-License-Identifier: MIT

package clique

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/builder"
)

func TestMetrics_RecordOutcomes(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.CompleteMultipartite(3, 3))
	require.NoError(t, err)

	completed := runsTotal.WithLabelValues("plain", outcomeCompleted)
	timedOut := runsTotal.WithLabelValues("plain", outcomeTimedOut)
	expansions := expansionsTotal.WithLabelValues("plain")
	beforeOK, beforeTO, beforeExp := testutil.ToFloat64(completed), testutil.ToFloat64(timedOut), testutil.ToFloat64(expansions)

	f, err := NewFinder(g, WithStrategy(StrategyPlain))
	require.NoError(t, err)
	res, err := f.Result()
	require.NoError(t, err)

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(completed))
	assert.Equal(t, beforeExp+float64(res.Expansions), testutil.ToFloat64(expansions))

	f, err = NewFinder(g, WithStrategy(StrategyPlain), WithTimeout(1, time.Nanosecond))
	require.NoError(t, err)
	_, err = f.Cliques()
	require.ErrorIs(t, err, ErrTimedOut)
	assert.Equal(t, beforeTO+1, testutil.ToFloat64(timedOut))

	assert.Positive(t, testutil.CollectAndCount(runDuration))
}
