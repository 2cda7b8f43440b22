// SPDX-License-Identifier: MIT

package clique

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCompleted = "completed"
	outcomeTimedOut  = "timed_out"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lvclique",
		Name:      "runs_total",
		Help:      "Number of clique enumeration runs, by strategy and outcome.",
	}, []string{"strategy", "outcome"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lvclique",
		Name:      "run_duration_seconds",
		Help:      "Duration of clique enumeration runs.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"strategy"})

	expansionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lvclique",
		Name:      "expansions_total",
		Help:      "Number of recursive search calls across all runs.",
	}, []string{"strategy"})
)

// observeRun records one finished run.
func observeRun(s Strategy, outcome string, seconds float64, expansions uint64) {
	name := s.String()
	runsTotal.WithLabelValues(name, outcome).Inc()
	runDuration.WithLabelValues(name).Observe(seconds)
	expansionsTotal.WithLabelValues(name).Add(float64(expansions))
}
