// SPDX-License-Identifier: MIT

package clique

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"k8s.io/utils/clock"
)

var (
	// ErrNilGraph is returned when NewFinder receives a nil graph.
	ErrNilGraph = errors.New("clique: graph is nil")

	// ErrInvalidGraph indicates the graph is not undirected and simple.
	ErrInvalidGraph = errors.New("clique: graph is not simple")

	// ErrInvalidTimeout indicates the requested timeout converts to a non-positive duration.
	ErrInvalidTimeout = errors.New("clique: invalid timeout, must be positive")

	// ErrTimedOut indicates the time budget expired before the enumeration finished.
	ErrTimedOut = errors.New("clique: time limit reached")

	// ErrUnknownStrategy indicates a Strategy value outside the known set.
	ErrUnknownStrategy = errors.New("clique: unknown strategy")
)

// Graph is the read-only capability the search consumes. *core.Graph satisfies it.
//
// Implementations may additionally expose Directed() bool, EdgeCount() int and
// IsNil() bool; NewFinder uses them, when present, to reject directed graphs,
// detect parallel edges and typed-nil pointers.
type Graph interface {
	// Vertices returns every vertex ID exactly once, in a deterministic order.
	Vertices() []string
	// NeighborIDs returns the distinct neighbours of id.
	NeighborIDs(id string) ([]string, error)
	// HasEdge reports whether u and v are adjacent.
	HasEdge(u, v string) bool
}

// Clique is a set of pairwise adjacent vertices, sorted ascending by ID.
type Clique []string

// Len returns the number of vertices in the clique.
func (c Clique) Len() int { return len(c) }

// Contains reports whether id is a member of the clique.
func (c Clique) Contains(id string) bool {
	_, ok := slices.BinarySearch(c, id)
	return ok
}

// String renders the clique as "{A, B, C}".
func (c Clique) String() string {
	return "{" + strings.Join(c, ", ") + "}"
}

func (c Clique) clone() Clique { return slices.Clone(c) }

// Strategy selects how the search picks the vertices to branch on.
type Strategy uint8

const (
	// StrategyPlain branches on every candidate vertex (no pivot).
	StrategyPlain Strategy = iota
	// StrategyPivot branches only on candidates not adjacent to a Tomita pivot.
	StrategyPivot
	// StrategyDegeneracy walks a degeneracy ordering at the outermost level
	// and pivots below it.
	StrategyDegeneracy
)

var strategyNames = [...]string{
	StrategyPlain:      "plain",
	StrategyPivot:      "pivot",
	StrategyDegeneracy: "degeneracy",
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}

	return strategyNames[s]
}

func (s Strategy) valid() bool { return int(s) < len(strategyNames) }

// ParseStrategy maps a name produced by Strategy.String back to its value.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("clique: parse %q: %w", name, ErrUnknownStrategy)
}

// Option configures a Finder. Use with NewFinder(g, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a Finder.
type Options struct {
	// Strategy is the branching strategy. Default StrategyPivot.
	Strategy Strategy

	// TimeoutValue and TimeoutUnit form the time budget as value×unit.
	// A zero value means no limit.
	TimeoutValue int64
	TimeoutUnit  time.Duration

	// Logger receives run diagnostics. Default zap.NewNop().
	Logger *zap.Logger

	// Clock backs the time budget. Default clock.RealClock{}.
	Clock clock.PassiveClock
}

// DefaultOptions returns Options with:
//   - StrategyPivot
//   - no time limit
//   - a no-op logger
//   - the real (monotonic) clock
func DefaultOptions() Options {
	return Options{
		Strategy:     StrategyPivot,
		TimeoutValue: 0,
		TimeoutUnit:  time.Nanosecond,
		Logger:       zap.NewNop(),
		Clock:        clock.RealClock{},
	}
}

// WithStrategy selects the branching strategy.
// Unknown values are rejected by NewFinder with ErrUnknownStrategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithTimeout bounds the search to value×unit. A zero value means no limit;
// any other value that converts to less than one nanosecond makes NewFinder
// fail with ErrInvalidTimeout. Products beyond the int64 range saturate.
func WithTimeout(value int64, unit time.Duration) Option {
	return func(o *Options) {
		o.TimeoutValue = value
		o.TimeoutUnit = unit
	}
}

// WithDuration bounds the search to d. Zero means no limit.
func WithDuration(d time.Duration) Option {
	return WithTimeout(int64(d), time.Nanosecond)
}

// WithLogger installs the logger used for run diagnostics.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("clique: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock replaces the clock behind the time budget, mainly for tests.
// Panics on nil.
func WithClock(c clock.PassiveClock) Option {
	if c == nil {
		panic("clique: WithClock(nil)")
	}
	return func(o *Options) {
		o.Clock = c
	}
}

// Result is the frozen outcome of one successful enumeration.
type Result struct {
	// Cliques lists every maximal clique in discovery order.
	Cliques []Clique
	// MaxSize is the size of the largest clique, 0 when Cliques is empty.
	MaxSize int
	// Expansions counts the recursive search calls.
	Expansions uint64
	// Elapsed is the wall time of the search on the configured clock.
	Elapsed time.Duration
	// Strategy is the strategy the run used.
	Strategy Strategy
}
