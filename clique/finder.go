// SPDX-License-Identifier: MIT
//
// File: finder.go
// Role: Lazy, memoized enumeration controller.
// Contract:
//   - The search runs at most once per Finder, on the first call to Run or
//     any accessor. Later calls return the cached result or the cached error.
//   - A timed-out run is final: the Finder stays Failed and every accessor
//     keeps returning ErrTimedOut. Build a new Finder to retry.
//   - Returned slices and sequences are copies; callers cannot mutate the cache.
// Concurrency:
//   - Safe for concurrent use. Concurrent first calls block until the single
//     run finishes. Graph callbacks must not call back into the same Finder.

package clique

import (
	"errors"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// State is the lifecycle position of a Finder.
type State int32

const (
	// StateNotStarted means no accessor has triggered the search yet.
	StateNotStarted State = iota
	// StateRunning means the search is in progress.
	StateRunning
	// StateCompleted means the result is cached and immutable.
	StateCompleted
	// StateFailed means the search failed; the error is cached.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Finder enumerates the maximal cliques of one graph on demand.
type Finder struct {
	graph  Graph
	opts   Options
	budget time.Duration

	mu     sync.Mutex
	state  atomic.Int32
	result *Result
	err    error
}

// NewFinder validates g and the options and returns an idle Finder.
// No search work happens until the first accessor call.
//
// Errors: ErrNilGraph, ErrInvalidGraph, ErrInvalidTimeout, ErrUnknownStrategy.
func NewFinder(g Graph, opts ...Option) (*Finder, error) {
	if isNilGraph(g) {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Strategy.valid() {
		return nil, fmt.Errorf("clique: strategy %d: %w", uint8(o.Strategy), ErrUnknownStrategy)
	}
	budget, err := resolveBudget(o.TimeoutValue, o.TimeoutUnit)
	if err != nil {
		return nil, err
	}
	if err = validateSimple(g); err != nil {
		return nil, err
	}

	return &Finder{graph: g, opts: o, budget: budget}, nil
}

// State reports the current lifecycle state without blocking.
func (f *Finder) State() State { return State(f.state.Load()) }

// Strategy returns the configured branching strategy.
func (f *Finder) Strategy() Strategy { return f.opts.Strategy }

// Run performs the search if it has not happened yet.
// It returns nil once the result is cached, or the cached failure.
func (f *Finder) Run() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.State() {
	case StateCompleted:
		return nil
	case StateFailed:
		return f.err
	}

	f.state.Store(int32(StateRunning))
	res, err := f.compute()
	if err != nil {
		f.err = err
		f.state.Store(int32(StateFailed))
		return err
	}
	f.result = res
	f.state.Store(int32(StateCompleted))

	return nil
}

// compute performs one full enumeration.
func (f *Finder) compute() (*Result, error) {
	log := f.opts.Logger.With(zap.Stringer("strategy", f.opts.Strategy))
	guard := startDeadline(f.opts.Clock, f.budget)

	ix, err := buildIndex(f.graph)
	if err != nil {
		return nil, err
	}
	log.Debug("clique search started",
		zap.Uint("vertices", ix.size()),
		zap.Bool("bounded", guard.bounded()),
		zap.Duration("budget", f.budget),
	)

	eng := newEngine(ix, f.opts.Strategy, guard)
	err = eng.run(f.opts.Strategy)
	elapsed := f.opts.Clock.Since(guard.start)

	if errors.Is(err, ErrTimedOut) {
		observeRun(f.opts.Strategy, outcomeTimedOut, elapsed.Seconds(), eng.expansions)
		log.Info("clique search timed out",
			zap.Duration("elapsed", elapsed),
			zap.Duration("budget", f.budget),
			zap.Uint64("expansions", eng.expansions),
		)
		return nil, fmt.Errorf("clique: %s search stopped after %s: %w", f.opts.Strategy, elapsed, ErrTimedOut)
	}
	if err != nil {
		return nil, err
	}

	observeRun(f.opts.Strategy, outcomeCompleted, elapsed.Seconds(), eng.expansions)
	log.Debug("clique search finished",
		zap.Int("cliques", len(eng.out.cliques)),
		zap.Int("max_size", eng.out.maxSize),
		zap.Uint64("expansions", eng.expansions),
		zap.Duration("elapsed", elapsed),
	)

	return &Result{
		Cliques:    eng.out.cliques,
		MaxSize:    eng.out.maxSize,
		Expansions: eng.expansions,
		Elapsed:    elapsed,
		Strategy:   f.opts.Strategy,
	}, nil
}

// All returns a restartable sequence over every maximal clique, in discovery order.
func (f *Finder) All() (iter.Seq[Clique], error) {
	if err := f.Run(); err != nil {
		return nil, err
	}

	return sequence(f.result.Cliques, 0), nil
}

// Maximum returns a restartable sequence over the cliques of maximum size,
// in discovery order. It is empty for a graph without vertices.
func (f *Finder) Maximum() (iter.Seq[Clique], error) {
	if err := f.Run(); err != nil {
		return nil, err
	}
	if f.result.MaxSize == 0 {
		return sequence(nil, 0), nil
	}

	return sequence(f.result.Cliques, f.result.MaxSize), nil
}

// Cliques returns a copy of every maximal clique.
func (f *Finder) Cliques() ([]Clique, error) {
	seq, err := f.All()
	if err != nil {
		return nil, err
	}

	return collect(seq), nil
}

// MaximumCliques returns a copy of the maximum cliques.
func (f *Finder) MaximumCliques() ([]Clique, error) {
	seq, err := f.Maximum()
	if err != nil {
		return nil, err
	}

	return collect(seq), nil
}

// MaxSize returns the clique number of the graph (0 for an empty graph).
func (f *Finder) MaxSize() (int, error) {
	if err := f.Run(); err != nil {
		return 0, err
	}

	return f.result.MaxSize, nil
}

// Result returns a copy of the cached run outcome.
func (f *Finder) Result() (Result, error) {
	if err := f.Run(); err != nil {
		return Result{}, err
	}
	out := *f.result
	out.Cliques = collect(sequence(f.result.Cliques, 0))

	return out, nil
}

// sequence yields copies of the cliques whose size equals size (all when size is 0).
func sequence(cliques []Clique, size int) iter.Seq[Clique] {
	return func(yield func(Clique) bool) {
		for _, c := range cliques {
			if size > 0 && len(c) != size {
				continue
			}
			if !yield(c.clone()) {
				return
			}
		}
	}
}

func collect(seq iter.Seq[Clique]) []Clique {
	out := []Clique{}
	for c := range seq {
		out = append(out, c)
	}

	return out
}

// Find enumerates every maximal clique of g in one call.
func Find(g Graph, opts ...Option) ([]Clique, error) {
	f, err := NewFinder(g, opts...)
	if err != nil {
		return nil, err
	}

	return f.Cliques()
}

// FindMaximum returns only the maximum cliques of g in one call.
func FindMaximum(g Graph, opts ...Option) ([]Clique, error) {
	f, err := NewFinder(g, opts...)
	if err != nil {
		return nil, err
	}

	return f.MaximumCliques()
}
