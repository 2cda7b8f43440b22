// SPDX-License-Identifier: MIT
//
// File: deadline.go
// Role: Time budget of one enumeration run.
// Contract:
//   - A zero timeout means "no limit" and is stored as the maximum Duration.
//   - Any other value that converts to < 1ns is rejected with ErrInvalidTimeout.
//   - value×unit saturates at the maximum Duration instead of overflowing.
//   - The guard is read on every recursive search call.

package clique

import (
	"fmt"
	"math"
	"time"

	"k8s.io/utils/clock"
)

// noLimit is the budget used when no timeout was requested.
const noLimit = time.Duration(math.MaxInt64)

// resolveBudget converts value×unit to a positive Duration.
func resolveBudget(value int64, unit time.Duration) (time.Duration, error) {
	if value == 0 {
		return noLimit, nil
	}
	if unit <= 0 {
		return 0, fmt.Errorf("clique: timeout unit %d: %w", int64(unit), ErrInvalidTimeout)
	}
	if value < 0 {
		return 0, fmt.Errorf("clique: timeout %d×%s: %w", value, unit, ErrInvalidTimeout)
	}
	if value > math.MaxInt64/int64(unit) {
		return noLimit, nil
	}

	return time.Duration(value) * unit, nil
}

// deadline answers "is there still time left?" for one run.
type deadline struct {
	clock  clock.PassiveClock
	start  time.Time
	budget time.Duration
}

// startDeadline anchors the budget at the current instant of c.
func startDeadline(c clock.PassiveClock, budget time.Duration) *deadline {
	return &deadline{clock: c, start: c.Now(), budget: budget}
}

// remaining reports whether the elapsed time is still strictly below the budget.
func (d *deadline) remaining() bool {
	if d.budget == noLimit {
		return true
	}

	return d.clock.Since(d.start) < d.budget
}

// bounded reports whether a finite budget is in force.
func (d *deadline) bounded() bool { return d.budget != noLimit }
