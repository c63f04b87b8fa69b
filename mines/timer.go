package mines

import (
	"sync/atomic"
	"time"
)

const (
	minBudgetMs = 1
	maxBudgetMs = 100_000_000
)

// Timer is a cooperative deadline. Every bounded-work loop inside the
// solver and generator polls [Timer.TimeIsUp] between iterations;
// cancellation is never interruptive.
type Timer struct {
	budget time.Duration
	start  time.Time
	done   atomic.Bool
}

// NewTimer constructs a [Timer] with a millisecond budget in
// [1, 1e8]. Panics with [AssertionError] outside that range.
func NewTimer(budgetMs int) *Timer {
	if budgetMs < minBudgetMs || budgetMs > maxBudgetMs {
		panic(AssertionError{"budget out of range"})
	}
	return &Timer{
		budget: time.Duration(budgetMs) * time.Millisecond,
		start:  time.Now(),
	}
}

// TimeIsUp reports whether the deadline has passed, or whether
// [Timer.Terminate] was called. Safe for concurrent use.
func (t *Timer) TimeIsUp() bool {
	if t.done.Load() {
		return true
	}
	if time.Since(t.start) >= t.budget {
		t.done.Store(true)
		return true
	}
	return false
}

// Terminate sets the expiry flag unconditionally.
func (t *Timer) Terminate() {
	t.done.Store(true)
}
