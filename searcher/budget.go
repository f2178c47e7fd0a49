package searcher

import (
	"sync/atomic"
	"time"
)

// A Budget meters how much search capacity remains. Step is consulted
// once per node visit, Deepen once before each new iterative-deepening
// depth. Both must be safe for concurrent use by root workers.
type Budget interface {
	// Step consumes one node visit and reports whether the search may
	// keep going.
	Step() bool

	// Deepen reports whether another depth is worth starting, given how
	// long the last completed depth took. Depths grow roughly
	// geometrically with the branching factor, so the last depth's cost
	// is the proxy for the next one's.
	Deepen(lastDepth time.Duration) bool
}

// stepBudget caps the total number of node visits. The counter is
// shared by all root workers, so the cap is global rather than
// per-branch.
type stepBudget struct {
	remaining atomic.Int64
}

// NewStepBudget returns a Budget allowing at most visits node visits.
func NewStepBudget(visits int64) Budget {
	b := &stepBudget{}
	b.remaining.Store(visits)
	return b
}

func (b *stepBudget) Step() bool {
	// Decrement only while budget remains, so the counter clamps at
	// zero instead of racing far below it.
	for {
		remaining := b.remaining.Load()
		if remaining <= 0 {
			return false
		}
		if b.remaining.CompareAndSwap(remaining, remaining-1) {
			return true
		}
	}
}

func (b *stepBudget) Deepen(time.Duration) bool {
	return b.remaining.Load() > 0
}

// timeBudget runs the search until a wall-clock deadline computed once
// at search start.
type timeBudget struct {
	deadline time.Time
}

// NewTimeBudget returns a Budget that expires d from now.
func NewTimeBudget(d time.Duration) Budget {
	return &timeBudget{deadline: time.Now().Add(d)}
}

func (b *timeBudget) Step() bool {
	return time.Now().Before(b.deadline)
}

func (b *timeBudget) Deepen(lastDepth time.Duration) bool {
	// The next depth costs at least a branching factor more than the
	// last one. Projecting it at twice the last depth's cost skips
	// depths that would be discarded anyway.
	return lastDepth*2 < time.Until(b.deadline)
}

// unbounded never refuses work. It drives complete searches and the
// depth-1 fallback.
type unbounded struct{}

func (unbounded) Step() bool                { return true }
func (unbounded) Deepen(time.Duration) bool { return true }
