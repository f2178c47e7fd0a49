// Package searcher selects moves for any game implementing the
// game.State contract, using alpha-beta pruned negamax wrapped in an
// iterative-deepening driver. Search effort is bounded by a fixed
// depth, a wall-clock duration or a node-visit cap, and the root moves
// can be fanned out across a worker pool.
package searcher

import (
	"errors"
	"time"

	"gambit/game"
)

// ErrNoMove reports a root position with no legal moves. It marks a
// terminal position, not a search failure.
var ErrNoMove = errors.New("no legal moves at the root")

// errHalted unwinds the recursion when the budget runs out mid-depth.
// The interrupted depth is discarded wholesale.
var errHalted = errors.New("search halted: budget exhausted")

// Deepening stops here even if budget remains; no practical game needs
// more plies and it keeps trivial positions from spinning.
const maxSearchDepth = 64

// Result is the outcome of one search call.
type Result[M comparable, F game.Fitness] struct {
	Move     M
	Value    F             // evaluation of Move from the root player's perspective
	Depth    int           // deepest fully completed depth
	Nodes    int64         // node visits, when metrics are enabled
	Duration time.Duration // wall time, when metrics are enabled
}

type config struct {
	parallelism int
	shareBound  bool
	metrics     bool
}

type Option func(*config)

// WithParallelism fans the root moves out across the given number of
// workers. Values below 2 keep the search sequential.
func WithParallelism(workers int) Option {
	return func(c *config) {
		if workers > 0 {
			c.parallelism = workers
		}
	}
}

// WithSharedBound lets parallel root workers share a monotonically
// tightening best bound for cross-branch pruning. More pruning, but
// equal-value ties may resolve differently across runs; leave it off
// when strict reproducibility matters.
func WithSharedBound() Option {
	return func(c *config) {
		c.shareBound = true
	}
}

// WithMetrics fills Result.Nodes and Result.Duration.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

// Searcher searches games with state type S, move type M and fitness
// type F. A Searcher is reusable but not safe for concurrent calls.
type Searcher[S game.State[S, M, F], M comparable, F game.Fitness] struct {
	parallelism int
	shareBound  bool
	metrics     Collector
}

func New[S game.State[S, M, F], M comparable, F game.Fitness](options ...Option) *Searcher[S, M, F] {
	c := &config{parallelism: 1}
	for _, option := range options {
		option(c)
	}
	metrics := NewDummyCollector()
	if c.metrics {
		metrics = NewCollector()
	}
	return &Searcher[S, M, F]{
		parallelism: c.parallelism,
		shareBound:  c.shareBound,
		metrics:     metrics,
	}
}

// SearchComplete searches exhaustively to the given ply depth.
func (s *Searcher[S, M, F]) SearchComplete(root S, depth int) (Result[M, F], error) {
	if depth < 1 {
		depth = 1
	}
	return s.drive(root, depth, unbounded{})
}

// SearchTimeBounded deepens until the given wall-clock duration is
// about to expire, returning the best move of the last completed depth.
// A legal move is returned even for a zero duration.
func (s *Searcher[S, M, F]) SearchTimeBounded(root S, maxDuration time.Duration) (Result[M, F], error) {
	return s.drive(root, maxSearchDepth, NewTimeBudget(maxDuration))
}

// SearchStepBounded deepens until roughly maxNodeVisits positions have
// been explored. The cap is shared across all root workers.
func (s *Searcher[S, M, F]) SearchStepBounded(root S, maxNodeVisits int64) (Result[M, F], error) {
	return s.drive(root, maxSearchDepth, NewStepBudget(maxNodeVisits))
}
