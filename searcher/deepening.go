package searcher

import (
	"time"

	"github.com/rs/zerolog/log"

	"gambit/game"
)

// drive is the iterative-deepening loop behind every entry point: run
// depth 1, 2, 3, ... until the budget refuses another depth or maxDepth
// completes, and return the best move of the last depth that finished
// entirely. A depth interrupted mid-search is discarded, never
// partially trusted.
func (s *Searcher[S, M, F]) drive(root S, maxDepth int, b Budget) (Result[M, F], error) {
	s.metrics.Start()

	children := game.Expand[S, M, F](root)
	if len(children) == 0 {
		return Result[M, F]{}, ErrNoMove
	}

	// Depth 1 runs under the real budget. Only when even that is
	// interrupted does it rerun unmetered, so a budget exhausted before
	// any depth completes still produces a legal move.
	start := time.Now()
	best, err := s.searchRoot(root, children, 1, b)
	if err != nil {
		log.Debug().Msg("budget spent before depth 1, running an unmetered fallback")
		best, err = s.searchRoot(root, children, 1, unbounded{})
		if err != nil {
			return Result[M, F]{}, err
		}
	}
	best.Depth = 1
	lastDepth := time.Since(start)

	for depth := 2; depth <= maxDepth; depth++ {
		if !b.Deepen(lastDepth) {
			break
		}
		begin := time.Now()
		r, err := s.searchRoot(root, children, depth, b)
		if err != nil {
			log.Debug().Int("depth", depth).Msg("budget ran out mid-depth, discarding")
			break
		}
		lastDepth = time.Since(begin)
		r.Depth = depth
		best = r
		log.Debug().Int("depth", depth).Dur("elapsed", lastDepth).Msg("completed depth")
	}

	m := s.metrics.Complete(best.Depth)
	best.Nodes = m.Nodes
	best.Duration = m.Duration
	return best, nil
}

func (s *Searcher[S, M, F]) searchRoot(root S, children []game.Child[S, M], depth int, b Budget) (Result[M, F], error) {
	if s.parallelism > 1 {
		return s.searchRootParallel(root, children, depth, b)
	}
	return s.searchRootSequential(root, children, depth, b)
}
