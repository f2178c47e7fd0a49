package searcher

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"gambit/game"
)

// sharedBound is the only mutable value shared between root workers: a
// lower bound on the best root value, tightened by compare-and-swap so
// it only ever rises.
type sharedBound[F game.Fitness] struct {
	p atomic.Pointer[bound[F]]
}

func newSharedBound[F game.Fitness]() *sharedBound[F] {
	s := &sharedBound[F]{}
	floor := minusInf[F]()
	s.p.Store(&floor)
	return s
}

func (s *sharedBound[F]) get() bound[F] {
	return *s.p.Load()
}

func (s *sharedBound[F]) tighten(v bound[F]) {
	for {
		cur := s.p.Load()
		if !cur.less(v) {
			return
		}
		if s.p.CompareAndSwap(cur, &v) {
			return
		}
	}
}

type branchResult[F game.Fitness] struct {
	value bound[F]
	// exact means the value landed above the alpha the branch started
	// with, so it is the branch's true minimax value rather than an
	// upper bound left by a fail-low cutoff.
	exact bool
}

// searchRootParallel distributes the root children across a worker
// pool; each worker searches its subtree sequentially. With bound
// sharing enabled a worker seeds its window from the tightest value any
// sibling has proven so far, and only exact values tighten the bound,
// so the merged best value is always exact minimax.
func (s *Searcher[S, M, F]) searchRootParallel(root S, children []game.Child[S, M], depth int, b Budget) (Result[M, F], error) {
	var shared *sharedBound[F]
	if s.shareBound {
		shared = newSharedBound[F]()
	}

	results := make([]branchResult[F], len(children))
	var g errgroup.Group
	g.SetLimit(s.parallelism)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			alpha := minusInf[F]()
			if shared != nil {
				alpha = shared.get()
			}
			v, err := s.childValue(root, child.State, depth-1, alpha, plusInf[F](), b)
			if err != nil {
				return err
			}
			exact := alpha.less(v)
			results[i] = branchResult[F]{value: v, exact: exact}
			if shared != nil && exact {
				shared.tighten(v)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result[M, F]{}, err
	}

	// Merge in enumeration order with the sequential tie-break rule:
	// strictly better values win, and on equal values an exact value
	// displaces a fail-low upper bound.
	best := branchResult[F]{value: minusInf[F]()}
	bestIndex := -1
	for i, r := range results {
		switch {
		case bestIndex < 0 || best.value.less(r.value):
			best = r
			bestIndex = i
		case r.exact && !best.exact && !r.value.less(best.value):
			best = r
			bestIndex = i
		}
	}
	return Result[M, F]{Move: children[bestIndex].Move, Value: best.value.value}, nil
}
