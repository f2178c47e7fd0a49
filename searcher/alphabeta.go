package searcher

import "gambit/game"

// negamax returns the value of state from the perspective of the player
// to move, searching depth plies below it within the (alpha, beta)
// window. Fail-soft: the returned value may fall outside the window, in
// which case it is a bound rather than an exact value.
func (s *Searcher[S, M, F]) negamax(state S, depth int, alpha, beta bound[F], b Budget) (bound[F], error) {
	if !b.Step() {
		return bound[F]{}, errHalted
	}
	s.metrics.AddNode()

	moves := state.LegalMoves()
	// The terminal check comes before the depth check so a terminal
	// state never enumerates moves, whatever depth it is reached at.
	if len(moves) == 0 || depth == 0 {
		return finite(state.Evaluate(state.Player())), nil
	}

	best := minusInf[F]()
	for _, move := range moves {
		v, err := s.childValue(state, state.Play(move), depth-1, alpha, beta, b)
		if err != nil {
			return bound[F]{}, err
		}
		if best.less(v) {
			best = v
		}
		if alpha.less(v) {
			alpha = v
		}
		if !alpha.less(beta) {
			break // beta cutoff
		}
	}
	return best, nil
}

// childValue searches a successor state, negating and swapping the
// window only when the active player actually changes. Games where a
// player moves several times in a row keep the parent's perspective.
func (s *Searcher[S, M, F]) childValue(parent, child S, depth int, alpha, beta bound[F], b Budget) (bound[F], error) {
	if child.Player() == parent.Player() {
		return s.negamax(child, depth, alpha, beta, b)
	}
	v, err := s.negamax(child, depth, beta.neg(), alpha.neg(), b)
	if err != nil {
		return bound[F]{}, err
	}
	return v.neg(), nil
}

// searchRootSequential evaluates the root children in enumeration
// order, tightening alpha as it goes. The first child attaining the
// maximal value wins ties, which makes sequential selection
// deterministic.
func (s *Searcher[S, M, F]) searchRootSequential(root S, children []game.Child[S, M], depth int, b Budget) (Result[M, F], error) {
	alpha := minusInf[F]()
	beta := plusInf[F]()
	best := minusInf[F]()
	bestIndex := -1
	for i, child := range children {
		v, err := s.childValue(root, child.State, depth-1, alpha, beta, b)
		if err != nil {
			return Result[M, F]{}, err
		}
		if bestIndex < 0 || best.less(v) {
			best = v
			bestIndex = i
		}
		if alpha.less(v) {
			alpha = v
		}
	}
	return Result[M, F]{Move: children[bestIndex].Move, Value: best.value}, nil
}
