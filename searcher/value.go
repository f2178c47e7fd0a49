package searcher

import "gambit/game"

// bound is a fitness value extended with infinities. The infinities
// seed the alpha-beta window and compare outside every finite fitness.
type bound[F game.Fitness] struct {
	value F
	inf   int8 // -1 below every fitness, +1 above every fitness, 0 finite
}

func minusInf[F game.Fitness]() bound[F] { return bound[F]{inf: -1} }

func plusInf[F game.Fitness]() bound[F] { return bound[F]{inf: 1} }

func finite[F game.Fitness](v F) bound[F] { return bound[F]{value: v} }

func (b bound[F]) less(o bound[F]) bool {
	if b.inf != o.inf {
		return b.inf < o.inf
	}
	return b.inf == 0 && b.value < o.value
}

// neg mirrors the bound around zero, mapping -inf to +inf and back.
func (b bound[F]) neg() bound[F] {
	return bound[F]{value: -b.value, inf: -b.inf}
}
