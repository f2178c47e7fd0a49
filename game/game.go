package game

import "golang.org/x/exp/constraints"

// Fitness is the set of evaluation types the searcher can order and
// negate. Negation is what lets the search flip perspective between
// plies, so unsigned types are excluded.
type Fitness interface {
	constraints.Signed | constraints.Float
}

// State is the contract a game must implement to be searchable.
//
// S is the implementing type itself, M its move type and F its
// evaluation type. Implementations must be pure: Play returns a
// successor and never mutates the receiver, so concurrent search
// branches may share a parent state.
type State[S any, M comparable, F Fitness] interface {
	// Player returns the player whose turn it is.
	Player() string

	// LegalMoves returns all moves playable from this state, in a
	// stable order. An empty slice marks a terminal state. The searcher
	// breaks evaluation ties by this order, so a deterministic order
	// gives deterministic move selection.
	LegalMoves() []M

	// Play returns the successor state reached by the given move. It is
	// only called with moves returned by LegalMoves.
	Play(move M) S

	// Evaluate scores this state from the given player's perspective,
	// higher is better. Terminal states should map to the game's own
	// best/worst values. Evaluations must be zero-sum: a state worth v
	// to one player is worth -v to their opponent, which is what lets
	// the search negate values across turn changes.
	Evaluate(player string) F
}

// Child is one (move, successor) pair produced by Expand.
type Child[S any, M comparable] struct {
	Move  M
	State S
}

// Expand pairs every legal move of s with the state it leads to,
// preserving enumeration order.
func Expand[S State[S, M, F], M comparable, F Fitness](s S) []Child[S, M] {
	moves := s.LegalMoves()
	children := make([]Child[S, M], len(moves))
	for i, move := range moves {
		children[i] = Child[S, M]{Move: move, State: s.Play(move)}
	}
	return children
}
