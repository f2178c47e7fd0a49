// Package chessbot adapts github.com/notnil/chess positions to the
// game.State contract with a simple material evaluation.
package chessbot

import (
	"fmt"

	"github.com/notnil/chess"
)

const (
	Win  = 1 << 20
	Loss = -Win
)

// State wraps an immutable chess position.
type State struct {
	pos *chess.Position
}

// New returns the standard starting position.
func New() State {
	return State{pos: chess.StartingPosition()}
}

// FromFEN builds a state from a FEN string.
func FromFEN(fen string) (State, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return State{}, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	return State{pos: chess.NewGame(option).Position()}, nil
}

func (s State) Player() string {
	return s.pos.Turn().Name()
}

func (s State) LegalMoves() []*chess.Move {
	return s.pos.ValidMoves()
}

func (s State) Play(move *chess.Move) State {
	return State{pos: s.pos.Update(move)}
}

var pieceValues = map[chess.PieceType]int{
	chess.Pawn:   10,
	chess.Knight: 30,
	chess.Bishop: 30,
	chess.Rook:   50,
	chess.Queen:  90,
	chess.King:   900,
}

// Evaluate scores the position for the given player: mate sentinels on
// decided positions, otherwise the material balance.
func (s State) Evaluate(player string) int {
	switch s.pos.Status() {
	case chess.Checkmate:
		if s.pos.Turn().Name() == player { // the side to move is mated
			return Loss
		}
		return Win
	case chess.Stalemate:
		return 0
	}

	score := 0
	for _, piece := range s.pos.Board().SquareMap() {
		value := pieceValues[piece.Type()]
		if piece.Color().Name() == player {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

func (s State) String() string {
	return s.pos.String()
}
