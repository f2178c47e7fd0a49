// Package tictactoe is a three-in-a-row adapter for the searcher.
package tictactoe

import (
	"fmt"
	"strings"
)

const (
	PlayerX = "X"
	PlayerO = "O"
)

// Win and Loss are the evaluation sentinels for a decided game. They
// leave ample headroom for negation.
const (
	Win  = 1 << 20
	Loss = -Win
)

// Move marks the cell to claim.
type Move struct {
	Row, Col int
}

// State is an immutable 3x3 board. The zero value is not usable; start
// from New.
type State struct {
	cells [9]byte // 0 empty, otherwise 'X' or 'O'
	turn  byte
}

// New returns an empty board with X to move.
func New() State {
	return State{turn: 'X'}
}

func (s State) Player() string {
	return string(s.turn)
}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Winner returns the player holding a full line, if any.
func (s State) Winner() (string, bool) {
	for _, line := range lines {
		c := s.cells[line[0]]
		if c != 0 && c == s.cells[line[1]] && c == s.cells[line[2]] {
			return string(c), true
		}
	}
	return "", false
}

// LegalMoves returns the free cells in row-major order. A decided or
// full board has no moves.
func (s State) LegalMoves() []Move {
	if _, won := s.Winner(); won {
		return nil
	}
	var moves []Move
	for i, c := range s.cells {
		if c == 0 {
			moves = append(moves, Move{Row: i / 3, Col: i % 3})
		}
	}
	return moves
}

func (s State) Play(move Move) State {
	i := move.Row*3 + move.Col
	if move.Row < 0 || move.Row > 2 || move.Col < 0 || move.Col > 2 || s.cells[i] != 0 {
		panic(fmt.Sprintf("illegal move %+v on board %q", move, s.String()))
	}
	s.cells[i] = s.turn
	if s.turn == 'X' {
		s.turn = 'O'
	} else {
		s.turn = 'X'
	}
	return s
}

// Evaluate scores the board for the given player: the win/loss
// sentinels once decided, otherwise the difference in lines still open
// to each side.
func (s State) Evaluate(player string) int {
	if winner, won := s.Winner(); won {
		if winner == player {
			return Win
		}
		return Loss
	}

	mine := byte(player[0])
	score := 0
	for _, line := range lines {
		open, theirs := true, true
		for _, i := range line {
			switch s.cells[i] {
			case 0:
			case mine:
				theirs = false
			default:
				open = false
			}
		}
		if open {
			score++
		}
		if theirs {
			score--
		}
	}
	return score
}

func (s State) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c := s.cells[row*3+col]
			if c == 0 {
				c = '.'
			}
			b.WriteByte(c)
		}
		if row < 2 {
			b.WriteByte('/')
		}
	}
	return b.String()
}
