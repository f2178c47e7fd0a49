// Package gametree provides an explicit in-memory game tree
// implementing the game.State contract. It exists to exercise the
// searcher against positions whose exact minimax value is known by
// construction.
package gametree

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

const (
	MaxPlayer = "max"
	MinPlayer = "min"
)

// Tree is one node of a game tree. A move is the index of a child;
// nodes without children are terminal. Fitness is always stored from
// MaxPlayer's perspective.
type Tree struct {
	Mover    string
	Fitness  int
	Children []*Tree
}

func (t *Tree) Player() string {
	return t.Mover
}

func (t *Tree) LegalMoves() []int {
	moves := make([]int, len(t.Children))
	for i := range moves {
		moves[i] = i
	}
	return moves
}

func (t *Tree) Play(move int) *Tree {
	return t.Children[move]
}

func (t *Tree) Evaluate(player string) int {
	if player == MaxPlayer {
		return t.Fitness
	}
	return -t.Fitness
}

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int {
	n := 1
	for _, child := range t.Children {
		n += child.Size()
	}
	return n
}

// Random builds a tree of the given size by attaching nodes with
// random movers and fitness values at random positions. The same seed
// always yields the same tree.
func Random(seed uint64, size int) *Tree {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	rng := frand.NewCustom(key[:], 1024, 12)

	root := &Tree{Mover: MaxPlayer}
	for i := 0; i < size; i++ {
		node := root
		for len(node.Children) > 0 && rng.Intn(len(node.Children)+1) != len(node.Children) {
			node = node.Children[rng.Intn(len(node.Children))]
		}
		mover := MinPlayer
		if rng.Intn(2) == 0 {
			mover = MaxPlayer
		}
		node.Children = append(node.Children, &Tree{
			Mover:   mover,
			Fitness: rng.Intn(21) - 10,
		})
	}
	return root
}
