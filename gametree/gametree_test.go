package gametree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeContract(t *testing.T) {
	tree := &Tree{
		Mover:   MaxPlayer,
		Fitness: 1,
		Children: []*Tree{
			{Mover: MinPlayer, Fitness: 4},
			{Mover: MinPlayer, Fitness: -2},
		},
	}

	require.Equal(t, MaxPlayer, tree.Player())
	require.Equal(t, []int{0, 1}, tree.LegalMoves())
	require.Equal(t, tree.Children[1], tree.Play(1))
	require.Empty(t, tree.Children[0].LegalMoves(), "a node without children is terminal")
}

func TestEvaluatePerspective(t *testing.T) {
	node := &Tree{Mover: MinPlayer, Fitness: 6}

	require.Equal(t, 6, node.Evaluate(MaxPlayer))
	require.Equal(t, -6, node.Evaluate(MinPlayer), "the two perspectives are zero-sum")
}

func TestRandomIsDeterministic(t *testing.T) {
	first := Random(42, 150)
	second := Random(42, 150)
	other := Random(43, 150)

	require.Equal(t, first, second, "the same seed should rebuild the same tree")
	require.NotEqual(t, first, other)
	require.Equal(t, 151, first.Size())
}
