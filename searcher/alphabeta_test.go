package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gambit/gametree"
)

// minimaxValue is the unpruned reference: the value of node from
// rootPlayer's perspective, searching depth plies below it.
func minimaxValue(node *gametree.Tree, depth int, rootPlayer string) int {
	if len(node.Children) == 0 || depth == 0 {
		return node.Evaluate(rootPlayer)
	}
	best := 0
	for i, child := range node.Children {
		v := minimaxValue(child, depth-1, rootPlayer)
		if i == 0 ||
			(node.Mover == rootPlayer && best < v) ||
			(node.Mover != rootPlayer && v < best) {
			best = v
		}
	}
	return best
}

// minimaxBest picks the root move by the same tie-break rule as the
// searcher: first move attaining the maximal value wins.
func minimaxBest(root *gametree.Tree, depth int) (move int, value int) {
	for i, child := range root.Children {
		v := minimaxValue(child, depth-1, root.Mover)
		if i == 0 || value < v {
			move, value = i, v
		}
	}
	return move, value
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		tree := gametree.Random(seed, 80)
		if len(tree.Children) == 0 {
			continue
		}
		wantMove, wantValue := minimaxBest(tree, 6)

		s := New[*gametree.Tree, int, int]()
		got, err := s.SearchComplete(tree, 6)

		require.NoError(t, err)
		require.Equal(t, wantValue, got.Value, "seed %d: pruning changed the root value", seed)
		require.Equal(t, wantMove, got.Move, "seed %d: pruning changed the selected move", seed)
	}
}

func TestAlphaBetaDepthLimits(t *testing.T) {
	// Two moves: one immediately worth 7 but losing 5 points a ply
	// later, one worth 5 that improves to 8. A single ply prefers the
	// first, two plies prefer the second.
	tree := &gametree.Tree{
		Mover: gametree.MaxPlayer,
		Children: []*gametree.Tree{
			{Mover: gametree.MinPlayer, Fitness: 7, Children: []*gametree.Tree{
				{Mover: gametree.MaxPlayer, Fitness: 4},
				{Mover: gametree.MaxPlayer, Fitness: 2},
			}},
			{Mover: gametree.MinPlayer, Fitness: 5, Children: []*gametree.Tree{
				{Mover: gametree.MaxPlayer, Fitness: 8},
				{Mover: gametree.MaxPlayer, Fitness: 9},
			}},
		},
	}
	s := New[*gametree.Tree, int, int]()

	shallow, err := s.SearchComplete(tree, 1)
	require.NoError(t, err)
	require.Equal(t, 0, shallow.Move)
	require.Equal(t, 7, shallow.Value)

	deep, err := s.SearchComplete(tree, 2)
	require.NoError(t, err)
	require.Equal(t, 1, deep.Move)
	require.Equal(t, 8, deep.Value)
}

func TestSearchBelowTerminalPositions(t *testing.T) {
	// A terminal child must short-circuit to its evaluation no matter
	// how much depth remains.
	tree := &gametree.Tree{
		Mover: gametree.MaxPlayer,
		Children: []*gametree.Tree{
			{Mover: gametree.MinPlayer, Fitness: 3},
			{Mover: gametree.MinPlayer, Fitness: 9},
		},
	}
	s := New[*gametree.Tree, int, int]()

	got, err := s.SearchComplete(tree, 40)

	require.NoError(t, err)
	require.Equal(t, 1, got.Move)
	require.Equal(t, 9, got.Value)
}

func TestSequentialDeterminism(t *testing.T) {
	tree := gametree.Random(7, 200)
	s := New[*gametree.Tree, int, int]()

	first, err := s.SearchComplete(tree, 5)
	require.NoError(t, err)
	second, err := s.SearchComplete(tree, 5)
	require.NoError(t, err)

	require.Equal(t, first.Move, second.Move, "identical invocations should select the identical move")
	require.Equal(t, first.Value, second.Value)
}

func TestTieBreakByEnumerationOrder(t *testing.T) {
	tree := &gametree.Tree{
		Mover: gametree.MaxPlayer,
		Children: []*gametree.Tree{
			{Mover: gametree.MinPlayer, Fitness: 5},
			{Mover: gametree.MinPlayer, Fitness: 5},
			{Mover: gametree.MinPlayer, Fitness: 5},
		},
	}
	s := New[*gametree.Tree, int, int]()

	got, err := s.SearchComplete(tree, 3)

	require.NoError(t, err)
	require.Equal(t, 0, got.Move, "first-seen move should win evaluation ties")
}
