package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gambit/searcher"
	"gambit/tictactoe"
)

func exhaustiveAgent(depth int) Agent[tictactoe.State, tictactoe.Move, int] {
	return SearchAgent[tictactoe.State, tictactoe.Move, int]{
		Searcher: searcher.New[tictactoe.State, tictactoe.Move, int](),
		Depth:    depth,
	}
}

func TestPerfectPlayDraws(t *testing.T) {
	players := []string{tictactoe.PlayerX, tictactoe.PlayerO}
	agents := []Agent[tictactoe.State, tictactoe.Move, int]{
		exhaustiveAgent(9),
		exhaustiveAgent(9),
	}

	e := Local(tictactoe.New(), players, agents)
	winner, moves, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, "", winner, "two perfect players should draw")
	require.Equal(t, 9, moves, "a drawn game fills the board")
}

func TestDeepSearchBeatsShallowSearch(t *testing.T) {
	players := []string{tictactoe.PlayerX, tictactoe.PlayerO}
	agents := []Agent[tictactoe.State, tictactoe.Move, int]{
		exhaustiveAgent(9),
		exhaustiveAgent(1),
	}

	e := Local(tictactoe.New(), players, agents)
	winner, _, err := e.Run()

	require.NoError(t, err)
	require.NotEqual(t, tictactoe.PlayerO, winner, "a one-ply player cannot beat an exhaustive one")
}

func TestLocalValidatesItsSetup(t *testing.T) {
	agents := []Agent[tictactoe.State, tictactoe.Move, int]{exhaustiveAgent(1)}

	require.Panics(t, func() {
		Local(tictactoe.New(), []string{tictactoe.PlayerX}, agents)
	}, "an engine needs at least two players")

	require.Panics(t, func() {
		Local(tictactoe.New(), []string{tictactoe.PlayerX, tictactoe.PlayerO}, agents)
	}, "players and agents must pair up")
}
