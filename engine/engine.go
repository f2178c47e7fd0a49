// Package engine runs local games between agents over any game
// implementing the game.State contract.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gambit/game"
	"gambit/searcher"
)

// MaxMoves aborts games that fail to reach a terminal position.
const MaxMoves = 1000

// An Agent picks a move for the positions it is asked about.
type Agent[S game.State[S, M, F], M comparable, F game.Fitness] interface {
	FindMove(state S) (M, error)
}

// SearchAgent adapts a Searcher to the Agent interface with a fixed
// per-move budget: an exhaustive depth when Depth is set, otherwise a
// wall-clock duration.
type SearchAgent[S game.State[S, M, F], M comparable, F game.Fitness] struct {
	Searcher *searcher.Searcher[S, M, F]
	Depth    int
	Duration time.Duration
}

func (a SearchAgent[S, M, F]) FindMove(state S) (M, error) {
	var result searcher.Result[M, F]
	var err error
	if a.Depth > 0 {
		result, err = a.Searcher.SearchComplete(state, a.Depth)
	} else {
		result, err = a.Searcher.SearchTimeBounded(state, a.Duration)
	}
	return result.Move, err
}

// Engine pairs each player name with the agent playing it.
type Engine[S game.State[S, M, F], M comparable, F game.Fitness] struct {
	state   S
	players []string
	agents  map[string]Agent[S, M, F]
}

// Local builds an engine for a game starting at state. players[i] is
// played by agents[i].
func Local[S game.State[S, M, F], M comparable, F game.Fitness](state S, players []string, agents []Agent[S, M, F]) *Engine[S, M, F] {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) < 2 {
		panic("need at least two players")
	}

	byPlayer := make(map[string]Agent[S, M, F], len(agents))
	for i, player := range players {
		byPlayer[player] = agents[i]
	}
	return &Engine[S, M, F]{state: state, players: players, agents: byPlayer}
}

// Run plays the game to its end and returns the winner's name, or ""
// for a draw, along with the number of moves played.
func (e *Engine[S, M, F]) Run() (string, int, error) {
	log.Info().Str("player", e.state.Player()).Msg("game starting")

	moves := 0
	for len(e.state.LegalMoves()) > 0 {
		if moves >= MaxMoves {
			return "", moves, fmt.Errorf("no terminal position after %d moves", moves)
		}

		player := e.state.Player()
		agent, ok := e.agents[player]
		if !ok {
			return "", moves, fmt.Errorf("no agent for player %q", player)
		}

		move, err := agent.FindMove(e.state)
		if err != nil {
			return "", moves, fmt.Errorf("agent for %q failed: %w", player, err)
		}
		e.state = e.state.Play(move)
		moves++

		log.Debug().Str("player", player).Int("move", moves).Msg("played move")
	}

	winner := e.winner()
	log.Info().Str("winner", winner).Int("moves", moves).Msg("game over")
	return winner, moves, nil
}

// winner is the player with the strictly best terminal evaluation; a
// tie at the top is a draw.
func (e *Engine[S, M, F]) winner() string {
	best := e.players[0]
	bestValue := e.state.Evaluate(best)
	tied := false
	for _, player := range e.players[1:] {
		value := e.state.Evaluate(player)
		switch {
		case bestValue < value:
			best, bestValue = player, value
			tied = false
		case bestValue == value:
			tied = true
		}
	}
	if tied {
		return ""
	}
	return best
}
