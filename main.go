package main

import (
	"fmt"
	"time"

	"gambit/engine"
	"gambit/experiments"
	"gambit/searcher"
	"gambit/tictactoe"
)

func main() {
	runDemoGame()
	experiments.RunThroughput()
}

// runDemoGame plays a full three-in-a-row game between an exhaustive
// searcher and a time-bounded one. Perfect play should end in a draw.
func runDemoGame() {
	players := []string{tictactoe.PlayerX, tictactoe.PlayerO}
	agents := []engine.Agent[tictactoe.State, tictactoe.Move, int]{
		engine.SearchAgent[tictactoe.State, tictactoe.Move, int]{
			Searcher: searcher.New[tictactoe.State, tictactoe.Move, int](),
			Depth:    9,
		},
		engine.SearchAgent[tictactoe.State, tictactoe.Move, int]{
			Searcher: searcher.New[tictactoe.State, tictactoe.Move, int](searcher.WithParallelism(4)),
			Duration: 100 * time.Millisecond,
		},
	}

	e := engine.Local(tictactoe.New(), players, agents)
	winner, moves, err := e.Run()
	if err != nil {
		panic(fmt.Sprintf("demo game failed: %v", err))
	}
	if winner == "" {
		winner = "draw"
	}
	fmt.Printf("Demo game over after %d moves: %s\n", moves, winner)
}
