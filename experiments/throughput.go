// Package experiments measures how search throughput scales with the
// size of the root worker pool.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"gambit/experiments/metrics"
	"gambit/searcher"
	"gambit/tictactoe"
)

// RunThroughput sweeps worker-pool sizes over time-bounded searches of
// the empty three-in-a-row board and stores per-search records as CSV.
func RunThroughput() {
	const NumRounds = 5
	const Duration = 200 * time.Millisecond
	configs := []metrics.SweepConfig{
		{ID: 1, Workers: 1, Duration: Duration},
		{ID: 2, Workers: 2, Duration: Duration},
		{ID: 3, Workers: 4, Duration: Duration},
		{ID: 4, Workers: 8, Duration: Duration},
		{ID: 5, Workers: 8, Duration: Duration, SharedBound: true},
	}

	writer, err := metrics.NewWriter()
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteSweepConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store sweep configs: %v", err))
	}

	log.Info().Msg("starting throughput experiment...")

	records := []metrics.SearchRecord{}
	for _, config := range configs {
		log.Info().Msgf("sweeping config %+v...", config)

		for round := 1; round <= NumRounds; round++ {
			record := runSearch(config, round)
			records = append(records, record)
		}
	}

	// Aggregate node throughput per config
	byConfig := lo.GroupBy(records, func(r metrics.SearchRecord) int { return r.Config })
	for _, config := range configs {
		rs := byConfig[config.ID]
		nodes := lo.SumBy(rs, func(r metrics.SearchRecord) int64 { return r.Nodes })
		elapsed := lo.SumBy(rs, func(r metrics.SearchRecord) time.Duration { return r.Duration })
		if elapsed <= 0 {
			continue
		}
		log.Info().
			Int("workers", config.Workers).
			Bool("shared_bound", config.SharedBound).
			Float64("nodes_per_second", float64(nodes)/elapsed.Seconds()).
			Msg("config throughput")
	}

	err = writer.WriteSearchRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to write search records: %v", err))
	}
	log.Info().Msg("completed throughput experiment")
}

func runSearch(config metrics.SweepConfig, round int) metrics.SearchRecord {
	s := createSearcher(config)

	result, err := s.SearchTimeBounded(tictactoe.New(), config.Duration)
	if err != nil {
		panic(fmt.Sprintf("search failed: %v", err))
	}

	return metrics.SearchRecord{
		Config:   config.ID,
		Round:    round,
		Depth:    result.Depth,
		Nodes:    result.Nodes,
		Duration: result.Duration,
	}
}

func createSearcher(config metrics.SweepConfig) *searcher.Searcher[tictactoe.State, tictactoe.Move, int] {
	options := []searcher.Option{
		searcher.WithParallelism(config.Workers),
		searcher.WithMetrics(),
	}
	if config.SharedBound {
		options = append(options, searcher.WithSharedBound())
	}
	return searcher.New[tictactoe.State, tictactoe.Move, int](options...)
}
