// Package experiments runs batches of random self-play games to measure
// whether the Thue-Morse turn override balances the first-move advantage.
package experiments

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tmgo/agent"
	"tmgo/engine"
	"tmgo/experiments/metrics"
	"tmgo/game"
)

// RunFairnessExperiment plays cfg.NumGames games for every combination
// of board size and TM value (a TM=0 baseline is always prepended) and
// writes the per-game records to CSV. Games are independent, so they run
// in parallel across cfg.Workers goroutines.
func RunFairnessExperiment(cfg Config) error {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	tmValues := append([]int{0}, cfg.TMValues...)
	totalGames := len(cfg.BoardSizes) * len(tmValues) * cfg.NumGames
	log.Info().
		Str("name", cfg.Name).
		Ints("board_sizes", cfg.BoardSizes).
		Ints("tm_values", tmValues).
		Int("total_games", totalGames).
		Msg("starting fairness experiment")

	var mu sync.Mutex
	records := make([]metrics.GameRecord, 0, totalGames)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)

	id := 0
	baseSeed := uint64(time.Now().UnixNano())
	for _, boardSize := range cfg.BoardSizes {
		for _, tmValue := range tmValues {
			for i := 0; i < cfg.NumGames; i++ {
				id++
				gameID := id
				size, tm := boardSize, tmValue
				g.Go(func() error {
					record := playGame(gameID, size, tm, baseSeed+uint64(gameID)*2)
					mu.Lock()
					records = append(records, record)
					mu.Unlock()
					return nil
				})
			}
			log.Info().Int("board_size", boardSize).Int("tm_value", tmValue).Msg("scheduled game batch")
		}
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("experiment run failed: %w", err)
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteGameRecords(records)
	if err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}

	log.Info().Int("games", len(records)).Str("dir", writer.BaseDir()).Msg("completed fairness experiment")
	return nil
}

// playGame runs one random-bot self-play game without komi, matching the
// original harness: fairness is measured from raw area scores.
func playGame(id, boardSize, tmValue int, seed uint64) metrics.GameRecord {
	opts := []game.Option{game.WithoutKomi()}
	if tmValue > 0 {
		opts = append(opts, game.WithTurnOverride(tmValue))
	}
	state := game.NewGame(boardSize, opts...)

	e := engine.Local(
		agent.NewRandomAgent(seed),
		agent.NewRandomAgent(seed+1),
		state,
	)

	start := time.Now()
	final := e.Run()
	elapsed := time.Since(start)

	record := metrics.GameRecord{
		ID:        id,
		TMValue:   tmValue,
		BoardSize: boardSize,
		Winner:    final.Winner().String(),
		Komi:      final.Komi(),
		Moves:     engine.MoveCount(final),
		Duration:  elapsed,
	}
	if result, ok := final.Result(); ok {
		record.Margin = result.WinningMargin()
	}
	return record
}
