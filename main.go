package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tmgo/agent"
	"tmgo/experiments"
	"tmgo/game"
)

func main() {
	boardSize := flag.Int("board-size", 9, "board size")
	tmValue := flag.Int("tm-value", 8, "Thue-Morse turn override limit, 0 to disable")
	configPath := flag.String("experiment", "", "run a fairness experiment from a YAML config instead of a demo game")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if *configPath != "" {
		cfg, err := experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment config")
		}
		err = experiments.RunFairnessExperiment(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	runDemoGame(*boardSize, *tmValue)
}

// runDemoGame plays the opening of a random-bot game move by move,
// printing the board after each move so the override schedule is visible.
func runDemoGame(boardSize, tmValue int) {
	opts := []game.Option{game.WithoutKomi()}
	if tmValue > 0 {
		opts = append(opts, game.WithTurnOverride(tmValue))
	}
	state := game.NewGame(boardSize, opts...)
	bots := map[game.Player]agent.Agent{
		game.Black: agent.NewRandomAgent(uint64(time.Now().UnixNano())),
		game.White: agent.NewRandomAgent(uint64(time.Now().UnixNano()) + 1),
	}

	fmt.Println(game.FormatBoard(state.Board()))
	for i := 0; i < tmValue+5 && !state.IsOver(); i++ {
		mover := state.NextPlayer()
		move := bots[mover].SelectMove(state)
		fmt.Println(game.FormatMove(mover, move))

		next, err := state.ApplyMove(move)
		if err != nil {
			log.Fatal().Err(err).Msg("bot played an illegal move")
		}
		state = next
		fmt.Println(game.FormatBoard(state.Board()))
	}
}
