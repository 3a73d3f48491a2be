// Package engine runs complete in-process games between two agents.
package engine

import (
	"github.com/rs/zerolog/log"

	"tmgo/agent"
	"tmgo/game"
)

// DefaultMaxMoves caps runaway games. Eye-respecting bots terminate by
// double pass long before this.
const DefaultMaxMoves = 10000

// Engine drives a single game from a starting state until it terminates.
type Engine struct {
	State    *game.GameState
	MaxMoves int

	agents map[game.Player]agent.Agent
}

// Local returns an engine playing black against white from state.
func Local(black, white agent.Agent, state *game.GameState) *Engine {
	if black == nil || white == nil {
		panic("engine: both agents are required")
	}
	return &Engine{
		State:    state,
		MaxMoves: DefaultMaxMoves,
		agents: map[game.Player]agent.Agent{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run plays the game to completion and returns the final state. An agent
// returning an illegal move forfeits its turn with a pass.
func (e *Engine) Run() *game.GameState {
	board := e.State.Board()
	log.Debug().
		Int("rows", board.NumRows()).
		Int("cols", board.NumCols()).
		Float64("komi", e.State.Komi()).
		Msg("starting game")

	moves := 0
	for !e.State.IsOver() && moves < e.MaxMoves {
		mover := e.State.NextPlayer()
		move := e.agents[mover].SelectMove(e.State)

		next, err := e.State.ApplyMove(move)
		if err != nil {
			log.Warn().Err(err).Msgf("%s, passing instead", game.FormatMove(mover, move))
			next, err = e.State.ApplyMove(game.Pass())
			if err != nil {
				panic(err)
			}
		}
		e.State = next
		moves++
	}

	if winner := e.State.Winner(); winner != game.None {
		log.Debug().Stringer("winner", winner).Int("moves", moves).Msg("game over")
	} else {
		log.Warn().Int("moves", moves).Msg("game stopped at move cap without terminating")
	}
	return e.State
}

// MoveCount returns the number of moves leading to state.
func MoveCount(state *game.GameState) int {
	count := 0
	for s := state; s.Previous() != nil; s = s.Previous() {
		count++
	}
	return count
}
