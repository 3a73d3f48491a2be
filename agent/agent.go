// Package agent provides move-selecting players for driving games:
// a fast random bot for self-play batches and termination wrappers that
// decide when to pass or resign.
package agent

import "tmgo/game"

// Agent selects a move for the player to act in the given state. The
// returned move must be legal; the engine falls back to a pass if it is
// not.
type Agent interface {
	SelectMove(state *game.GameState) game.Move
}
