package agent

import "tmgo/game"

// Strategy decides when a wrapped agent should stop playing moves of its
// own and pass or resign instead.
type Strategy interface {
	ShouldPass(state *game.GameState) bool
	ShouldResign(state *game.GameState) bool
}

// PassWhenOpponentPasses answers an opponent's pass with a pass, ending
// the game by the double-pass rule.
type PassWhenOpponentPasses struct{}

func (PassWhenOpponentPasses) ShouldPass(state *game.GameState) bool {
	last, ok := state.LastMove()
	return ok && last.IsPass
}

func (PassWhenOpponentPasses) ShouldResign(state *game.GameState) bool {
	return false
}

// ResignLargeMargin resigns once the game has run past CutoffMove moves
// and the mover trails by at least Margin points under area scoring. It
// also answers a pass with a pass.
type ResignLargeMargin struct {
	CutoffMove int
	Margin     float64

	movesSeen int
}

// NewResignLargeMargin returns the strategy with the conventional
// thresholds: resign after move 160 when at least 90 points behind.
func NewResignLargeMargin() *ResignLargeMargin {
	return &ResignLargeMargin{CutoffMove: 160, Margin: 90}
}

func (s *ResignLargeMargin) ShouldPass(state *game.GameState) bool {
	last, ok := state.LastMove()
	return ok && last.IsPass
}

func (s *ResignLargeMargin) ShouldResign(state *game.GameState) bool {
	s.movesSeen++
	if s.movesSeen < s.CutoffMove {
		return false
	}
	result := game.ComputeGameResult(state, state.Komi())
	return result.Winner() != state.NextPlayer() && result.WinningMargin() >= s.Margin
}

// TerminationAgent wraps another agent with a termination strategy: the
// strategy's pass/resign decisions take precedence over the wrapped
// agent's move.
type TerminationAgent struct {
	agent    Agent
	strategy Strategy
}

// NewTerminationAgent wraps a with strategy. A nil strategy never passes
// or resigns.
func NewTerminationAgent(a Agent, strategy Strategy) *TerminationAgent {
	if strategy == nil {
		strategy = neverTerminate{}
	}
	return &TerminationAgent{agent: a, strategy: strategy}
}

func (t *TerminationAgent) SelectMove(state *game.GameState) game.Move {
	if t.strategy.ShouldPass(state) {
		return game.Pass()
	}
	if t.strategy.ShouldResign(state) {
		return game.Resign()
	}
	return t.agent.SelectMove(state)
}

type neverTerminate struct{}

func (neverTerminate) ShouldPass(*game.GameState) bool   { return false }
func (neverTerminate) ShouldResign(*game.GameState) bool { return false }
