package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tmgo/agent"
	"tmgo/game"
)

// stuckAgent always plays the same point, legal or not.
type stuckAgent struct {
	point game.Point
}

func (s stuckAgent) SelectMove(*game.GameState) game.Move {
	return game.Play(s.point)
}

func TestLocalEngineRunsToCompletion(t *testing.T) {
	state := game.NewGame(5, game.WithoutKomi())
	e := Local(agent.NewRandomAgent(1), agent.NewRandomAgent(2), state)

	final := e.Run()

	require.True(t, final.IsOver(), "random self-play must terminate by double pass")
	require.NotEqual(t, game.None, final.Winner())
	require.Greater(t, MoveCount(final), 0)
}

func TestLocalEngineWithTurnOverride(t *testing.T) {
	state := game.NewGame(5, game.WithoutKomi(), game.WithTurnOverride(4))
	e := Local(agent.NewRandomAgent(3), agent.NewRandomAgent(4), state)

	final := e.Run()

	require.True(t, final.IsOver())
}

func TestLocalEngineIllegalMoveFallsBackToPass(t *testing.T) {
	corner := game.Point{Row: 1, Col: 1}
	state := game.NewGame(5, game.WithoutKomi())
	e := Local(stuckAgent{point: corner}, stuckAgent{point: corner}, state)

	final := e.Run()

	// Black takes the corner; both agents then repeat the occupied point,
	// forfeit with passes, and the game ends.
	require.True(t, final.IsOver())
	require.Equal(t, game.Black, final.Board().Get(corner))
	require.Equal(t, 3, MoveCount(final))
}

func TestLocalRequiresAgents(t *testing.T) {
	require.Panics(t, func() { Local(nil, nil, game.NewGame(5)) })
}
