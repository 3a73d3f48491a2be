package agent

import (
	"golang.org/x/exp/rand"

	"tmgo/game"
)

// IsPointAnEye reports whether point is a true eye for color: an empty
// point whose orthogonal neighbors are all that color and whose diagonal
// corners are friendly enough that the eye cannot be falsified. A bot
// that fills its own eyes kills its groups and never finishes a game.
func IsPointAnEye(b *game.Board, point game.Point, color game.Player) bool {
	if b.Get(point) != game.None {
		return false
	}
	for _, neighbor := range b.Neighbors(point) {
		if b.Get(neighbor) != color {
			return false
		}
	}

	friendlyCorners := 0
	onBoardCorners := 0
	for _, corner := range b.Corners(point) {
		onBoardCorners++
		if b.Get(corner) == color {
			friendlyCorners++
		}
	}
	offBoardCorners := 4 - onBoardCorners
	if offBoardCorners > 0 {
		// Edge or corner point: every on-board corner must be friendly.
		return offBoardCorners+friendlyCorners == 4
	}
	return friendlyCorners >= 3
}

// RandomAgent plays a uniformly random legal move, skipping plays that
// would fill its own eyes, and passes once nothing else remains. The
// candidate point list is cached per board dimension.
type RandomAgent struct {
	rng    *rand.Rand
	rows   int
	cols   int
	points []game.Point
}

// NewRandomAgent returns a random agent seeded with seed.
func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) SelectMove(state *game.GameState) game.Move {
	board := state.Board()
	if board.NumRows() != a.rows || board.NumCols() != a.cols {
		a.updateCache(board.NumRows(), board.NumCols())
	}

	for _, i := range a.rng.Perm(len(a.points)) {
		p := a.points[i]
		if state.IsValidMove(game.Play(p)) && !IsPointAnEye(board, p, state.NextPlayer()) {
			return game.Play(p)
		}
	}
	return game.Pass()
}

func (a *RandomAgent) updateCache(rows, cols int) {
	a.rows = rows
	a.cols = cols
	a.points = make([]game.Point, 0, rows*cols)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			a.points = append(a.points, game.Point{Row: r, Col: c})
		}
	}
}
