package game

// Move is a play on a point, a pass, or a resignation. Exactly one of
// the three tags is set. Moves are comparable values.
type Move struct {
	Point    Point
	IsPlay   bool
	IsPass   bool
	IsResign bool
}

// Play returns a move placing a stone at p.
func Play(p Point) Move {
	return Move{Point: p, IsPlay: true}
}

// Pass returns a passing move.
func Pass() Move {
	return Move{IsPass: true}
}

// Resign returns a resigning move.
func Resign() Move {
	return Move{IsResign: true}
}

func (m Move) String() string {
	switch {
	case m.IsPass:
		return "pass"
	case m.IsResign:
		return "resign"
	default:
		return CoordsFromPoint(m.Point)
	}
}
