package game

import "fmt"

// Territory tallies how every point of a board scores under area rules:
// stones and enclosed empty points per color, plus neutral dame points
// that border both colors or none.
type Territory struct {
	NumBlackStones    int
	NumWhiteStones    int
	NumBlackTerritory int
	NumWhiteTerritory int
	NumDame           int
	DamePoints        []Point
}

// EvaluateTerritory partitions the empty points of a board into maximal
// connected regions. A region bordered by exactly one color counts as
// that color's territory; anything else is dame. All stones on the board
// are assumed alive.
func EvaluateTerritory(b *Board) *Territory {
	t := &Territory{}
	visited := make(map[Point]bool)
	for r := 1; r <= b.NumRows(); r++ {
		for c := 1; c <= b.NumCols(); c++ {
			p := Point{Row: r, Col: c}
			if visited[p] {
				continue
			}
			switch b.Get(p) {
			case Black:
				t.NumBlackStones++
				visited[p] = true
			case White:
				t.NumWhiteStones++
				visited[p] = true
			default:
				region, borders := collectRegion(b, p, visited)
				switch {
				case len(borders) == 1 && borders[Black]:
					t.NumBlackTerritory += len(region)
				case len(borders) == 1 && borders[White]:
					t.NumWhiteTerritory += len(region)
				default:
					t.NumDame += len(region)
					t.DamePoints = append(t.DamePoints, region...)
				}
			}
		}
	}
	return t
}

// collectRegion flood-fills the empty region containing start, returning
// its points and the set of stone colors bordering it. The fill is
// iterative so a fully empty 19x19 board cannot exhaust the stack.
func collectRegion(b *Board, start Point, visited map[Point]bool) ([]Point, map[Player]bool) {
	var region []Point
	borders := make(map[Player]bool)
	stack := []Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[p] {
			continue
		}
		visited[p] = true
		region = append(region, p)
		for _, neighbor := range b.Neighbors(p) {
			if occupant := b.Get(neighbor); occupant == None {
				if !visited[neighbor] {
					stack = append(stack, neighbor)
				}
			} else {
				borders[occupant] = true
			}
		}
	}
	return region, borders
}

// GameResult is the area-scored outcome of a finished game: stones plus
// territory per color, with komi added to white's score.
type GameResult struct {
	Black int
	White int
	Komi  float64
}

// ComputeGameResult scores a board position under area rules with the
// given komi.
func ComputeGameResult(state *GameState, komi float64) GameResult {
	territory := EvaluateTerritory(state.Board())
	return GameResult{
		Black: territory.NumBlackStones + territory.NumBlackTerritory,
		White: territory.NumWhiteStones + territory.NumWhiteTerritory,
		Komi:  komi,
	}
}

// Winner returns Black only if black's score strictly exceeds white's
// score plus komi; ties go to White.
func (r GameResult) Winner() Player {
	if float64(r.Black) > float64(r.White)+r.Komi {
		return Black
	}
	return White
}

// WinningMargin returns the absolute score difference after komi.
func (r GameResult) WinningMargin() float64 {
	white := float64(r.White) + r.Komi
	margin := float64(r.Black) - white
	if margin < 0 {
		return -margin
	}
	return margin
}

// String formats the result in the conventional "B+2.5" / "W+5.5" form.
func (r GameResult) String() string {
	white := float64(r.White) + r.Komi
	if float64(r.Black) > white {
		return fmt.Sprintf("B+%.1f", float64(r.Black)-white)
	}
	return fmt.Sprintf("W+%.1f", white-float64(r.Black))
}
