package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Column letters for board coordinates. "I" is skipped by convention.
const colLetters = "ABCDEFGHJKLMNOPQRST"

// CoordsFromPoint renders a point in "D4" style: column letter then row
// number.
func CoordsFromPoint(p Point) string {
	return fmt.Sprintf("%c%d", colLetters[p.Col-1], p.Row)
}

// PointFromCoords parses a "D4" style coordinate.
func PointFromCoords(coords string) (Point, error) {
	coords = strings.ToUpper(strings.TrimSpace(coords))
	if len(coords) < 2 {
		return Point{}, fmt.Errorf("invalid coordinates %q", coords)
	}
	col := strings.IndexByte(colLetters, coords[0])
	if col < 0 {
		return Point{}, fmt.Errorf("invalid column in coordinates %q", coords)
	}
	row, err := strconv.Atoi(coords[1:])
	if err != nil {
		return Point{}, fmt.Errorf("invalid row in coordinates %q", coords)
	}
	return Point{Row: row, Col: col + 1}, nil
}

// FormatMove renders a move for logs: "Black D4", "White passes".
func FormatMove(player Player, move Move) string {
	switch {
	case move.IsPass:
		return fmt.Sprintf("%v passes", player)
	case move.IsResign:
		return fmt.Sprintf("%v resigns", player)
	default:
		return fmt.Sprintf("%v %s", player, CoordsFromPoint(move.Point))
	}
}

// FormatBoard renders the board with the highest row on top and column
// letters underneath.
func FormatBoard(b *Board) string {
	var sb strings.Builder
	for row := b.NumRows(); row >= 1; row-- {
		if row <= 9 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(row))
		sb.WriteByte(' ')
		for col := 1; col <= b.NumCols(); col++ {
			switch b.Get(Point{Row: row, Col: col}) {
			case Black:
				sb.WriteString(" x ")
			case White:
				sb.WriteString(" o ")
			default:
				sb.WriteString(" . ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("    ")
	for col := 1; col <= b.NumCols(); col++ {
		if col > 1 {
			sb.WriteString("  ")
		}
		sb.WriteByte(colLetters[col-1])
	}
	return sb.String()
}
