// Package encoder maps board points to flat row-major indices, the
// exchange format ML consumers use for move probabilities.
package encoder

import (
	"fmt"

	"tmgo/game"
)

// PointEncoder converts between board points and flat indices for one
// board dimension. Index 0 is the top-left point (row 1, col 1) and
// indices advance in row-major order.
type PointEncoder struct {
	rows int
	cols int
}

// New returns an encoder for a rows x cols board.
func New(rows, cols int) *PointEncoder {
	return &PointEncoder{rows: rows, cols: cols}
}

// NewSquare returns an encoder for a square board.
func NewSquare(boardSize int) *PointEncoder {
	return New(boardSize, boardSize)
}

// EncodePoint returns the flat index of p.
func (e *PointEncoder) EncodePoint(p game.Point) int {
	return e.cols*(p.Row-1) + (p.Col - 1)
}

// DecodePointIndex returns the point for a flat index. Out-of-range
// indices are a caller bug and panic.
func (e *PointEncoder) DecodePointIndex(index int) game.Point {
	if index < 0 || index >= e.NumPoints() {
		panic(fmt.Sprintf("encoder: point index %d out of range for %dx%d board", index, e.rows, e.cols))
	}
	return game.Point{Row: index/e.cols + 1, Col: index%e.cols + 1}
}

// NumPoints returns the number of points on the board.
func (e *PointEncoder) NumPoints() int {
	return e.rows * e.cols
}
