package game

import "errors"

var (
	// ErrGameOver is returned when a move is applied to a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrIllegalMove is returned when a move fails the legality check:
	// occupied point, self-capture, or superko violation. Callers in hot
	// loops are expected to filter with IsValidMove first and treat this
	// as "try another move".
	ErrIllegalMove = errors.New("illegal move")
)
