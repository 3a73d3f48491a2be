// Package metrics defines the per-game records collected by fairness
// experiments and writes them out as CSV.
package metrics

import "time"

// GameRecord captures the outcome of one self-play game.
type GameRecord struct {
	ID        int
	TMValue   int // Thue-Morse override limit, 0 for plain alternation
	BoardSize int
	Winner    string
	Margin    float64
	Komi      float64
	Moves     int
	Duration  time.Duration
}
