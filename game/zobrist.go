package game

import (
	"sync"

	"golang.org/x/exp/rand"
)

// emptyBoardHash is the baseline fingerprint of a board with no stones,
// shared by all board sizes.
const emptyBoardHash uint64 = 3127802437738363466

// zobristTable maps every (point, occupant) pair of one board dimension to
// a fixed 64-bit code. Occupants are indexed by Player value: None, Black,
// White.
type zobristTable struct {
	codes map[Point][3]uint64
}

var (
	zobristMu    sync.Mutex
	zobristCache = map[dimension]*zobristTable{}
)

// zobristFor returns the shared code table for one board dimension. Codes
// are drawn from a generator seeded by the dimension alone, so every
// engine instance of a given size agrees on them and hashes from
// independent game trees remain comparable.
func zobristFor(rows, cols int) *zobristTable {
	zobristMu.Lock()
	defer zobristMu.Unlock()

	dim := dimension{rows, cols}
	if z, ok := zobristCache[dim]; ok {
		return z
	}

	rng := rand.New(rand.NewSource(uint64(rows)<<32 | uint64(cols)))
	z := &zobristTable{codes: make(map[Point][3]uint64, rows*cols)}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			z.codes[Point{Row: r, Col: c}] = [3]uint64{
				rng.Uint64(),
				rng.Uint64(),
				rng.Uint64(),
			}
		}
	}
	zobristCache[dim] = z
	return z
}

// code returns the hash code for a point occupied by occ, where None
// means the point is empty.
func (z *zobristTable) code(p Point, occ Player) uint64 {
	return z.codes[p][occ]
}
