package game

import "sync"

type dimension struct {
	rows, cols int
}

// geometry holds the clipped neighbor and corner lookups for one board
// dimension. Built at most once per dimension and read-only afterwards,
// so concurrent games of the same size share a single table.
type geometry struct {
	neighbors map[Point][]Point
	corners   map[Point][]Point
}

var (
	geometryMu    sync.Mutex
	geometryCache = map[dimension]*geometry{}
)

func geometryFor(rows, cols int) *geometry {
	geometryMu.Lock()
	defer geometryMu.Unlock()

	dim := dimension{rows, cols}
	if g, ok := geometryCache[dim]; ok {
		return g
	}

	g := &geometry{
		neighbors: make(map[Point][]Point, rows*cols),
		corners:   make(map[Point][]Point, rows*cols),
	}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			p := Point{Row: r, Col: c}
			g.neighbors[p] = clipToGrid(p.neighbors(), rows, cols)
			g.corners[p] = clipToGrid(p.corners(), rows, cols)
		}
	}
	geometryCache[dim] = g
	return g
}

func clipToGrid(points []Point, rows, cols int) []Point {
	clipped := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Row >= 1 && p.Row <= rows && p.Col >= 1 && p.Col <= cols {
			clipped = append(clipped, p)
		}
	}
	return clipped
}
