package game

// Player identifies a stone color. The zero value None marks empty points
// and games without a winner yet.
type Player int

const (
	None Player = iota
	Black
	White
)

// Other returns the opposing color.
func (p Player) Other() Player {
	if p == Black {
		return White
	}
	return Black
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "None"
}

// Point is a 1-indexed board coordinate.
type Point struct {
	Row int
	Col int
}

// neighbors returns the four orthogonal neighbors, unclipped.
func (p Point) neighbors() []Point {
	return []Point{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	}
}

// corners returns the four diagonal neighbors, unclipped.
func (p Point) corners() []Point {
	return []Point{
		{p.Row - 1, p.Col - 1},
		{p.Row - 1, p.Col + 1},
		{p.Row + 1, p.Col - 1},
		{p.Row + 1, p.Col + 1},
	}
}
