package game

// Group is a maximal chain of same-colored stones together with its
// liberties. Groups are immutable: every operation returns a new value,
// so board copies and what-if simulations can share them freely without
// one mutating the other.
type Group struct {
	Color     Player
	stones    map[Point]struct{}
	liberties map[Point]struct{}
}

// NewGroup builds a group from explicit stone and liberty sets.
func NewGroup(color Player, stones, liberties []Point) *Group {
	g := &Group{
		Color:     color,
		stones:    make(map[Point]struct{}, len(stones)),
		liberties: make(map[Point]struct{}, len(liberties)),
	}
	for _, p := range stones {
		g.stones[p] = struct{}{}
	}
	for _, p := range liberties {
		g.liberties[p] = struct{}{}
	}
	return g
}

// NumStones returns the number of stones in the group.
func (g *Group) NumStones() int {
	return len(g.stones)
}

// NumLiberties returns the number of distinct liberties.
func (g *Group) NumLiberties() int {
	return len(g.liberties)
}

// Stones returns the group's stones in unspecified order.
func (g *Group) Stones() []Point {
	points := make([]Point, 0, len(g.stones))
	for p := range g.stones {
		points = append(points, p)
	}
	return points
}

// Liberties returns the group's liberties in unspecified order.
func (g *Group) Liberties() []Point {
	points := make([]Point, 0, len(g.liberties))
	for p := range g.liberties {
		points = append(points, p)
	}
	return points
}

// HasLiberty reports whether p is a liberty of the group.
func (g *Group) HasLiberty(p Point) bool {
	_, ok := g.liberties[p]
	return ok
}

// WithoutLiberty returns a copy of the group with p removed from its
// liberties.
func (g *Group) WithoutLiberty(p Point) *Group {
	liberties := make(map[Point]struct{}, len(g.liberties))
	for l := range g.liberties {
		if l != p {
			liberties[l] = struct{}{}
		}
	}
	return &Group{Color: g.Color, stones: g.stones, liberties: liberties}
}

// WithLiberty returns a copy of the group with p added to its liberties.
func (g *Group) WithLiberty(p Point) *Group {
	liberties := make(map[Point]struct{}, len(g.liberties)+1)
	for l := range g.liberties {
		liberties[l] = struct{}{}
	}
	liberties[p] = struct{}{}
	return &Group{Color: g.Color, stones: g.stones, liberties: liberties}
}

// MergedWith unions two same-colored groups. The merged liberties exclude
// every point occupied by the combined stones. Merging different colors
// is a caller bug and panics.
func (g *Group) MergedWith(other *Group) *Group {
	if other.Color != g.Color {
		panic("game: cannot merge groups of different colors")
	}
	stones := make(map[Point]struct{}, len(g.stones)+len(other.stones))
	for p := range g.stones {
		stones[p] = struct{}{}
	}
	for p := range other.stones {
		stones[p] = struct{}{}
	}
	liberties := make(map[Point]struct{}, len(g.liberties)+len(other.liberties))
	for l := range g.liberties {
		liberties[l] = struct{}{}
	}
	for l := range other.liberties {
		liberties[l] = struct{}{}
	}
	for p := range stones {
		delete(liberties, p)
	}
	return &Group{Color: g.Color, stones: stones, liberties: liberties}
}
