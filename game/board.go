package game

// Board is a grid of stone groups plus an incrementally maintained
// position hash. It knows nothing about turn order or legality beyond
// the mechanics of placement and capture; that lives in GameState.
type Board struct {
	rows int
	cols int
	grid map[Point]*Group
	hash uint64
	geo  *geometry
	zob  *zobristTable
}

// NewBoard returns an empty board. The neighbor, corner and hash code
// tables for the dimension are built on first use and shared by every
// board of the same size.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows: rows,
		cols: cols,
		grid: make(map[Point]*Group),
		hash: emptyBoardHash,
		geo:  geometryFor(rows, cols),
		zob:  zobristFor(rows, cols),
	}
}

func (b *Board) NumRows() int { return b.rows }
func (b *Board) NumCols() int { return b.cols }

// IsOnGrid reports whether p lies on the board.
func (b *Board) IsOnGrid(p Point) bool {
	return p.Row >= 1 && p.Row <= b.rows && p.Col >= 1 && p.Col <= b.cols
}

// Neighbors returns the on-grid orthogonal neighbors of p.
func (b *Board) Neighbors(p Point) []Point {
	return b.geo.neighbors[p]
}

// Corners returns the on-grid diagonal neighbors of p.
func (b *Board) Corners(p Point) []Point {
	return b.geo.corners[p]
}

// Get returns the color occupying p, or None if the point is empty.
func (b *Board) Get(p Point) Player {
	group, ok := b.grid[p]
	if !ok {
		return None
	}
	return group.Color
}

// GroupAt returns the group occupying p, or nil if the point is empty.
func (b *Board) GroupAt(p Point) *Group {
	return b.grid[p]
}

// ZobristHash returns the 64-bit fingerprint of the current stone
// configuration. It does not encode whose turn it is.
func (b *Board) ZobristHash() uint64 {
	return b.hash
}

// Copy returns an independent snapshot. The grid map is copied; the
// groups it references are immutable and shared.
func (b *Board) Copy() *Board {
	grid := make(map[Point]*Group, len(b.grid))
	for p, g := range b.grid {
		grid[p] = g
	}
	return &Board{
		rows: b.rows,
		cols: b.cols,
		grid: grid,
		hash: b.hash,
		geo:  b.geo,
		zob:  b.zob,
	}
}

// PlaceStone puts a stone of the given color on an empty point, merging
// it with adjacent friendly groups and capturing any adjacent enemy
// group left without liberties. Placing on an occupied or off-grid point
// is a caller bug and panics; legality is checked upstream.
func (b *Board) PlaceStone(player Player, point Point) {
	if !b.IsOnGrid(point) {
		panic("game: placing stone off the grid")
	}
	if _, occupied := b.grid[point]; occupied {
		panic("game: placing stone on an occupied point")
	}

	var adjacentSameColor []*Group
	var adjacentOppositeColor []*Group
	var liberties []Point
	for _, neighbor := range b.geo.neighbors[point] {
		neighborGroup, ok := b.grid[neighbor]
		switch {
		case !ok:
			liberties = append(liberties, neighbor)
		case neighborGroup.Color == player:
			if !containsGroup(adjacentSameColor, neighborGroup) {
				adjacentSameColor = append(adjacentSameColor, neighborGroup)
			}
		default:
			if !containsGroup(adjacentOppositeColor, neighborGroup) {
				adjacentOppositeColor = append(adjacentOppositeColor, neighborGroup)
			}
		}
	}

	newGroup := NewGroup(player, []Point{point}, liberties)
	for _, sameColor := range adjacentSameColor {
		newGroup = newGroup.MergedWith(sameColor)
	}
	b.replaceGroup(newGroup)
	b.hash ^= b.zob.code(point, None)
	b.hash ^= b.zob.code(point, player)

	for _, oppositeColor := range adjacentOppositeColor {
		replacement := oppositeColor.WithoutLiberty(point)
		if replacement.NumLiberties() > 0 {
			b.replaceGroup(replacement)
		} else {
			b.removeGroup(oppositeColor)
		}
	}
}

// IsSelfCapture reports whether playing at point would leave the placed
// group with zero liberties while capturing nothing. Read-only.
func (b *Board) IsSelfCapture(player Player, point Point) bool {
	var friendlyGroups []*Group
	for _, neighbor := range b.geo.neighbors[point] {
		neighborGroup, ok := b.grid[neighbor]
		switch {
		case !ok:
			return false
		case neighborGroup.Color == player:
			friendlyGroups = append(friendlyGroups, neighborGroup)
		default:
			if neighborGroup.NumLiberties() == 1 {
				// This play captures, so it cannot be suicide.
				return false
			}
		}
	}
	for _, friendly := range friendlyGroups {
		if friendly.NumLiberties() != 1 {
			return false
		}
	}
	return true
}

// WillCapture reports whether playing at point would remove at least one
// adjacent enemy group. Used as a cheap pre-filter for ko checks.
func (b *Board) WillCapture(player Player, point Point) bool {
	for _, neighbor := range b.geo.neighbors[point] {
		neighborGroup, ok := b.grid[neighbor]
		if !ok || neighborGroup.Color == player {
			continue
		}
		if neighborGroup.NumLiberties() == 1 {
			return true
		}
	}
	return false
}

// replaceGroup points every cell the group occupies at the group.
func (b *Board) replaceGroup(group *Group) {
	for p := range group.stones {
		b.grid[p] = group
	}
}

// removeGroup takes a captured group off the board, restoring the freed
// point as a liberty to every neighboring group and folding each removal
// into the hash.
func (b *Board) removeGroup(group *Group) {
	for p := range group.stones {
		for _, neighbor := range b.geo.neighbors[p] {
			neighborGroup, ok := b.grid[neighbor]
			if !ok || neighborGroup == group {
				continue
			}
			b.replaceGroup(neighborGroup.WithLiberty(p))
		}
		delete(b.grid, p)
		b.hash ^= b.zob.code(p, group.Color)
		b.hash ^= b.zob.code(p, None)
	}
}

func containsGroup(groups []*Group, g *Group) bool {
	for _, existing := range groups {
		if existing == g {
			return true
		}
	}
	return false
}
