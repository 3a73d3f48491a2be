package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardGeometry(t *testing.T) {
	b := NewBoard(9, 9)

	require.ElementsMatch(t, []Point{{1, 2}, {2, 1}}, b.Neighbors(Point{1, 1}))
	require.ElementsMatch(t, []Point{{2, 2}}, b.Corners(Point{1, 1}))
	require.Len(t, b.Neighbors(Point{5, 5}), 4)
	require.Len(t, b.Corners(Point{5, 5}), 4)
	require.True(t, b.IsOnGrid(Point{9, 9}))
	require.False(t, b.IsOnGrid(Point{10, 9}))
	require.False(t, b.IsOnGrid(Point{0, 1}))
}

func TestBoardPlaceStoneMergesGroups(t *testing.T) {
	b := NewBoard(9, 9)
	b.PlaceStone(Black, Point{1, 1})
	b.PlaceStone(Black, Point{1, 3})

	require.NotSame(t, b.GroupAt(Point{1, 1}), b.GroupAt(Point{1, 3}))

	b.PlaceStone(Black, Point{1, 2})

	group := b.GroupAt(Point{1, 2})
	require.Same(t, group, b.GroupAt(Point{1, 1}))
	require.Same(t, group, b.GroupAt(Point{1, 3}))
	require.Equal(t, 3, group.NumStones())
	require.ElementsMatch(t,
		[]Point{{2, 1}, {2, 2}, {2, 3}, {1, 4}},
		group.Liberties())
}

func TestBoardCapture(t *testing.T) {
	b := NewBoard(9, 9)
	b.PlaceStone(White, Point{1, 1})
	b.PlaceStone(Black, Point{1, 2})

	require.True(t, b.WillCapture(Black, Point{2, 1}),
		"white corner stone is down to one liberty")
	require.False(t, b.WillCapture(White, Point{2, 1}))

	b.PlaceStone(Black, Point{2, 1})

	require.Equal(t, None, b.Get(Point{1, 1}), "captured stone should be removed")
	require.True(t, b.GroupAt(Point{1, 2}).HasLiberty(Point{1, 1}),
		"capture should restore the freed point as a liberty")
	require.True(t, b.GroupAt(Point{2, 1}).HasLiberty(Point{1, 1}))

	// The position must be indistinguishable from never having had the
	// white stone at all.
	want := NewBoard(9, 9)
	want.PlaceStone(Black, Point{1, 2})
	want.PlaceStone(Black, Point{2, 1})
	require.Equal(t, want.ZobristHash(), b.ZobristHash())
}

func TestBoardCaptureRemovesWholeGroup(t *testing.T) {
	b := NewBoard(5, 5)
	// Two-stone white group on the edge, surrounded by black.
	b.PlaceStone(White, Point{1, 2})
	b.PlaceStone(White, Point{1, 3})
	b.PlaceStone(Black, Point{1, 1})
	b.PlaceStone(Black, Point{2, 2})
	b.PlaceStone(Black, Point{2, 3})

	b.PlaceStone(Black, Point{1, 4})

	require.Equal(t, None, b.Get(Point{1, 2}))
	require.Equal(t, None, b.Get(Point{1, 3}))
	require.True(t, b.GroupAt(Point{1, 1}).HasLiberty(Point{1, 2}))
	require.True(t, b.GroupAt(Point{2, 2}).HasLiberty(Point{1, 2}))
	require.True(t, b.GroupAt(Point{2, 3}).HasLiberty(Point{1, 3}))
	require.True(t, b.GroupAt(Point{1, 4}).HasLiberty(Point{1, 3}))
}

func TestBoardHashIsOrderIndependent(t *testing.T) {
	first := NewBoard(9, 9)
	first.PlaceStone(Black, Point{3, 3})
	first.PlaceStone(White, Point{5, 5})
	first.PlaceStone(Black, Point{3, 4})

	second := NewBoard(9, 9)
	second.PlaceStone(Black, Point{3, 4})
	second.PlaceStone(White, Point{5, 5})
	second.PlaceStone(Black, Point{3, 3})

	require.Equal(t, first.ZobristHash(), second.ZobristHash())
	require.NotEqual(t, NewBoard(9, 9).ZobristHash(), first.ZobristHash())
}

func TestBoardHashSharedAcrossInstances(t *testing.T) {
	first := NewBoard(19, 19)
	second := NewBoard(19, 19)
	first.PlaceStone(Black, Point{4, 4})
	second.PlaceStone(Black, Point{4, 4})

	require.Equal(t, first.ZobristHash(), second.ZobristHash(),
		"hash codes must be identical across engine instances of a board size")
}

func TestBoardIsSelfCapture(t *testing.T) {
	t.Run("surrounded corner point", func(t *testing.T) {
		b := NewBoard(9, 9)
		b.PlaceStone(Black, Point{1, 2})
		b.PlaceStone(Black, Point{2, 1})

		require.True(t, b.IsSelfCapture(White, Point{1, 1}))
		require.False(t, b.IsSelfCapture(Black, Point{1, 1}))
	})

	t.Run("capturing play is not self-capture", func(t *testing.T) {
		b := NewBoard(9, 9)
		b.PlaceStone(Black, Point{1, 2})
		b.PlaceStone(White, Point{1, 3})
		b.PlaceStone(White, Point{2, 2})
		b.PlaceStone(White, Point{2, 1})

		// Playing (1,1) would leave white with no liberties of its own
		// there, but it captures the black stone first.
		require.True(t, b.WillCapture(White, Point{1, 1}))
		require.False(t, b.IsSelfCapture(White, Point{1, 1}))
	})

	t.Run("filling the last liberty of a friendly group", func(t *testing.T) {
		b := NewBoard(9, 9)
		b.PlaceStone(Black, Point{1, 1})
		b.PlaceStone(White, Point{1, 2})
		b.PlaceStone(White, Point{2, 2})
		b.PlaceStone(White, Point{3, 1})

		require.True(t, b.IsSelfCapture(Black, Point{2, 1}))
	})

	t.Run("read-only", func(t *testing.T) {
		b := NewBoard(9, 9)
		b.PlaceStone(Black, Point{1, 2})
		b.PlaceStone(Black, Point{2, 1})
		before := b.ZobristHash()

		b.IsSelfCapture(White, Point{1, 1})

		require.Equal(t, before, b.ZobristHash())
		require.Equal(t, None, b.Get(Point{1, 1}))
	})
}

func TestBoardPlaceStonePanics(t *testing.T) {
	b := NewBoard(9, 9)
	b.PlaceStone(Black, Point{1, 1})

	require.Panics(t, func() { b.PlaceStone(White, Point{1, 1}) })
	require.Panics(t, func() { b.PlaceStone(White, Point{0, 4}) })
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewBoard(9, 9)
	b.PlaceStone(Black, Point{1, 1})

	c := b.Copy()
	c.PlaceStone(White, Point{5, 5})

	require.Equal(t, None, b.Get(Point{5, 5}))
	require.Equal(t, White, c.Get(Point{5, 5}))
	require.NotEqual(t, b.ZobristHash(), c.ZobristHash())
}
