package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoords(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, coords := range []string{"A1", "D4", "J9", "T19"} {
			p, err := PointFromCoords(coords)
			require.NoError(t, err)
			require.Equal(t, coords, CoordsFromPoint(p))
		}
	})

	t.Run("I column is skipped", func(t *testing.T) {
		p, err := PointFromCoords("J4")
		require.NoError(t, err)
		require.Equal(t, Point{Row: 4, Col: 9}, p)
	})

	t.Run("lower case and whitespace", func(t *testing.T) {
		p, err := PointFromCoords(" d4 ")
		require.NoError(t, err)
		require.Equal(t, Point{Row: 4, Col: 4}, p)
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, coords := range []string{"", "D", "I4", "Dx", "4D"} {
			_, err := PointFromCoords(coords)
			require.Error(t, err, "coords %q", coords)
		}
	})
}

func TestFormatMove(t *testing.T) {
	require.Equal(t, "Black D4", FormatMove(Black, Play(Point{4, 4})))
	require.Equal(t, "White passes", FormatMove(White, Pass()))
	require.Equal(t, "Black resigns", FormatMove(Black, Resign()))
}

func TestFormatBoard(t *testing.T) {
	b := NewBoard(3, 3)
	b.PlaceStone(Black, Point{1, 1})
	b.PlaceStone(White, Point{2, 2})

	want := " 3  .  .  . \n" +
		" 2  .  o  . \n" +
		" 1  x  .  . \n" +
		"    A  B  C"
	require.Equal(t, want, FormatBoard(b))
}
