package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMoves(t *testing.T) {
	t.Run("empty sequence is the empty board", func(t *testing.T) {
		b, err := FromMoves(StandardRows, StandardCols, nil)

		require.NoError(t, err)
		require.True(t, b.Equal(NewStandardBoard()))
	})

	t.Run("replays in order", func(t *testing.T) {
		b, err := FromMoves(StandardRows, StandardCols, []int{3, 3, 4})

		require.NoError(t, err)
		require.Equal(t, []int{0, 0, 0, 2, 1, 0, 0}, b.ColumnHeights())
		cell, _ := b.CellAt(3, 1)
		require.Equal(t, Yellow, cell)
	})

	t.Run("reports the failing move", func(t *testing.T) {
		_, err := FromMoves(StandardRows, StandardCols, []int{0, 1, 9})

		require.ErrorIs(t, err, ErrColumnOutOfBounds)
		require.Contains(t, err.Error(), "move 2")
	})

	t.Run("stops after the game ends", func(t *testing.T) {
		_, err := FromMoves(StandardRows, StandardCols, []int{0, 1, 0, 1, 0, 1, 0, 1})

		require.ErrorIs(t, err, ErrGameNotInProgress)
		require.Contains(t, err.Error(), "move 7")
	})

	t.Run("rejects invalid dimensions", func(t *testing.T) {
		_, err := FromMoves(0, 0, []int{0})

		require.ErrorIs(t, err, ErrInvalidDimensions)
	})
}
