package player

import (
	"connect4/game"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func wonBoard(t *testing.T) *game.Board {
	t.Helper()
	b, err := game.FromMoves(game.StandardRows, game.StandardCols, []int{0, 1, 0, 1, 0, 1, 0})
	require.NoError(t, err)
	return b
}

func TestRandom(t *testing.T) {
	t.Run("only plays legal columns", func(t *testing.T) {
		p := NewRandom("random", 1)
		b, err := game.FromMoves(game.StandardRows, game.StandardCols, []int{0, 0, 0, 0, 0, 0})
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			column, err := p.NextMove(context.Background(), b)
			require.NoError(t, err)
			require.Contains(t, b.LegalMoves(), column, "Random should never pick the full column")
		}
	})

	t.Run("same seed gives the same sequence", func(t *testing.T) {
		a := NewRandom("a", 42)
		b := NewRandom("b", 42)
		board := game.NewStandardBoard()

		for i := 0; i < 20; i++ {
			x, err := a.NextMove(context.Background(), board)
			require.NoError(t, err)
			y, err := b.NextMove(context.Background(), board)
			require.NoError(t, err)
			require.Equal(t, x, y, "Pick %d should match", i)
		}
	})
}

func TestLeftmost(t *testing.T) {
	p := NewLeftmost("lefty")
	b, err := game.FromMoves(game.StandardRows, game.StandardCols, []int{0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	column, err := p.NextMove(context.Background(), b)

	require.NoError(t, err)
	require.Equal(t, 1, column, "Leftmost should skip the full column")
}

func TestScripted(t *testing.T) {
	p := NewScripted("script", 3, 9, 4)
	b := game.NewStandardBoard()

	for _, expected := range []int{3, 9, 4} {
		column, err := p.NextMove(context.Background(), b)
		require.NoError(t, err)
		require.Equal(t, expected, column, "Scripted should replay columns verbatim")
	}

	_, err := p.NextMove(context.Background(), b)
	require.ErrorIs(t, err, ErrScriptExhausted)
}

func TestFaulty(t *testing.T) {
	p := NewFaulty("broken")

	_, err := p.NextMove(context.Background(), game.NewStandardBoard())

	require.Error(t, err)
	require.ErrorIs(t, err, errDeliberateFault)
}

func TestPlayersRefuse(t *testing.T) {
	players := []Player{
		NewRandom("random", 1),
		NewLeftmost("lefty"),
		NewScripted("script", 0),
		NewFaulty("broken"),
	}

	t.Run("terminal boards", func(t *testing.T) {
		b := wonBoard(t)
		for _, p := range players {
			_, err := p.NextMove(context.Background(), b)
			require.ErrorIs(t, err, ErrNoLegalMoves, "%s should have nothing to play", p.Name())
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		for _, p := range players {
			_, err := p.NextMove(ctx, game.NewStandardBoard())
			require.ErrorIs(t, err, context.Canceled, "%s should respect cancellation", p.Name())
		}
	})
}

func TestLabel(t *testing.T) {
	require.Equal(t, "lefty by connect4", Label(NewLeftmost("lefty")))
}
