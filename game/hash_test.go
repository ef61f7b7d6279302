package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestColumnHash(t *testing.T) {
	t.Run("perfect over every column of a 6-row board", func(t *testing.T) {
		const rows = 6
		seen := map[uint64]bool{}
		colors := [2]CellState{Yellow, Red}

		for height := 0; height <= rows; height++ {
			for mask := 0; mask < 1<<height; mask++ {
				column := make([]CellState, rows)
				for row := 0; row < height; row++ {
					column[row] = colors[(mask>>row)&1]
				}

				hash := ColumnHash(column, height)

				require.False(t, seen[hash], "Hash collision for mask %b at height %d", mask, height)
				require.Less(t, hash, radixBase(rows), "Column hash should be a single radix digit")
				seen[hash] = true
			}
		}

		require.Len(t, seen, 127, "Expected 2^(R+1)-1 unique column hashes")
	})

	t.Run("digit count grows with rows", func(t *testing.T) {
		for rows := 1; rows <= 10; rows++ {
			seen := map[uint64]bool{}
			for height := 0; height <= rows; height++ {
				for mask := 0; mask < 1<<height; mask++ {
					column := make([]CellState, rows)
					for row := 0; row < height; row++ {
						column[row] = Yellow
						if mask&(1<<row) != 0 {
							column[row] = Red
						}
					}
					seen[ColumnHash(column, height)] = true
				}
			}
			require.Len(t, seen, (1<<(rows+1))-1, "Rows=%d should yield 2^(R+1)-1 hashes", rows)
		}
	})

	t.Run("ignores cells above the height", func(t *testing.T) {
		column := []CellState{Red, Red, Red}
		require.Equal(t, uint64(1+1), ColumnHash(column, 1), "Only the bottom disc should count")
		require.Equal(t, uint64(0), ColumnHash(column, 0))
	})

	t.Run("clamps heights outside the column", func(t *testing.T) {
		column := []CellState{Red, Yellow}

		require.Equal(t, uint64(0), ColumnHash(nil, -1), "Negative heights should read no cells")
		require.Equal(t, uint64(0), ColumnHash(column, -5))
		require.Equal(t, ColumnHash(column, 2), ColumnHash(column, 9), "Heights past the column should stop at its top")
		require.Equal(t, uint64(0), ColumnHash(nil, 3), "An empty slice has no cells to read")
	})
}

func TestBoardHash(t *testing.T) {
	const base = 127
	pow := func(n int) uint64 {
		p := uint64(1)
		for i := 0; i < n; i++ {
			p *= base
		}
		return p
	}

	t.Run("most significant column first", func(t *testing.T) {
		// A single red disc has column hash 1 (bit) + 1 (offset)
		require.Equal(t, 2*pow(6), mustPlay(t, 0).Hash())
		require.Equal(t, uint64(2), mustPlay(t, 6).Hash())
		// Yellow on its own has column hash 0 + 1
		require.Equal(t, 2*pow(6)+1, mustPlay(t, 0, 6).Hash())
	})

	t.Run("mirrored positions hash differently", func(t *testing.T) {
		left := mustPlay(t, 0, 1)
		right := mustPlay(t, 6, 5)

		require.NotEqual(t, left.Hash(), right.Hash())
		require.False(t, left.Equal(right))
	})

	t.Run("deterministic across independently built boards", func(t *testing.T) {
		a := mustPlay(t, 3, 3, 2, 4)
		b := mustPlay(t, 3, 3, 2, 4)

		require.Equal(t, a.Hash(), b.Hash())
		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), a.Hash())
	})

	t.Run("transpositions share a key", func(t *testing.T) {
		a := mustPlay(t, 0, 1, 2, 3)
		b := mustPlay(t, 2, 3, 0, 1)

		require.Equal(t, a.Hash(), b.Hash(), "Same contents reached in a different order should hash equal")
		require.True(t, a.Equal(b))
	})

	t.Run("same contents on different sizes are not equal", func(t *testing.T) {
		small, err := FromMoves(4, 4, []int{0})
		require.NoError(t, err)
		large := mustPlay(t, 0)

		require.False(t, small.Equal(large))
	})

	t.Run("incremental hash matches a full recomputation", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for game := 0; game < 100; game++ {
			b := NewStandardBoard()
			for !b.IsTerminal() {
				moves := b.LegalMoves()
				next, err := b.ApplyMove(moves[rng.Intn(len(moves))])
				require.NoError(t, err)
				require.Equal(t, computeBoardHash(next.geometry, next.cells, next.heights), next.Hash())
				b = next
			}
		}
	})

	t.Run("injective over random playouts", func(t *testing.T) {
		rng := rand.New(rand.NewSource(23))
		seen := map[uint64]string{}
		for game := 0; game < 500; game++ {
			b := NewStandardBoard()
			for !b.IsTerminal() {
				moves := b.LegalMoves()
				next, err := b.ApplyMove(moves[rng.Intn(len(moves))])
				require.NoError(t, err)
				b = next

				layout := contents(b)
				if previous, ok := seen[b.Hash()]; ok {
					require.Equal(t, previous, layout, "Distinct boards should not share hash %d", b.Hash())
				}
				seen[b.Hash()] = layout
			}
		}
	})

	t.Run("largest board keys stay below 2^64", func(t *testing.T) {
		b, err := NewBoard(6, 9)
		require.NoError(t, err)
		for _, column := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8} {
			b, err = b.ApplyMove(column)
			require.NoError(t, err)
		}
		require.Equal(t, computeBoardHash(b.geometry, b.cells, b.heights), b.Hash())
	})

	t.Run("a full red 6x9 grid hashes to the largest key", func(t *testing.T) {
		g, err := newGeometry(6, 9)
		require.NoError(t, err)
		cells := make([]CellState, 6*9)
		for i := range cells {
			cells[i] = Red
		}
		heights := []int{6, 6, 6, 6, 6, 6, 6, 6, 6}

		// base^9 - 1 = sum of (base-1) * base^k, every digit at its maximum
		require.Equal(t, pow(9)-1, computeBoardHash(g, cells, heights), "Top of the key range should not wrap")
		require.Greater(t, pow(9), pow(8), "base^9 itself should fit in 64 bits")
	})
}

// contents renders a board column by column, bottom to top.
func contents(b *Board) string {
	var sb strings.Builder
	for c := 0; c < b.Cols(); c++ {
		for r := 0; r < b.Rows(); r++ {
			cell, ok := b.CellAt(c, r)
			switch {
			case !ok:
				sb.WriteByte('.')
			case cell == Red:
				sb.WriteByte('R')
			default:
				sb.WriteByte('Y')
			}
		}
		sb.WriteByte('|')
	}
	return sb.String()
}
