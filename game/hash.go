package game

import (
	"fmt"
	"math/bits"
)

// maxRows keeps 2^(rows+1) - 1 representable as a uint64 radix.
const maxRows = 62

// Dimensions is the fixed size of a board.
type Dimensions struct {
	Rows int
	Cols int
}

// geometry is shared read-only by every board derived from the same empty board.
type geometry struct {
	Dimensions
	base    uint64   // 2^(Rows+1) - 1
	weights []uint64 // weights[c] = base^(Cols-1-c), most significant column first
}

func newGeometry(rows, cols int) (*geometry, error) {
	if rows < 1 || cols < 1 || rows > maxRows {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	base := radixBase(rows)
	weights := make([]uint64, cols)
	power := uint64(1)
	for c := cols - 1; c >= 0; c-- {
		weights[c] = power
		// The largest key is base^cols - 1, so base^cols itself must not overflow
		hi, lo := bits.Mul64(power, base)
		if hi != 0 {
			return nil, fmt.Errorf("%w: %dx%d positions do not fit in 64 bits", ErrInvalidDimensions, rows, cols)
		}
		power = lo
	}

	return &geometry{
		Dimensions: Dimensions{Rows: rows, Cols: cols},
		base:       base,
		weights:    weights,
	}, nil
}

// radixBase is one more than the largest column hash of a column with the given rows.
func radixBase(rows int) uint64 {
	return uint64(1)<<(rows+1) - 1
}

// ColumnHash encodes the bottom height discs of a column, read bottom-to-top with Red = 1 and
// Yellow = 0, offset by 2^height - 1 so that columns of different heights never collide.
// For a column of R rows the result lies in [0, 2^(R+1) - 2]. height is clamped to
// [0, min(len(column), 62)], so only the cells actually present are read.
func ColumnHash(column []CellState, height int) uint64 {
	height = max(0, min(height, len(column), maxRows))
	var pattern uint64
	for row := 0; row < height; row++ {
		pattern |= column[row].Bit() << row
	}
	return pattern + (uint64(1)<<height - 1)
}

// computeBoardHash reads the column hashes as digits of a mixed-radix number.
func computeBoardHash(g *geometry, cells []CellState, heights []int) uint64 {
	var hash uint64
	for c := 0; c < g.Cols; c++ {
		hash += ColumnHash(g.column(cells, c), heights[c]) * g.weights[c]
	}
	return hash
}

// column returns the column-major slice of cells belonging to column c.
func (g *geometry) column(cells []CellState, c int) []CellState {
	return cells[c*g.Rows : (c+1)*g.Rows]
}
