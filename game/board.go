package game

import "fmt"

// Board is an immutable Connect-Four position. Operations on a Board always return a new
// copy, so a Board may be shared freely between goroutines.
type Board struct {
	geometry *geometry
	cells    []CellState // column-major, row 0 is the bottom row
	heights  []int       // Occupied cells per column
	phase    Phase
	hash     uint64
}

// NewBoard returns the empty board with Red to move.
func NewBoard(rows, cols int) (*Board, error) {
	g, err := newGeometry(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Board{
		geometry: g,
		cells:    make([]CellState, rows*cols),
		heights:  make([]int, cols),
		phase:    InProgress{Player: Red},
		hash:     0,
	}, nil
}

// NewStandardBoard returns the empty 6x7 board.
func NewStandardBoard() *Board {
	b, err := NewBoard(StandardRows, StandardCols)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Dimensions() Dimensions {
	return b.geometry.Dimensions
}

func (b *Board) Rows() int {
	return b.geometry.Rows
}

func (b *Board) Cols() int {
	return b.geometry.Cols
}

// CellAt returns the disc at (column, row), or false for an empty or off-board cell.
func (b *Board) CellAt(column, row int) (CellState, bool) {
	if column < 0 || column >= b.Cols() || row < 0 || row >= b.Rows() {
		return empty, false
	}
	cell := b.cells[column*b.Rows()+row]
	return cell, cell != empty
}

// ColumnHeight returns the number of discs in column, or 0 for an off-board column.
func (b *Board) ColumnHeight(column int) int {
	if column < 0 || column >= b.Cols() {
		return 0
	}
	return b.heights[column]
}

// ColumnHeights returns a copy of the per-column heights.
func (b *Board) ColumnHeights() []int {
	heights := make([]int, len(b.heights))
	copy(heights, b.heights)
	return heights
}

// Hash returns the collision-free position key of the board.
func (b *Board) Hash() uint64 {
	return b.hash
}

func (b *Board) Phase() Phase {
	return b.phase
}

// PlayerToMove returns the colour to move, or false once the game is over.
func (b *Board) PlayerToMove() (CellState, bool) {
	if p, ok := b.phase.(InProgress); ok {
		return p.Player, true
	}
	return empty, false
}

// Winner returns the winning colour of a Victory board.
func (b *Board) Winner() (CellState, bool) {
	if v, ok := b.phase.(Victory); ok {
		return v.Winner, true
	}
	return empty, false
}

func (b *Board) IsDraw() bool {
	_, ok := b.phase.(Draw)
	return ok
}

func (b *Board) IsTerminal() bool {
	_, ok := b.phase.(InProgress)
	return !ok
}

// Equal reports whether both boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Dimensions() == other.Dimensions() && b.hash == other.hash
}

// LegalMoves returns the playable columns in ascending order. Terminal boards have none.
func (b *Board) LegalMoves() []int {
	if b.IsTerminal() {
		return []int{}
	}
	moves := make([]int, 0, b.Cols())
	for c, height := range b.heights {
		if height < b.Rows() {
			moves = append(moves, c)
		}
	}
	return moves
}

// ApplyMove drops the disc of the player to move into column and returns the resulting board,
// tagged InProgress, Victory or Draw. The receiver is left untouched.
func (b *Board) ApplyMove(column int) (*Board, error) {
	player, ok := b.PlayerToMove()
	if !ok {
		return nil, fmt.Errorf("%w: board is %s", ErrGameNotInProgress, b.phase)
	}
	if column < 0 || column >= b.Cols() {
		return nil, fmt.Errorf("%w: column %d on a board with %d columns", ErrColumnOutOfBounds, column, b.Cols())
	}
	row := b.heights[column]
	if row >= b.Rows() {
		return nil, fmt.Errorf("%w: column %d", ErrColumnFull, column)
	}

	g := b.geometry
	cells := make([]CellState, len(b.cells))
	copy(cells, b.cells)
	cells[column*g.Rows+row] = player

	heights := make([]int, len(b.heights))
	copy(heights, b.heights)
	heights[column]++

	// Only one column changed, so swap its digit instead of rehashing every column
	before := ColumnHash(g.column(b.cells, column), b.heights[column])
	after := ColumnHash(g.column(cells, column), heights[column])
	hash := b.hash + (after-before)*g.weights[column]

	next := &Board{
		geometry: g,
		cells:    cells,
		heights:  heights,
		hash:     hash,
	}

	switch {
	case next.connectsFour(column, row, player):
		next.phase = Victory{Winner: player}
	case isFull(heights, g.Rows):
		next.phase = Draw{}
	default:
		next.phase = InProgress{Player: player.Other()}
	}
	return next, nil
}

func isFull(heights []int, rows int) bool {
	for _, height := range heights {
		if height < rows {
			return false
		}
	}
	return true
}
