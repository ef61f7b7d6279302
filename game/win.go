package game

// axes are the (drow, dcol) steps of the four lines through a cell:
// horizontal, vertical, diagonal up and diagonal down.
var axes = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// connectsFour checks the lines through the disc just placed at (column, row). Earlier discs
// alone cannot form a new line, since the previous board had no winner.
func (b *Board) connectsFour(column, row int, player CellState) bool {
	for _, axis := range axes {
		dr, dc := axis[0], axis[1]
		count := 1
		count += b.countConsecutive(column, row, player, dr, dc)
		count += b.countConsecutive(column, row, player, -dr, -dc)
		if count >= ConnectLength {
			return true
		}
	}
	return false
}

// countConsecutive counts same-coloured discs stepping away from (column, row), stopping at
// the edge, an empty cell or an opponent disc.
func (b *Board) countConsecutive(column, row int, player CellState, dr, dc int) int {
	count := 0
	r, c := row+dr, column+dc
	for r >= 0 && r < b.Rows() && c >= 0 && c < b.Cols() {
		if b.cells[c*b.Rows()+r] != player {
			break
		}
		count++
		r += dr
		c += dc
	}
	return count
}
