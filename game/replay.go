package game

import "fmt"

// FromMoves replays a sequence of columns from the empty board, Red moving first.
func FromMoves(rows, cols int, moves []int) (*Board, error) {
	b, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, column := range moves {
		next, err := b.ApplyMove(column)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		b = next
	}
	return b, nil
}
