package game

import "errors"

var (
	// ErrColumnOutOfBounds indicates the requested column is not on the board
	ErrColumnOutOfBounds = errors.New("column index is out of bounds")

	// ErrColumnFull indicates the requested column is at max capacity
	ErrColumnFull = errors.New("column is at max capacity")

	// ErrGameNotInProgress indicates a move was requested on a won or drawn board
	ErrGameNotInProgress = errors.New("game is not in progress")

	// ErrInvalidDimensions indicates a board size whose positions cannot all be keyed in 64 bits
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)
