// Package game implements the Connect-Four rules: an immutable board, legal moves, win and
// draw detection, and a perfect 64-bit position key for transposition tables.
package game

const (
	StandardRows  = 6
	StandardCols  = 7
	ConnectLength = 4 // Aligned discs needed to win
)
