package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// allSquares lists every square once, in a1..h8 order.
var allSquares = chess.AllPositions()
