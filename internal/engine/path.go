package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Occupancy answers which piece, if any, stands on a square. *chess.Board
// implements it. Movement rules take it as an argument instead of pieces
// holding a reference to their board.
type Occupancy interface {
	PieceAt(pos chess.Position) *chess.Piece
}

// lineDirection returns the unit step from one square towards another and
// whether the two squares share a rank or file (straight) or a diagonal.
func lineDirection(from, to chess.Position) (dc, dr int, straight, diagonal bool) {
	colDiff := to.Col() - from.Col()
	rowDiff := to.Row() - from.Row()
	if colDiff == 0 && rowDiff == 0 {
		return 0, 0, false, false
	}
	straight = colDiff == 0 || rowDiff == 0
	diagonal = abs(colDiff) == abs(rowDiff)
	return sign(colDiff), sign(rowDiff), straight, diagonal
}

// isPathClear walks from one square towards another one step (dc, dr) at a
// time and reports whether every square strictly between them is empty.
// It is the sliding strategy shared by rooks, bishops and queens.
func isPathClear(occ Occupancy, from chess.Position, dc, dr int, to chess.Position) bool {
	sq, ok := from.Offset(dc, dr)
	for ok && sq != to {
		if occ.PieceAt(sq) != nil {
			return false
		}
		sq, ok = sq.Offset(dc, dr)
	}
	return ok
}

// slides reports whether a sliding piece on from reaches to along an
// unobstructed straight line (if straight is allowed) or diagonal (if
// diagonal is allowed).
func slides(occ Occupancy, from, to chess.Position, straight, diagonal bool) bool {
	dc, dr, isStraight, isDiagonal := lineDirection(from, to)
	if !(straight && isStraight) && !(diagonal && isDiagonal) {
		return false
	}
	return isPathClear(occ, from, dc, dr, to)
}
