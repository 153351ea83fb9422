package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnStartRow returns the row pawns of the given colour start on.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}

// canPawnMove checks pawn pushes and captures. En passant and promotion
// are not part of this rule set.
func canPawnMove(occ Occupancy, p *chess.Piece, to chess.Position) bool {
	from := p.Position()
	dir := p.Colour().Forward()
	colDiff := to.Col() - from.Col()
	rowDiff := to.Row() - from.Row()

	switch {
	case colDiff == 0 && rowDiff == dir:
		return occ.PieceAt(to) == nil

	case colDiff == 0 && rowDiff == 2*dir:
		if from.Row() != pawnStartRow(p.Colour()) {
			return false
		}
		mid, _ := from.Offset(0, dir)
		return occ.PieceAt(mid) == nil && occ.PieceAt(to) == nil

	case abs(colDiff) == 1 && rowDiff == dir:
		target := occ.PieceAt(to)
		return target != nil && target.Colour() != p.Colour()
	}

	return false
}

// isPawnAttack reports whether the square is diagonally in front of the pawn.
// A pawn never attacks the square straight ahead.
func isPawnAttack(p *chess.Piece, to chess.Position) bool {
	from := p.Position()
	return abs(to.Col()-from.Col()) == 1 && to.Row()-from.Row() == p.Colour().Forward()
}
