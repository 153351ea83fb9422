package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPieceReach checks the movement geometry of a non-pawn piece, including
// path clearance for sliders.
func canPieceReach(occ Occupancy, p *chess.Piece, to chess.Position) bool {
	from := p.Position()
	colDiff := abs(to.Col() - from.Col())
	rowDiff := abs(to.Row() - from.Row())

	switch p.Kind() {
	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		return slides(occ, from, to, false, true)

	case chess.Rook:
		return slides(occ, from, to, true, false)

	case chess.Queen:
		return slides(occ, from, to, true, true)

	case chess.King:
		return colDiff <= 1 && rowDiff <= 1 && colDiff+rowDiff > 0
	}

	return false
}
