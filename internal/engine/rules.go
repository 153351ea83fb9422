// Package engine implements the chess movement rules, check detection and
// the checkmate search on top of the types in package chess.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsValidMove reports whether moving p to the given square is legal for its
// kind alone. It does not consider whether the move leaves the mover's own
// king in check; AttemptMove layers that on top.
func IsValidMove(occ Occupancy, p *chess.Piece, to chess.Position) bool {
	if p == nil || p.Captured() || p.Position() == to {
		return false
	}
	if !isDestinationAvailable(occ, p, to) {
		return false
	}
	if p.Kind() == chess.Pawn {
		return canPawnMove(occ, p, to)
	}
	return canPieceReach(occ, p, to)
}

// CanAttack reports whether p threatens the given square from where it
// stands. The occupant of the target, and whose turn it is, do not matter.
func CanAttack(occ Occupancy, p *chess.Piece, to chess.Position) bool {
	if p == nil || p.Captured() || p.Position() == to {
		return false
	}
	if p.Kind() == chess.Pawn {
		return isPawnAttack(p, to)
	}
	return canPieceReach(occ, p, to)
}

// MoveIfValid relocates p when IsValidMove holds and reports whether it did.
// Like IsValidMove it ignores king safety; players' moves go through
// AttemptMove instead.
func MoveIfValid(b *chess.Board, p *chess.Piece, to chess.Position) bool {
	if !IsValidMove(b, p, to) {
		return false
	}
	b.Move(p, to)
	return true
}

// isDestinationAvailable reports whether the target is empty or holds an
// enemy piece other than the king. Kings are checked, never captured.
func isDestinationAvailable(occ Occupancy, p *chess.Piece, to chess.Position) bool {
	occupant := occ.PieceAt(to)
	if occupant == nil {
		return true
	}
	return occupant.Colour() != p.Colour() && occupant.Kind() != chess.King
}
