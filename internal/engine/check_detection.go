package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsKingInCheck returns true if the given colour's king is attacked by any
// active enemy piece. A board without that king is corrupt and yields an
// error wrapping ErrInvariantViolation.
func IsKingInCheck(b *chess.Board, colour chess.Colour) (bool, error) {
	king, err := b.King(colour)
	if err != nil {
		return false, errors.Wrap(err, "check detection")
	}
	return SquareAttacked(b, king.Position(), colour.Opposite()), nil
}

// SquareAttacked returns true if the square is attacked by the given colour.
func SquareAttacked(b *chess.Board, sq chess.Position, byColour chess.Colour) bool {
	for _, p := range b.PiecesOf(byColour) {
		if CanAttack(b, p, sq) {
			return true
		}
	}
	return false
}

// Attackers returns the active pieces of the given colour that attack the square.
func Attackers(b *chess.Board, sq chess.Position, byColour chess.Colour) []*chess.Piece {
	var attackers []*chess.Piece
	for _, p := range b.PiecesOf(byColour) {
		if CanAttack(b, p, sq) {
			attackers = append(attackers, p)
		}
	}
	return attackers
}
