package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Move is a source-destination square pair.
type Move struct {
	From chess.Position
	To   chess.Position
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return fmt.Sprintf("%s%s", m.From, m.To)
}

// CanPreventCheckmate reports whether the given colour has at least one move
// that is legal for its piece type and leaves its own king out of check.
// Every candidate is simulated on the board and reverted before the next
// one; the search stops at the first escape.
func CanPreventCheckmate(b *chess.Board, colour chess.Colour) (bool, error) {
	if _, err := b.King(colour); err != nil {
		return false, err
	}
	for _, p := range b.PiecesOf(colour) {
		for _, to := range allSquares {
			if !IsValidMove(b, p, to) {
				continue
			}
			safe, err := leavesKingSafe(b, p, to)
			if err != nil {
				return false, err
			}
			if safe {
				return true, nil
			}
		}
	}
	return false, nil
}

// LegalMoves returns every move the given colour may play, grouped by piece
// in board order and by destination in a1..h8 order.
func LegalMoves(b *chess.Board, colour chess.Colour) ([]Move, error) {
	if _, err := b.King(colour); err != nil {
		return nil, err
	}
	var moves []Move
	for _, p := range b.PiecesOf(colour) {
		pieceMoves, err := LegalMovesFrom(b, p)
		if err != nil {
			return nil, err
		}
		moves = append(moves, pieceMoves...)
	}
	return moves, nil
}

// LegalMovesFrom returns the legal moves of a single piece.
func LegalMovesFrom(b *chess.Board, p *chess.Piece) ([]Move, error) {
	if p == nil || p.Captured() {
		return nil, nil
	}
	var moves []Move
	for _, to := range allSquares {
		if !IsValidMove(b, p, to) {
			continue
		}
		safe, err := leavesKingSafe(b, p, to)
		if err != nil {
			return nil, err
		}
		if safe {
			moves = append(moves, Move{From: p.Position(), To: to})
		}
	}
	return moves, nil
}

// leavesKingSafe simulates moving p to the given square and reports whether
// the mover's king is out of check afterwards. Any piece on the destination
// is captured for the duration of the test. The board is always restored,
// even if the check test fails.
func leavesKingSafe(b *chess.Board, p *chess.Piece, to chess.Position) (bool, error) {
	undo := b.ForceMove(p, to)
	defer undo()

	inCheck, err := IsKingInCheck(b, p.Colour())
	if err != nil {
		return false, err
	}
	return !inCheck, nil
}
