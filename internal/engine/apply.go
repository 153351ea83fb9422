package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveResult is the outcome of a move attempt. Only Accepted changes the board.
type MoveResult int

const (
	Accepted MoveResult = iota
	RejectedNoPiece
	RejectedCaptured
	RejectedWrongColour
	RejectedIllegal
	RejectedKingInCheck
)

// String returns a short human-readable reason.
func (r MoveResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedNoPiece:
		return "no piece on the source square"
	case RejectedCaptured:
		return "piece has been captured"
	case RejectedWrongColour:
		return "piece belongs to the other player"
	case RejectedIllegal:
		return "piece cannot move there"
	case RejectedKingInCheck:
		return "move would leave the king in check"
	}
	return "unknown result"
}

// Accepted reports whether the move was accepted.
func (r MoveResult) Accepted() bool {
	return r == Accepted
}

// CheckMove validates a move by side without applying it. A move is
// accepted when the piece belongs to side, the move is legal for the piece
// type, and the mover's king is not in check afterwards. Any move that
// leaves the own king attacked is rejected, not only one that would end in
// checkmate.
//
// The error is non-nil only for a corrupt board (ErrInvariantViolation).
func CheckMove(b *chess.Board, side chess.Colour, p *chess.Piece, to chess.Position) (MoveResult, error) {
	switch {
	case p == nil:
		return RejectedNoPiece, nil
	case p.Captured():
		return RejectedCaptured, nil
	case p.Colour() != side:
		return RejectedWrongColour, nil
	case !IsValidMove(b, p, to):
		return RejectedIllegal, nil
	}

	safe, err := leavesKingSafe(b, p, to)
	if err != nil {
		return RejectedKingInCheck, err
	}
	if !safe {
		return RejectedKingInCheck, nil
	}
	return Accepted, nil
}

// AttemptMove validates a move with CheckMove and applies it to the board
// when accepted. Rejected moves leave the board untouched.
func AttemptMove(b *chess.Board, side chess.Colour, p *chess.Piece, to chess.Position) (MoveResult, error) {
	result, err := CheckMove(b, side, p, to)
	if err != nil || !result.Accepted() {
		return result, err
	}
	b.Move(p, to)
	return Accepted, nil
}
