package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status summarises the position from one colour's point of view.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Normal", "Check", "Checkmate", "Stalemate"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsCheckmate returns true if the colour is in check and no legal move
// removes the check. A colour that is not in check is never checkmated.
func IsCheckmate(b *chess.Board, colour chess.Colour) (bool, error) {
	inCheck, err := IsKingInCheck(b, colour)
	if err != nil || !inCheck {
		return false, err
	}
	canEscape, err := CanPreventCheckmate(b, colour)
	if err != nil {
		return false, err
	}
	return !canEscape, nil
}

// IsStalemate returns true if the colour is not in check but has no legal move.
func IsStalemate(b *chess.Board, colour chess.Colour) (bool, error) {
	inCheck, err := IsKingInCheck(b, colour)
	if err != nil || inCheck {
		return false, err
	}
	hasMove, err := CanPreventCheckmate(b, colour)
	if err != nil {
		return false, err
	}
	return !hasMove, nil
}

// Evaluate classifies the position for the given colour with a single
// legal-move search.
func Evaluate(b *chess.Board, colour chess.Colour) (Status, error) {
	inCheck, err := IsKingInCheck(b, colour)
	if err != nil {
		return Normal, err
	}
	hasMove, err := CanPreventCheckmate(b, colour)
	if err != nil {
		return Normal, err
	}

	return Classify(inCheck, hasMove), nil
}

// Classify names the status of a side given whether its king is attacked
// and whether it has any legal move.
func Classify(inCheck, hasMove bool) Status {
	switch {
	case inCheck && !hasMove:
		return Checkmate
	case inCheck:
		return Check
	case !hasMove:
		return Stalemate
	}
	return Normal
}
