package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board owns every piece of a game. Pieces are added during setup and never
// removed: a capture only flags the piece. A square index mirrors the piece
// positions so occupancy lookups do not scan the piece list.
type Board struct {
	// All pieces in setup order, captured ones included.
	pieces []*Piece

	// The active occupant of each square, indexed [col][row].
	squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Place adds a new piece to the board during setup. It fails with
// ErrInvalidArgument if the square is already occupied or the kind/colour
// is unknown.
func (b *Board) Place(kind Kind, colour Colour, pos Position) (*Piece, error) {
	if kind < Pawn || kind >= NumKinds {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "unknown piece kind %d", int(kind))
	}
	if colour != White && colour != Black {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "unknown colour %d", int(colour))
	}
	if occupant := b.PieceAt(pos); occupant != nil {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "%s already occupied by %s", pos, occupant)
	}
	p := &Piece{kind: kind, colour: colour, position: pos}
	b.pieces = append(b.pieces, p)
	b.squares[pos.col][pos.row] = p
	return p, nil
}

// Pieces returns all pieces in setup order, including captured ones.
// The slice is a copy; the pieces are shared with the board.
func (b *Board) Pieces() []*Piece {
	pieces := make([]*Piece, len(b.pieces))
	copy(pieces, b.pieces)
	return pieces
}

// PieceAt returns the active piece on pos, or nil if the square is empty.
func (b *Board) PieceAt(pos Position) *Piece {
	return b.squares[pos.col][pos.row]
}

// PiecesOf returns the active pieces of the given colour in setup order.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var pieces []*Piece
	for _, p := range b.pieces {
		if p.Active() && p.colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// King returns the active king of the given colour. A missing king means the
// board is corrupt and is reported as ErrInvariantViolation.
func (b *Board) King(colour Colour) (*Piece, error) {
	for _, p := range b.pieces {
		if p.Active() && p.Is(colour, King) {
			return p, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrInvariantViolation, "no %s king on the board", colour)
}

// Move relocates p to the given square permanently, capturing any piece
// standing there. It performs no legality checks. The captured piece, if
// any, is returned.
func (b *Board) Move(p *Piece, to Position) *Piece {
	return b.relocate(p, to)
}

// ForceMove relocates p to the given square unconditionally, marking any
// occupant captured, and returns a function that restores both pieces.
// It exists for check simulation: every call must be paired with the undo,
// typically via defer.
func (b *Board) ForceMove(p *Piece, to Position) (undo func()) {
	from := p.position
	victim := b.relocate(p, to)
	return func() {
		b.squares[to.col][to.row] = victim
		b.squares[from.col][from.row] = p
		p.position = from
		if victim != nil {
			victim.captured = false
		}
	}
}

// relocate moves p to the given square and captures the occupant.
func (b *Board) relocate(p *Piece, to Position) *Piece {
	from := p.position
	victim := b.squares[to.col][to.row]
	if victim == p {
		return nil
	}
	if victim != nil {
		victim.captured = true
	}
	b.squares[from.col][from.row] = nil
	b.squares[to.col][to.row] = p
	p.position = to
	return victim
}

// Copy creates a deep copy of the board. Pieces in the copy are new values
// in the same order as the original.
func (b *Board) Copy() *Board {
	newBoard := &Board{pieces: make([]*Piece, len(b.pieces))}
	for i, p := range b.pieces {
		cp := *p
		newBoard.pieces[i] = &cp
		if cp.Active() {
			newBoard.squares[cp.position.col][cp.position.row] = &cp
		}
	}
	return newBoard
}

// PieceState is the mutable state of one piece, captured for comparison or
// restoration.
type PieceState struct {
	Kind     Kind
	Colour   Colour
	Position Position
	Captured bool
}

// BoardState captures all mutable board state for save/restore operations.
type BoardState struct {
	Pieces []PieceState
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	state := BoardState{Pieces: make([]PieceState, len(b.pieces))}
	for i, p := range b.pieces {
		state.Pieces[i] = PieceState{
			Kind:     p.kind,
			Colour:   p.colour,
			Position: p.position,
			Captured: p.captured,
		}
	}
	return state
}

// RestoreState restores the board to a previously saved state. The state
// must come from this board; a state with a different piece count is
// rejected with ErrInvalidArgument.
func (b *Board) RestoreState(s BoardState) error {
	if len(s.Pieces) != len(b.pieces) {
		return errors.Wrapf(errors.ErrInvalidArgument, "state has %d pieces, board has %d", len(s.Pieces), len(b.pieces))
	}
	b.squares = [BoardSize][BoardSize]*Piece{}
	for i, p := range b.pieces {
		p.position = s.Pieces[i].Position
		p.captured = s.Pieces[i].Captured
		if !p.captured {
			b.squares[p.position.col][p.position.row] = p
		}
	}
	return nil
}
