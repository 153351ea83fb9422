package chess

import "fmt"

// Piece is a single chess piece. Kind and colour are fixed for the piece's
// life; position and the captured flag change only through Board methods.
type Piece struct {
	kind     Kind
	colour   Colour
	position Position
	captured bool
}

// Kind returns the piece type.
func (p *Piece) Kind() Kind { return p.kind }

// Colour returns the piece colour.
func (p *Piece) Colour() Colour { return p.colour }

// Position returns the square the piece stands on, or stood on when it was
// captured.
func (p *Piece) Position() Position { return p.position }

// Captured reports whether the piece has been taken off the board.
func (p *Piece) Captured() bool { return p.captured }

// Active reports whether the piece is still on the board.
func (p *Piece) Active() bool { return !p.captured }

// Is reports whether the piece has the given colour and kind.
func (p *Piece) Is(colour Colour, kind Kind) bool {
	return p.colour == colour && p.kind == kind
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	letter := p.kind.Letter()
	if p.colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

var (
	whiteSymbols = []string{"♙", "♘", "♗", "♖", "♕", "♔"}
	blackSymbols = []string{"♟", "♞", "♝", "♜", "♛", "♚"}
)

// Symbol returns the Unicode chess glyph for the piece.
func (p *Piece) Symbol() string {
	if p.colour == White {
		return whiteSymbols[p.kind]
	}
	return blackSymbols[p.kind]
}

// String returns a description such as "White Rook on a1".
func (p *Piece) String() string {
	if p.captured {
		return fmt.Sprintf("%s %s (captured)", p.colour, p.kind)
	}
	return fmt.Sprintf("%s %s on %s", p.colour, p.kind, p.position)
}
