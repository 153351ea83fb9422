// Package chess provides core chess types: colours, piece kinds,
// board coordinates, pieces and the board that owns them.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the pawn direction in rows).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Constants for algebraic notation.
const (
	ColBase = 'a'
	RowBase = '1'
)

// Position is a square on the board. Col 0 is the a-file and row 0 is the
// first rank. The zero value is a1. Positions are comparable with == and
// usable as map keys; every Position obtained from this package is on the
// board.
type Position struct {
	col int8
	row int8
}

// NewPosition returns the square at col, row. Both must be in [0,7].
func NewPosition(col, row int) (Position, error) {
	if !onBoard(col, row) {
		return Position{}, errors.Wrapf(errors.ErrInvalidArgument, "position (%d,%d) off the board", col, row)
	}
	return Position{col: int8(col), row: int8(row)}, nil
}

// MustPosition is like NewPosition but panics on an off-board coordinate.
// It is intended for constants and tests.
func MustPosition(col, row int) Position {
	p, err := NewPosition(col, row)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSquare parses algebraic notation such as "e4" (case-insensitive file).
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidArgument,
			Input:    s,
			Expected: "file letter and rank digit",
		}
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	col := int(file) - ColBase
	row := int(s[1]) - RowBase
	if !onBoard(col, row) {
		return Position{}, &errors.ParseError{
			Err:   errors.ErrInvalidArgument,
			Input: s,
			Got:   "square off the board",
		}
	}
	return Position{col: int8(col), row: int8(row)}, nil
}

// MustSquare is like ParseSquare but panics on malformed input.
func MustSquare(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Col returns the file index (0 = a).
func (p Position) Col() int { return int(p.col) }

// Row returns the rank index (0 = rank 1).
func (p Position) Row() int { return int(p.row) }

// Offset returns the square shifted by dc files and dr ranks, and whether
// that square is on the board.
func (p Position) Offset(dc, dr int) (Position, bool) {
	col, row := int(p.col)+dc, int(p.row)+dr
	if !onBoard(col, row) {
		return Position{}, false
	}
	return Position{col: int8(col), row: int8(row)}, true
}

// Equal reports whether p and o are the same square.
func (p Position) Equal(o Position) bool { return p == o }

// String returns the square in algebraic notation, e.g. "e4".
func (p Position) String() string {
	return fmt.Sprintf("%c%c", ColBase+int(p.col), RowBase+int(p.row))
}

// AllPositions returns the 64 squares in a1, b1, ..., h8 order.
func AllPositions() []Position {
	squares := make([]Position, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			squares = append(squares, Position{col: int8(col), row: int8(row)})
		}
	}
	return squares
}

func onBoard(col, row int) bool {
	return col >= 0 && col < BoardSize && row >= 0 && row < BoardSize
}
