package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// backRank is the piece order on the first and last ranks, a to h.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) (chess.Kind, bool) {
	switch c {
	case 'K', 'k':
		return chess.King, true
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'N', 'n':
		return chess.Knight, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'P', 'p':
		return chess.Pawn, true
	default:
		return 0, false
	}
}

// NewInitialBoard creates a board with the standard 32-piece starting
// position. Pieces are added White back rank, White pawns, Black pawns,
// Black back rank, each from the a-file to the h-file.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	place := func(kind chess.Kind, colour chess.Colour, col, row int) {
		// The starting squares are distinct and on the board.
		if _, err := board.Place(kind, colour, chess.MustPosition(col, row)); err != nil {
			panic(err)
		}
	}

	for col, kind := range backRank {
		place(kind, chess.White, col, 0)
	}
	for col := 0; col < chess.BoardSize; col++ {
		place(chess.Pawn, chess.White, col, 1)
	}
	for col := 0; col < chess.BoardSize; col++ {
		place(chess.Pawn, chess.Black, col, chess.BoardSize-2)
	}
	for col, kind := range backRank {
		place(kind, chess.Black, col, chess.BoardSize-1)
	}
	return board
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. Only the placement and side-to-move fields are used; the
// castling, en passant and clock fields are accepted and ignored. The
// position must contain exactly one king per colour, and the side that has
// just moved must not be left in check.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}
	if err := checkKings(board); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	// Otherwise the side to move could capture the king.
	inCheck, err := IsKingInCheck(board, toMove.Opposite())
	if err != nil {
		return nil, chess.White, err
	}
	if inCheck {
		return nil, chess.White, fmt.Errorf("%s is in check but %s is to move: %w", toMove.Opposite(), toMove, errors.ErrInvalidFEN)
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row := chess.BoardSize - 1
	col := 0
	parseErr := func(i int, expected, got string) error {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Column:   i + 1,
			Expected: expected,
			Got:      got,
		}
	}

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return parseErr(i, "8 squares per rank", fmt.Sprintf("%d", col))
			}
			row--
			col = 0
			if row < 0 {
				return parseErr(i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return parseErr(i, "8 squares per rank", fmt.Sprintf("%d", col))
			}
		default:
			kind, ok := ConvertFENCharToKind(c)
			if !ok {
				return parseErr(i, "piece letter", fmt.Sprintf("%q", c))
			}
			pos, err := chess.NewPosition(col, row)
			if err != nil {
				return parseErr(i, "square on the board", "piece past the h-file")
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			if _, err := board.Place(kind, colour, pos); err != nil {
				return errors.Wrap(errors.ErrInvalidFEN, err.Error())
			}
			col++
		}
	}

	if row != 0 || col != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Expected: "8 complete ranks",
		}
	}
	return nil
}

// checkKings verifies that each colour has exactly one king.
func checkKings(board *chess.Board) error {
	counts := make(map[chess.Colour]int)
	for _, p := range board.Pieces() {
		if p.Kind() == chess.King {
			counts[p.Colour()]++
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if counts[colour] != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, counts[colour], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field. It defaults to White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// BoardToFEN converts a board to a FEN string. Castling and en passant
// fields are always "-" and the clocks are "0 1".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.PieceAt(chess.MustPosition(col, row))
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}
