package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const (
	// White king on e1 checked down the open e-file by the queen on e8.
	queenOnFileFEN = "4q2k/8/8/8/8/8/8/R3K3 w - - 0 1"

	// White king on h1 checked along the first rank; only the bishop can help.
	blockOrCaptureFEN = "k7/8/8/8/8/8/4B1PP/3r3K w - - 0 1"

	// Same as above without the bishop.
	whiteBackRankMateFEN = "k7/8/8/8/8/8/6PP/3r3K w - - 0 1"

	// Black king on h8 boxed in by its own pawns, rook on the back rank.
	blackBackRankMateFEN = "R6k/6pp/8/8/8/8/8/K7 b - - 0 1"

	// The same pawn box with the rook on h1: the h7 pawn blocks the file.
	rookBehindPawnFEN = "7k/6pp/8/8/8/8/8/K6R b - - 0 1"

	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3"

	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

func TestIsKingInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"initial black", InitialFEN, chess.Black, false},
		{"queen on open file", queenOnFileFEN, chess.White, true},
		{"queen checks only white", queenOnFileFEN, chess.Black, false},
		{"rook along rank", blockOrCaptureFEN, chess.White, true},
		{"back rank", blackBackRankMateFEN, chess.Black, true},
		{"rook behind own pawn", rookBehindPawnFEN, chess.Black, false},
		{"fool's mate", foolsMateFEN, chess.White, true},
		{"knight check", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn in front is no check", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
		{"stalemate is no check", stalemateFEN, chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustFEN(t, tt.fen)
			got, err := IsKingInCheck(board, tt.colour)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("IsKingInCheck(%s) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"king steps off the file", queenOnFileFEN, chess.White, false},
		{"bishop blocks or captures", blockOrCaptureFEN, chess.White, false},
		{"white back rank mate", whiteBackRankMateFEN, chess.White, true},
		{"black back rank mate", blackBackRankMateFEN, chess.Black, true},
		{"mating side is not mated", blackBackRankMateFEN, chess.White, false},
		{"rook behind own pawn", rookBehindPawnFEN, chess.Black, false},
		{"fool's mate", foolsMateFEN, chess.White, true},
		{"stalemate is not checkmate", stalemateFEN, chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustFEN(t, tt.fen)
			got, err := IsCheckmate(board, tt.colour)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("IsCheckmate(%s) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

// TestCheckmateMatchesDefinition checks that checkmate holds exactly when
// the colour is in check and cannot escape.
func TestCheckmateMatchesDefinition(t *testing.T) {
	fens := []string{
		InitialFEN, queenOnFileFEN, blockOrCaptureFEN, whiteBackRankMateFEN,
		blackBackRankMateFEN, rookBehindPawnFEN, foolsMateFEN, stalemateFEN,
	}

	for _, fen := range fens {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			board, _ := mustFEN(t, fen)

			mate, err := IsCheckmate(board, colour)
			testutil.AssertNoError(t, err)
			inCheck, err := IsKingInCheck(board, colour)
			testutil.AssertNoError(t, err)
			canEscape, err := CanPreventCheckmate(board, colour)
			testutil.AssertNoError(t, err)

			if mate != (inCheck && !canEscape) {
				t.Errorf("%s %s: IsCheckmate = %v, inCheck = %v, canEscape = %v", fen, colour, mate, inCheck, canEscape)
			}
			if !inCheck && mate {
				t.Errorf("%s %s: checkmate without check", fen, colour)
			}
		}
	}
}

// TestQueenOnOpenFile checks every rook move fails to lift the check while
// king moves off the file succeed.
func TestQueenOnOpenFile(t *testing.T) {
	board, _ := mustFEN(t, queenOnFileFEN)
	rook := testutil.MustPieceAt(t, board, "a1")

	for _, to := range chess.AllPositions() {
		if !IsValidMove(board, rook, to) {
			continue
		}
		result, err := CheckMove(board, chess.White, rook, to)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, result, RejectedKingInCheck, "rook to %s", to)
	}

	canEscape, err := CanPreventCheckmate(board, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, canEscape, "king can leave the e-file")

	moves, err := LegalMoves(board, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moveStrings(moves), []string{"e1d1", "e1f1", "e1d2", "e1f2"})
}

func TestBlockOrCapture(t *testing.T) {
	board, _ := mustFEN(t, blockOrCaptureFEN)

	moves, err := LegalMoves(board, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moveStrings(moves), []string{"e2d1", "e2f1"})
}

func TestIsStalemate(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"queen stalemate", stalemateFEN, chess.Black, true},
		{"initial", InitialFEN, chess.White, false},
		{"checkmate is not stalemate", blackBackRankMateFEN, chess.Black, false},
		{"cornered king with a free pawn", "k7/2Q5/8/8/8/p7/8/K7 b - - 0 1", chess.Black, false},
		{"lone king boxed in", "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustFEN(t, tt.fen)
			got, err := IsStalemate(board, tt.colour)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("IsStalemate(%s) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		fen    string
		colour chess.Colour
		want   Status
	}{
		{InitialFEN, chess.White, Normal},
		{queenOnFileFEN, chess.White, Check},
		{blackBackRankMateFEN, chess.Black, Checkmate},
		{stalemateFEN, chess.Black, Stalemate},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			board, _ := mustFEN(t, tt.fen)
			got, err := Evaluate(board, tt.colour)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("Evaluate(%s) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}

	if got := Status(99).String(); got != "Unknown" {
		t.Errorf("Status(99).String() = %q, want Unknown", got)
	}
}

// TestMissingKing checks that a board without a king is reported as
// corrupt rather than answered with a boolean.
func TestMissingKing(t *testing.T) {
	board := chess.NewBoard()
	if _, err := board.Place(chess.Rook, chess.White, chess.MustSquare("a1")); err != nil {
		t.Fatal(err)
	}
	if _, err := board.Place(chess.King, chess.Black, chess.MustSquare("e8")); err != nil {
		t.Fatal(err)
	}

	_, err := IsKingInCheck(board, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation, "IsKingInCheck")

	_, err = CanPreventCheckmate(board, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation, "CanPreventCheckmate")

	_, err = IsCheckmate(board, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation, "IsCheckmate")

	_, err = IsStalemate(board, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation, "IsStalemate")

	_, err = LegalMoves(board, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation, "LegalMoves")

	_, err = Evaluate(board, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation, "Evaluate")

	// Black still has its king; its queries work.
	_, err = IsKingInCheck(board, chess.Black)
	testutil.AssertNoError(t, err)
}

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		inCheck, hasMove bool
		want             Status
	}{
		{false, true, Normal},
		{true, true, Check},
		{true, false, Checkmate},
		{false, false, Stalemate},
	}
	for _, tt := range tests {
		if got := Classify(tt.inCheck, tt.hasMove); got != tt.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", tt.inCheck, tt.hasMove, got, tt.want)
		}
	}
}
