package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// These tests cover the success paths of the assertion helpers; failing
// paths would fail the calling test.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.MustSquare("e4"), chess.MustPosition(4, 3), "squares compare by value")
}

func TestAssertErrorIs_Success(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", chesserrors.ErrInvalidFEN)
	AssertErrorIs(t, wrapped, chesserrors.ErrInvalidFEN)
	AssertErrorIs(t, nil, nil)
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "value should be %v", false)
	AssertNoError(t, nil)
}

func TestSquareHelpers(t *testing.T) {
	b := chess.NewBoard()
	rook, err := b.Place(chess.Rook, chess.White, Square(t, "a1"))
	AssertNoError(t, err)

	AssertTrue(t, MustPieceAt(t, b, "a1") == rook)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"non-string format", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
