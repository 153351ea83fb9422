package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseMoveInput(t *testing.T) {
	tests := []struct {
		input    string
		from, to string
	}{
		{"e2 e4", "e2", "e4"},
		{"e2e4", "e2", "e4"},
		{"e2-e4", "e2", "e4"},
		{"  g1   f3 ", "g1", "f3"},
		{"B8C6", "b8", "c6"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			from, to, err := parseMoveInput(tt.input)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, from.String(), tt.from)
			testutil.AssertEqual(t, to.String(), tt.to)
		})
	}
}

func TestParseMoveInput_Errors(t *testing.T) {
	for _, input := range []string{"", "e2", "e2 e4 e5", "e2 e9", "i1 a1", "hello world"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := parseMoveInput(input)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidArgument)
		})
	}
}

// runScript plays the commands through runGame and returns the transcript.
func runScript(t *testing.T, g *game.Game, commands ...string) string {
	t.Helper()
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithASCII(true).Build()
	in := strings.NewReader(strings.Join(commands, "\n") + "\n")
	if err := runGame(g, in, &out, cfg); err != nil {
		t.Fatalf("runGame() error: %v", err)
	}
	return out.String()
}

func assertContains(t *testing.T, transcript string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(transcript, want) {
			t.Errorf("transcript missing %q:\n%s", want, transcript)
		}
	}
}

func TestRunGame_FoolsMate(t *testing.T) {
	g := game.New()
	out := runScript(t, g, "f2 f3", "e7e5", "g2-g4", "d8 h4", "a2 a3")

	assertContains(t, out,
		"8 r n b q k b n r\n",
		"Turn of: White Player",
		"Turn of: Black Player",
		"Black wins by checkmate. Result: 0-1",
	)
	testutil.AssertEqual(t, len(g.History()), 4, "input after mate is ignored")
}

func TestRunGame_InvalidInputRetries(t *testing.T) {
	g := game.New()
	out := runScript(t, g, "e2 e5", "nonsense", "", "e2 e4")

	assertContains(t, out, "Invalid move: ", "Please try again.", "Unrecognised input: ")
	testutil.AssertEqual(t, len(g.History()), 1)
	testutil.AssertFalse(t, g.Outcome().Over(), "running out of input leaves the game open")
}

func TestRunGame_AnnouncesCheck(t *testing.T) {
	g, err := game.NewFromFEN(queenOnFileFEN)
	testutil.AssertNoError(t, err)

	out := runScript(t, g, "a1 a2", "quit")
	assertContains(t, out,
		"The White King is in check!",
		"move would leave the king in check",
		"Game abandoned.",
	)
}

func TestRunGame_DrawByAgreement(t *testing.T) {
	g := game.New()
	out := runScript(t, g, "draw", "draw")

	assertContains(t, out,
		"White offers a draw.",
		"Draw by agreement. Result: 1/2-1/2",
	)
	testutil.AssertEqual(t, g.Outcome(), game.Outcome{Result: game.Drawn, Reason: game.ByAgreement})
}

func TestRunGame_Resign(t *testing.T) {
	g := game.New()
	out := runScript(t, g, "e2e4", "resign")

	assertContains(t, out,
		"The Black Player gave up.",
		"White wins by resignation. Result: 1-0",
	)
}

func TestRunGame_ListMoves(t *testing.T) {
	g := game.New()
	out := runScript(t, g, "moves", "quit")

	assertContains(t, out, "g1f3", "e2e4", "h2h3")
	testutil.AssertEqual(t, g.Turn().String(), "White", "listing moves does not pass the turn")
}

func TestRunGame_AlreadyFinished(t *testing.T) {
	g, err := game.NewFromFEN(stalemateFEN)
	testutil.AssertNoError(t, err)

	out := runScript(t, g, "h8 g8")
	testutil.AssertEqual(t, out, "Draw by stalemate. Result: 1/2-1/2\n")
}

type stubMover struct{ err error }

func (m stubMover) Play(from, to chess.Position) error { return m.err }

func TestPlayMove_Errors(t *testing.T) {
	illegal := &errors.MoveError{Err: fmt.Errorf("illegal: %w", errors.ErrIllegalMove), From: "e2", To: "e5"}
	broken := fmt.Errorf("evaluating position: %w", errors.ErrInvariantViolation)

	tests := []struct {
		name     string
		line     string
		err      error
		wantErr  error
		wantText string
	}{
		{"accepted", "e2 e4", nil, nil, ""},
		{"bad input", "zz", nil, nil, "Unrecognised input: "},
		{"illegal move", "e2 e5", illegal, nil, "Invalid move: "},
		{"engine failure", "e2 e4", broken, errors.ErrInvariantViolation, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := playMove(stubMover{err: tt.err}, tt.line, &out)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				testutil.AssertFalse(t, strings.Contains(out.String(), "Invalid move"), "engine failures are not shown as illegal moves")
				return
			}
			testutil.AssertNoError(t, err)
			if tt.wantText != "" {
				assertContains(t, out.String(), tt.wantText)
			}
		})
	}
}
