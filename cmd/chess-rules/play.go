package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// parseMoveInput parses "e2 e4", "e2e4" or "e2-e4".
func parseMoveInput(line string) (from, to chess.Position, err error) {
	fields := strings.Fields(strings.ReplaceAll(line, "-", " "))
	if len(fields) == 1 && len(fields[0]) == 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	if len(fields) != 2 {
		return from, to, &errors.ParseError{
			Err:      errors.ErrInvalidArgument,
			Input:    line,
			Expected: "two squares such as \"e2 e4\"",
		}
	}

	if from, err = chess.ParseSquare(fields[0]); err != nil {
		return from, to, err
	}
	if to, err = chess.ParseSquare(fields[1]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// runGame reads commands from in until the game ends, the player quits, or
// the input runs out.
func runGame(g *game.Game, in io.Reader, out io.Writer, cfg *config.Config) error {
	scanner := bufio.NewScanner(in)

	for !g.Outcome().Over() {
		if err := showPosition(g, out, cfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "Turn of: %s Player\n> ", g.Turn())

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch line {
		case "":
			continue
		case "quit", "exit":
			fmt.Fprintln(out, "Game abandoned.")
			return nil
		case "moves":
			listLegalMoves(g, out)
		case "draw":
			offerer := g.Turn()
			accepted, err := g.OfferDraw()
			if err != nil {
				return err
			}
			if !accepted {
				fmt.Fprintf(out, "%s offers a draw. Type \"draw\" to accept or play a move to decline.\n", offerer)
			}
		case "resign":
			fmt.Fprintf(out, "The %s Player gave up.\n", g.Turn())
			if err := g.Resign(); err != nil {
				return err
			}
		default:
			if err := playMove(g, line, out); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(out, "%s. Result: %s\n", g.Outcome(), g.Outcome().Result)
	return nil
}

// showPosition draws the board and announces check.
func showPosition(g *game.Game, out io.Writer, cfg *config.Config) error {
	if err := output.RenderBoard(out, g.Board(), cfg.Output.ASCII); err != nil {
		return err
	}
	inCheck, err := g.InCheck()
	if err != nil {
		return err
	}
	if inCheck {
		fmt.Fprintf(out, "The %s King is in check!\n", g.Turn())
	}
	return nil
}

// mover plays a move from one square to another.
type mover interface {
	Play(from, to chess.Position) error
}

// playMove parses and plays one move. Bad input and illegal moves are
// reported to the player; any other failure is returned.
func playMove(g mover, line string, out io.Writer) error {
	from, to, err := parseMoveInput(line)
	if err != nil {
		fmt.Fprintf(out, "Unrecognised input: %v\n", err)
		return nil
	}
	err = g.Play(from, to)
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, errors.ErrIllegalMove) {
		return err
	}
	fmt.Fprintf(out, "Invalid move: %v. Please try again.\n", err)
	return nil
}

func listLegalMoves(g *game.Game, out io.Writer) {
	moves, err := g.LegalMoves()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	ow := output.NewOutputWriter(out, output.DefaultLineLength, "")
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}
