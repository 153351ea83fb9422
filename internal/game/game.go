// Package game runs a two-player session on top of the rules engine: turn
// order, draw offers, resignation and the end-of-game verdict.
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Result is the final score of a game.
type Result int

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Drawn
)

// String returns the string representation of a result.
func (r Result) String() string {
	switch r {
	case Ongoing:
		return "*"
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Drawn:
		return "1/2-1/2"
	}
	return "?"
}

// Reason is why a game ended.
type Reason int

const (
	NoReason Reason = iota
	ByCheckmate
	ByStalemate
	ByResignation
	ByAgreement
)

// String returns the string representation of a reason.
func (r Reason) String() string {
	switch r {
	case ByCheckmate:
		return "checkmate"
	case ByStalemate:
		return "stalemate"
	case ByResignation:
		return "resignation"
	case ByAgreement:
		return "agreement"
	}
	return ""
}

// Outcome is the result of a game together with the reason it ended.
type Outcome struct {
	Result Result
	Reason Reason
}

// Over reports whether the game has finished.
func (o Outcome) Over() bool {
	return o.Result != Ongoing
}

// String returns a sentence such as "White wins by checkmate".
func (o Outcome) String() string {
	switch o.Result {
	case WhiteWins:
		return fmt.Sprintf("White wins by %s", o.Reason)
	case BlackWins:
		return fmt.Sprintf("Black wins by %s", o.Reason)
	case Drawn:
		return fmt.Sprintf("Draw by %s", o.Reason)
	}
	return "Game in progress"
}

func winFor(colour chess.Colour, reason Reason) Outcome {
	if colour == chess.White {
		return Outcome{Result: WhiteWins, Reason: reason}
	}
	return Outcome{Result: BlackWins, Reason: reason}
}

// Game is a single game between two players sharing one board.
type Game struct {
	ID uuid.UUID

	mu          sync.Mutex
	board       *chess.Board
	toMove      chess.Colour
	drawOffered bool
	drawOfferBy chess.Colour
	outcome     Outcome
	history     []engine.Move
}

// New starts a game from the standard initial position with White to move.
func New() *Game {
	return &Game{
		ID:     uuid.New(),
		board:  engine.NewInitialBoard(),
		toMove: chess.White,
	}
}

// NewFromFEN starts a game from a FEN position. The verdict is computed
// immediately, so a position that is already mate or stalemate yields a
// finished game.
func NewFromFEN(fen string) (*Game, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	outcome, err := outcomeFor(board, toMove)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:      uuid.New(),
		board:   board,
		toMove:  toMove,
		outcome: outcome,
	}, nil
}

// Move plays the piece on from to the square to for the side to move.
// A rejected move is reported through the result and leaves the game
// unchanged. After an accepted move the turn passes and the position is
// checked for checkmate and stalemate. An error also leaves the game
// unchanged.
func (g *Game) Move(from, to chess.Position) (engine.MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.move(from, to)
}

// Play is Move for callers that only care whether the move went through.
// Rejections come back as a *errors.MoveError wrapping ErrIllegalMove.
func (g *Game) Play(from, to chess.Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	desc := ""
	if piece := g.board.PieceAt(from); piece != nil {
		desc = fmt.Sprintf("%s %s", piece.Colour(), piece.Kind())
	}

	result, err := g.move(from, to)
	if err != nil {
		return err
	}
	if !result.Accepted() {
		return &errors.MoveError{
			Err:   fmt.Errorf("%s: %w", result, errors.ErrIllegalMove),
			Piece: desc,
			From:  from.String(),
			To:    to.String(),
		}
	}
	return nil
}

func (g *Game) move(from, to chess.Position) (engine.MoveResult, error) {
	if g.outcome.Over() {
		return engine.RejectedIllegal, errors.ErrGameOver
	}

	before := g.board.SaveState()
	result, err := engine.AttemptMove(g.board, g.toMove, g.board.PieceAt(from), to)
	if err != nil || !result.Accepted() {
		return result, err
	}

	next := g.toMove.Opposite()
	outcome, err := outcomeFor(g.board, next)
	if err != nil {
		// Leave the game as it was before the move.
		if rerr := g.board.RestoreState(before); rerr != nil {
			return engine.RejectedIllegal, fmt.Errorf("%w (restore failed: %v)", err, rerr)
		}
		return engine.RejectedIllegal, err
	}

	g.history = append(g.history, engine.Move{From: from, To: to})
	g.drawOffered = false
	g.toMove = next
	g.outcome = outcome
	return result, nil
}

// OfferDraw offers a draw on behalf of the side to move and passes the
// turn. If the opponent already has an offer pending, the offer is taken
// as acceptance and the game ends drawn. Playing a move instead declines
// the pending offer.
func (g *Game) OfferDraw() (accepted bool, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome.Over() {
		return false, errors.ErrGameOver
	}
	if g.drawOffered && g.drawOfferBy != g.toMove {
		g.drawOffered = false
		g.outcome = Outcome{Result: Drawn, Reason: ByAgreement}
		return true, nil
	}

	g.drawOffered = true
	g.drawOfferBy = g.toMove
	g.toMove = g.toMove.Opposite()
	return false, nil
}

// DrawOffered reports whether a draw offer is pending.
func (g *Game) DrawOffered() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.drawOffered
}

// Resign ends the game with a win for the side not to move.
func (g *Game) Resign() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome.Over() {
		return errors.ErrGameOver
	}
	g.outcome = winFor(g.toMove.Opposite(), ByResignation)
	return nil
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Copy()
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.BoardToFEN(g.board, g.toMove)
}

// Outcome returns the current verdict.
func (g *Game) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outcome
}

// History returns the accepted moves in the order they were played.
func (g *Game) History() []engine.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]engine.Move, len(g.history))
	copy(out, g.history)
	return out
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.IsKingInCheck(g.board, g.toMove)
}

// LegalMoves returns the moves available to the side to move.
func (g *Game) LegalMoves() ([]engine.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome.Over() {
		return nil, nil
	}
	return engine.LegalMoves(g.board, g.toMove)
}

// outcomeFor evaluates the position with toMove to play.
func outcomeFor(b *chess.Board, toMove chess.Colour) (Outcome, error) {
	status, err := engine.Evaluate(b, toMove)
	if err != nil {
		return Outcome{}, err
	}
	switch status {
	case engine.Checkmate:
		return winFor(toMove.Opposite(), ByCheckmate), nil
	case engine.Stalemate:
		return Outcome{Result: Drawn, Reason: ByStalemate}, nil
	}
	return Outcome{}, nil
}
