package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PositionReport summarises one analysed position.
type PositionReport struct {
	Index      int      `json:"index"`
	FEN        string   `json:"fen"`
	ToMove     string   `json:"toMove,omitempty"`
	Status     string   `json:"status,omitempty"`
	InCheck    bool     `json:"inCheck"`
	Checkmate  bool     `json:"checkmate"`
	Stalemate  bool     `json:"stalemate"`
	LegalMoves int      `json:"legalMoves"`
	Moves      []string `json:"moves,omitempty"`
	Error      string   `json:"error,omitempty"`

	board *chess.Board
	side  chess.Colour
}

// NewPositionReport analyses the board from the point of view of the side
// to move. When listMoves is set the report carries every legal move in
// coordinate notation.
func NewPositionReport(index int, b *chess.Board, toMove chess.Colour, listMoves bool) (*PositionReport, error) {
	inCheck, err := engine.IsKingInCheck(b, toMove)
	if err != nil {
		return nil, err
	}
	moves, err := engine.LegalMoves(b, toMove)
	if err != nil {
		return nil, err
	}
	status := engine.Classify(inCheck, len(moves) > 0)

	r := &PositionReport{
		Index:      index,
		FEN:        engine.BoardToFEN(b, toMove),
		ToMove:     toMove.String(),
		Status:     status.String(),
		InCheck:    inCheck,
		Checkmate:  status == engine.Checkmate,
		Stalemate:  status == engine.Stalemate,
		LegalMoves: len(moves),
		board:      b,
		side:       toMove,
	}
	if listMoves {
		r.Moves = make([]string, len(moves))
		for i, m := range moves {
			r.Moves[i] = m.String()
		}
	}
	return r, nil
}

// NewErrorReport records a position that could not be analysed.
func NewErrorReport(index int, fen string, err error) *PositionReport {
	return &PositionReport{
		Index: index,
		FEN:   fen,
		Error: err.Error(),
	}
}

// Failed reports whether the position could not be analysed.
func (r *PositionReport) Failed() bool {
	return r.Error != ""
}

// Board returns the analysed board, or nil for an error report.
func (r *PositionReport) Board() *chess.Board {
	return r.board
}

// Side returns the colour to move in the analysed position.
func (r *PositionReport) Side() chess.Colour {
	return r.side
}
