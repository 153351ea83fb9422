// Package output renders boards and position reports as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DefaultLineLength is the wrap width for move lists.
const DefaultLineLength = 80

// OutputWriter handles space-separated output with line length control.
type OutputWriter struct {
	w             io.Writer
	indent        string
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. Wrapped lines start with
// indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		indent:        indent,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// RenderBoard draws the board with rank 8 at the top and White's pieces in
// upper case. Empty squares are dots. With ascii set pieces are drawn as
// FEN letters, otherwise as Unicode glyphs.
func RenderBoard(w io.Writer, b *chess.Board, ascii bool) error {
	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			p := b.PieceAt(chess.MustPosition(col, row))
			switch {
			case p == nil:
				sb.WriteByte('.')
			case ascii:
				sb.WriteByte(p.Letter())
			default:
				sb.WriteString(p.Symbol())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
