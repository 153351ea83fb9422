// Package matching selects positions by the material left on the board.
package matching

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Material counts the active pieces of one colour by kind.
type Material [chess.NumKinds]int

// CountMaterial counts the active pieces of each colour. Captured pieces
// are not counted.
func CountMaterial(b *chess.Board) (white, black Material) {
	for _, p := range b.Pieces() {
		if p.Captured() {
			continue
		}
		if p.Colour() == chess.White {
			white[p.Kind()]++
		} else {
			black[p.Kind()]++
		}
	}
	return white, black
}

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces Material
	blackPieces Material
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces).
// Use uppercase for white and lowercase for black, with the FEN letters
// K, Q, R, B, N and P. Either side may be left empty.
//
// Without exact a position matches when each side has at least the listed
// pieces. With exact the listed pieces must be all there is.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	white, black, found := strings.Cut(pattern, ":")
	if strings.Contains(black, ":") {
		return &errors.ParseError{
			Err:      errors.ErrInvalidArgument,
			Input:    pattern,
			Expected: "at most one ':'",
		}
	}

	if err := mm.parsePieces(pattern, white, 0, chess.White); err != nil {
		return err
	}
	if found {
		return mm.parsePieces(pattern, black, len(white)+1, chess.Black)
	}
	return nil
}

// parsePieces adds the pieces named in s to the counts for colour. offset
// is the position of s within the whole pattern, for error columns.
func (mm *MaterialMatcher) parsePieces(pattern, s string, offset int, colour chess.Colour) error {
	counts := &mm.whitePieces
	if colour == chess.Black {
		counts = &mm.blackPieces
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		kind, ok := engine.ConvertFENCharToKind(c)
		isUpper := c >= 'A' && c <= 'Z'
		if !ok || isUpper != (colour == chess.White) {
			return &errors.ParseError{
				Err:      errors.ErrInvalidArgument,
				Input:    pattern,
				Column:   offset + i + 1,
				Expected: colour.String() + " piece letter",
				Got:      string(c),
			}
		}
		counts[kind]++
	}
	return nil
}

// MatchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) MatchPosition(b *chess.Board) bool {
	white, black := CountMaterial(b)
	if mm.exactMatch {
		return white == mm.whitePieces && black == mm.blackPieces
	}
	return covers(white, mm.whitePieces) && covers(black, mm.blackPieces)
}

// covers reports whether have holds at least the pieces in want.
func covers(have, want Material) bool {
	for kind, count := range want {
		if have[kind] < count {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Pattern returns the pattern the matcher was built from.
func (mm *MaterialMatcher) Pattern() string {
	return mm.pattern
}
