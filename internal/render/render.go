// Package render draws a chess board as text.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hailam/chessrules/internal/board"
)

// OccupantReader is the read-only view of a board the renderer needs.
type OccupantReader interface {
	OccupantAt(sq board.Square) board.Occupant
}

// GlyphSet selects how pieces are drawn.
type GlyphSet int

const (
	Unicode GlyphSet = iota
	ASCII
)

// ParseGlyphSet converts a configuration name to a GlyphSet.
func ParseGlyphSet(s string) (GlyphSet, error) {
	switch s {
	case "", "unicode":
		return Unicode, nil
	case "ascii":
		return ASCII, nil
	}
	return Unicode, fmt.Errorf("unknown glyph set %q", s)
}

var unicodeGlyphs = [2][6]string{
	board.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	board.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// Glyph returns the symbol for o, or a space for an empty square.
// Unknown piece types are drawn as "?".
func Glyph(o board.Occupant, set GlyphSet) string {
	if o.IsEmpty() {
		return " "
	}
	if o.Piece > board.King || o.Color > board.Black {
		return "?"
	}
	if set == ASCII {
		return o.String()
	}
	return unicodeGlyphs[o.Color][o.Piece]
}

// Options controls the board layout.
type Options struct {
	Glyphs      GlyphSet
	Coordinates bool // file letters and rank numbers around the grid
	Flipped     bool // rank 1 on top, as seen by Black
}

// Render writes the board to w, one ruled row per rank.
func Render(w io.Writer, r OccupantReader, opts Options) error {
	buf := &bytes.Buffer{}
	margin := ""
	if opts.Coordinates {
		margin = "  "
	}
	rule := margin + "-----------------\n"

	for i := 0; i < 8; i++ {
		rank := 8 - i
		if opts.Flipped {
			rank = i + 1
		}
		buf.WriteString(rule)
		if opts.Coordinates {
			fmt.Fprintf(buf, "%d ", rank)
		}
		for j := 0; j < 8; j++ {
			file := j + 1
			if opts.Flipped {
				file = 8 - j
			}
			buf.WriteByte('|')
			buf.WriteString(Glyph(r.OccupantAt(board.NewSquare(file, rank)), opts.Glyphs))
		}
		buf.WriteString("|\n")
	}
	buf.WriteString(rule)

	if opts.Coordinates {
		buf.WriteString(margin)
		for j := 0; j < 8; j++ {
			file := byte('a' + j)
			if opts.Flipped {
				file = byte('h' - j)
			}
			buf.WriteByte(' ')
			buf.WriteByte(file)
		}
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// String renders the board into a string.
func String(r OccupantReader, opts Options) string {
	buf := &bytes.Buffer{}
	_ = Render(buf, r, opts)
	return buf.String()
}
