// Package output renders the board, the move list and the end-of-game
// report as text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
)

// DefaultLineLength is the width the move list wraps at.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *OutputWriter) NewLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoveList writes moves, oldest first, numbered in pairs:
// "1. e4 e5 2. Nf3". A number and White's move stay on one line.
func WriteMoveList(w io.Writer, moves []string, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for i, mv := range moves {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d. %s", i/2+1, mv))
		} else {
			ow.Write(mv)
		}
	}
	ow.NewLine()
}

var unicodeGlyphs = map[chess.Side][chess.NumKinds]string{
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// glyph returns the one-character picture of p.
func glyph(p chess.Piece, unicode bool) string {
	if p.IsEmpty() {
		return "."
	}
	if unicode {
		return unicodeGlyphs[p.Side][p.Kind]
	}
	return string(p.Letter())
}

// RenderBoard draws the position with rank 8 on top and the a-file on
// the left, the way a board is printed in a book.
func RenderBoard(w io.Writer, pos chess.Position, cfg *config.OutputConfig) {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	files := "  a b c d e f g h"

	if cfg.Coordinates {
		fmt.Fprintln(w, files)
	}
	for row := chess.BoardSize - 1; row >= 0; row-- {
		cells := make([]string, 0, chess.BoardSize)
		for col := chess.BoardSize - 1; col >= 0; col-- {
			cells = append(cells, glyph(pos.Get(chess.Sq(row, col)), cfg.Unicode))
		}
		line := strings.Join(cells, " ")
		if cfg.Coordinates {
			line = fmt.Sprintf("%d %s %d", row+1, line, row+1)
		}
		fmt.Fprintln(w, line)
	}
	if cfg.Coordinates {
		fmt.Fprintln(w, files)
	}
}
