package testutil

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Diagram builds a board from eight rows drawn the way a board is printed:
// rank 8 first, a-file on the left, FEN letters for pieces and '.' for
// empty squares. Castling rights are left empty.
func Diagram(t testing.TB, toMove chess.Side, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("Diagram: got %d rows, want %d", len(rows), chess.BoardSize)
	}
	b := chess.NewBoard()
	for i, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("Diagram: row %d is %q, want %d squares", i, line, chess.BoardSize)
		}
		row := chess.BoardSize - 1 - i
		for file := 0; file < chess.BoardSize; file++ {
			c := line[file]
			if c == '.' {
				continue
			}
			kind := chess.KindFromCode(c)
			if kind == chess.Empty {
				t.Fatalf("Diagram: bad piece %q in row %d", c, i)
			}
			side := chess.White
			if c >= 'a' && c <= 'z' {
				side = chess.Black
			}
			b.Set(chess.Sq(row, chess.BoardSize-1-file), chess.NewPiece(side, kind))
		}
	}
	b.ToMove = toMove
	return b
}

// Squares parses algebraic square names, failing the test on a bad name.
func Squares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, ok := chess.ParseSquare(name)
		if !ok {
			t.Fatalf("Squares: bad square %q", name)
		}
		out = append(out, sq)
	}
	return out
}

// FillPosition is a chess.Position whose every square is decided by a
// function, for piece move tests that need no real board.
type FillPosition func(sq chess.Square) chess.Piece

// Get implements chess.Position.
func (f FillPosition) Get(sq chess.Square) chess.Piece {
	if !sq.Valid() {
		return chess.NoPiece
	}
	return f(sq)
}

// Uniform returns a position with p on every square.
func Uniform(p chess.Piece) FillPosition {
	return func(chess.Square) chess.Piece { return p }
}
